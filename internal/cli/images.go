package cli

import (
	"github.com/spf13/cobra"

	"github.com/ElderResearch/go-pdfbox/pkg/pdfbox"
)

var imageOpts pdfbox.ImageOptions

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images <input.pdf>",
		Short: "Rasterize each PDF page to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runImages,
	}

	cmd.Flags().StringVar(&imageOpts.Password, "password", "", "PDF password")
	cmd.Flags().StringVar(&imageOpts.ImageType, "image-type", "", "Image format (jpg, png, ...)")
	cmd.Flags().StringVar(&imageOpts.OutputPrefix, "output-prefix", "", "Filename prefix for page images")
	cmd.Flags().IntVar(&imageOpts.StartPage, "start-page", 0, "First page to render")
	cmd.Flags().IntVar(&imageOpts.EndPage, "end-page", 0, "Last page to render")
	cmd.Flags().IntVar(&imageOpts.Page, "page", 0, "Render only this page")
	cmd.Flags().IntVar(&imageOpts.DPI, "dpi", 0, "Render resolution")
	cmd.Flags().StringVar(&imageOpts.Color, "color", "", "Color mode (rgb, gray, bilevel, ...)")
	cmd.Flags().IntSliceVar(&imageOpts.CropBox, "cropbox", nil, "Crop region as x,y,width,height")
	cmd.Flags().BoolVar(&imageOpts.Time, "time", false, "Print render timings")

	return cmd
}

func runImages(cmd *cobra.Command, args []string) error {
	box, err := newFacade(cmd.Context(), false)
	if err != nil {
		return err
	}

	proc, err := box.ToImages(cmd.Context(), args[0], imageOpts)
	if err != nil {
		return err
	}
	return proc.Wait()
}
