package pdfbox

import "strconv"

// ExtractTextOptions configures the ExtractText subcommand. Every field is
// optional; zero values emit nothing.
type ExtractTextOptions struct {
	Password    string
	Encoding    string
	HTML        bool
	Sort        bool
	IgnoreBeads bool
	StartPage   int
	EndPage     int
	// AlwaysNext continues after errors when splitting by beads.
	AlwaysNext bool
}

func (o ExtractTextOptions) spec(input, output string) *CommandSpec {
	s := newSpec("ExtractText")
	s.FlagValue("password", o.Password)
	s.FlagValue("encoding", o.Encoding)
	if o.HTML {
		s.Flag("html")
	}
	if o.Sort {
		s.Flag("sort")
	}
	if o.IgnoreBeads {
		s.Flag("ignoreBeads")
	}
	s.FlagInt("startPage", o.StartPage)
	s.FlagInt("endPage", o.EndPage)
	if o.AlwaysNext {
		s.Flag("alwaysNext")
	}
	if output == "" {
		s.Flag("console")
	}
	s.Arg(input)
	if output != "" {
		s.Arg(output)
	}
	return s
}

// SplitOptions configures the PDFSplit subcommand.
type SplitOptions struct {
	Password  string
	StartPage int
	EndPage   int
	// Split is the number of pages per output document.
	Split int
}

func (o SplitOptions) spec(input string) *CommandSpec {
	s := newSpec("PDFSplit")
	s.FlagValue("password", o.Password)
	s.FlagInt("startPage", o.StartPage)
	s.FlagInt("endPage", o.EndPage)
	s.FlagInt("split", o.Split)
	s.Arg(input)
	return s
}

// DebuggerOptions configures the PDFDebugger subcommand.
type DebuggerOptions struct {
	Password      string
	ViewStructure bool
}

func (o DebuggerOptions) spec(input string) *CommandSpec {
	// PDFDebugger takes the input path before its flags.
	s := newSpec("PDFDebugger")
	s.Arg(input)
	s.FlagValue("password", o.Password)
	if o.ViewStructure {
		s.Flag("viewstructure")
	}
	return s
}

// ImageOptions configures the PDFToImage subcommand. Each page is rendered to
// its own image named <prefix><page>.<ext>.
type ImageOptions struct {
	Password     string
	ImageType    string
	OutputPrefix string
	StartPage    int
	EndPage      int
	Page         int
	DPI          int
	Color        string
	// CropBox is the region to render, as four integers (x y width height).
	CropBox []int
	// Time prints render timings.
	Time bool
}

func (o ImageOptions) spec(input string) *CommandSpec {
	// PDFToImage takes the input path before its flags.
	s := newSpec("PDFToImage")
	s.Arg(input)
	s.FlagValue("password", o.Password)
	s.FlagValue("imageType", o.ImageType)
	s.FlagValue("outputPrefix", o.OutputPrefix)
	s.FlagInt("startPage", o.StartPage)
	s.FlagInt("endPage", o.EndPage)
	s.FlagInt("page", o.Page)
	s.FlagInt("dpi", o.DPI)
	s.FlagValue("color", o.Color)
	if len(o.CropBox) > 0 {
		s.Flag("cropbox")
		for _, v := range o.CropBox {
			s.Arg(strconv.Itoa(v))
		}
	}
	if o.Time {
		s.Flag("time")
	}
	return s
}
