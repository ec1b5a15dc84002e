package cli

import (
	"context"

	"github.com/ElderResearch/go-pdfbox/internal/config"
	"github.com/ElderResearch/go-pdfbox/pkg/pdfbox"
)

// newFacade loads the optional config file and constructs the facade with it.
func newFacade(ctx context.Context, force bool) (*pdfbox.PDFBox, error) {
	path := configPath
	if path == "" {
		path = config.DefaultFileName
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return pdfbox.New(ctx, pdfbox.Options{
		ArchiveURL:    cfg.ArchiveURL,
		CacheDir:      cfg.CacheDir,
		JavaPath:      cfg.JavaPath,
		ForceDownload: force,
	})
}
