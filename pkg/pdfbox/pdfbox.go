// Package pdfbox wraps the Apache PDFBox command-line app. Constructing a
// PDFBox resolves a local copy of the app jar — downloading and verifying the
// latest release when none is cached — and each method invokes one of its
// subcommands as a child process.
package pdfbox

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"

	"github.com/ElderResearch/go-pdfbox/internal/jarcache"
	"github.com/ElderResearch/go-pdfbox/internal/paths"
)

// DefaultArchiveURL is the Apache release archive listing for PDFBox.
const DefaultArchiveURL = "https://archive.apache.org/dist/pdfbox/"

// EnvOverride names the environment variable that bypasses jar resolution.
const EnvOverride = jarcache.EnvOverride

// Options configures facade construction. The zero value uses the Apache
// archive, the platform cache directory, and java from PATH.
type Options struct {
	// ArchiveURL overrides the version listing endpoint.
	ArchiveURL string
	// CacheDir overrides the platform jar cache directory.
	CacheDir string
	// JavaPath overrides PATH lookup of the java runtime.
	JavaPath string
	// Client is used for all remote fetches.
	Client *http.Client
	// ForceDownload resolves against the remote catalog even when a cached
	// jar exists. The PDFBOX environment override still wins.
	ForceDownload bool
}

// PDFBox invokes PDFBox app subcommands. The jar and java paths are resolved
// once at construction and never change for the lifetime of the value.
type PDFBox struct {
	jarPath  string
	javaPath string
	run      runner
}

// New resolves the app jar (environment override, cache, or verified
// download) and the java runtime. Any resolution failure is fatal; there is
// no degraded mode.
func New(ctx context.Context, opts Options) (*PDFBox, error) {
	base := opts.ArchiveURL
	if base == "" {
		base = DefaultArchiveURL
	}

	dir := opts.CacheDir
	if dir == "" {
		var err error
		dir, err = paths.CacheDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}

	cache := &jarcache.Cache{
		BaseURL:       base,
		Dir:           dir,
		Client:        opts.Client,
		ForceDownload: opts.ForceDownload,
	}
	jar, err := cache.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	java := opts.JavaPath
	if java == "" {
		java, err = exec.LookPath("java")
		if err != nil {
			return nil, fmt.Errorf("%w: java not found: %v", ErrConfig, err)
		}
	} else {
		ok, err := paths.FileExists(java)
		if err != nil || !ok {
			return nil, fmt.Errorf("%w: java_path %s does not exist", ErrConfig, java)
		}
	}

	return &PDFBox{
		jarPath:  jar,
		javaPath: java,
		run:      runner{java: java, jar: jar},
	}, nil
}

// JarPath returns the resolved app jar path.
func (b *PDFBox) JarPath() string { return b.jarPath }

// JavaPath returns the resolved java runtime path.
func (b *PDFBox) JavaPath() string { return b.javaPath }

// ExtractText extracts text from inputPath. With an empty outputPath the
// subcommand writes to its stdout and the captured text is returned with a
// nil handle; otherwise the extraction runs detached into outputPath and the
// live handle is returned.
func (b *PDFBox) ExtractText(ctx context.Context, inputPath, outputPath string, opts ExtractTextOptions) (string, *Proc, error) {
	proc, err := b.run.start(ctx, opts.spec(inputPath, outputPath))
	if err != nil {
		return "", nil, err
	}
	if outputPath == "" {
		return proc.Output(), nil, nil
	}
	return "", proc, nil
}

// Split splits inputPath into per-page (or per-chunk, see
// SplitOptions.Split) documents next to the input.
func (b *PDFBox) Split(ctx context.Context, inputPath string, opts SplitOptions) (*Proc, error) {
	return b.run.start(ctx, opts.spec(inputPath))
}

// Merge concatenates at least two source documents into targetPath.
func (b *PDFBox) Merge(ctx context.Context, sources []string, targetPath string) (*Proc, error) {
	if len(sources) < 2 {
		return nil, fmt.Errorf("%w: merge needs at least two source files, got %d", ErrConfig, len(sources))
	}
	s := newSpec("PDFMerger")
	s.Arg(sources...)
	s.Arg(targetPath)
	return b.run.start(ctx, s)
}

// Debugger opens inputPath in the PDFBox structure debugger GUI.
func (b *PDFBox) Debugger(ctx context.Context, inputPath string, opts DebuggerOptions) (*Proc, error) {
	return b.run.start(ctx, opts.spec(inputPath))
}

// ToImages rasterizes each page of inputPath to an image file.
func (b *PDFBox) ToImages(ctx context.Context, inputPath string, opts ImageOptions) (*Proc, error) {
	return b.run.start(ctx, opts.spec(inputPath))
}
