package pdfbox

import (
	"errors"

	"github.com/ElderResearch/go-pdfbox/internal/catalog"
	"github.com/ElderResearch/go-pdfbox/internal/jarcache"
)

// Error taxonomy. All errors returned by this package match one of these
// sentinels under errors.Is.
var (
	// ErrConfig covers a missing java runtime, an invalid PDFBOX override
	// path, or otherwise unusable options.
	ErrConfig = jarcache.ErrConfig
	// ErrNetwork covers any remote fetch failure.
	ErrNetwork = catalog.ErrNetwork
	// ErrNoVersions means the archive listing exposed no version links.
	ErrNoVersions = catalog.ErrNoVersions
	// ErrVersionParse means a version token could not be parsed.
	ErrVersionParse = catalog.ErrVersionParse
	// ErrChecksumMismatch means the downloaded jar failed SHA-512
	// verification and was not persisted.
	ErrChecksumMismatch = jarcache.ErrChecksumMismatch
	// ErrSpawn means the child process could not be started.
	ErrSpawn = errors.New("spawn failed")
)
