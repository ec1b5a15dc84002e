// Package jarcache locates the local PDFBox app jar, downloading and
// verifying the latest release when no cached copy exists.
package jarcache

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/schollz/progressbar/v3"

	"github.com/ElderResearch/go-pdfbox/internal/catalog"
	"github.com/ElderResearch/go-pdfbox/internal/logx"
	"github.com/ElderResearch/go-pdfbox/internal/paths"
)

// EnvOverride names the environment variable that, when set, must point at an
// existing jar file and bypasses all cache and network logic.
const EnvOverride = "PDFBOX"

var (
	// ErrConfig indicates an invalid override path or other unusable setup.
	ErrConfig = errors.New("invalid configuration")
	// ErrChecksumMismatch indicates a downloaded jar whose SHA-512 digest did
	// not match the published checksum. Nothing is persisted in that case.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

var jarPattern = regexp.MustCompile(`^pdfbox-app-([0-9A-Za-z.\-]+)\.jar$`)

// Cache resolves the jar path for a facade instance. The zero Dir and Client
// are filled in from platform defaults on first use.
type Cache struct {
	// BaseURL is the archive listing endpoint, e.g. the Apache dist root.
	BaseURL string
	// Dir is the cache directory holding pdfbox-app-<version>.jar files.
	Dir string
	// Client is used for all remote fetches. Defaults to http.DefaultClient.
	Client *http.Client
	// ForceDownload skips the cache scan and always resolves against the
	// remote catalog. The environment override still wins.
	ForceDownload bool
}

// Resolve returns the path of the jar to invoke: the environment override if
// set, else the highest-versioned cached jar, else a freshly downloaded and
// checksum-verified copy of the latest release.
func (c *Cache) Resolve(ctx context.Context) (string, error) {
	if override := os.Getenv(EnvOverride); override != "" {
		ok, err := paths.FileExists(override)
		if err != nil {
			return "", fmt.Errorf("%w: stat %s: %v", ErrConfig, override, err)
		}
		if !ok {
			return "", fmt.Errorf("%w: %s=%s does not exist", ErrConfig, EnvOverride, override)
		}
		return override, nil
	}

	if !c.ForceDownload {
		if path, ok := c.scan(); ok {
			return path, nil
		}
	}
	return c.download(ctx)
}

// scan looks for cached jars and returns the highest-versioned one. Files
// whose version token does not parse are skipped so a stray file cannot
// prevent resolution.
func (c *Cache) scan() (string, bool) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return "", false
	}

	var (
		best     *semver.Version
		bestName string
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := jarPattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		v, err := catalog.ParseVersion(match[1])
		if err != nil {
			logx.L().Warnw("skipping cached jar with unparseable version",
				"file", entry.Name(), "error", err)
			continue
		}
		if best == nil || best.LessThan(*v) {
			best = v
			bestName = entry.Name()
		}
	}
	if bestName == "" {
		return "", false
	}
	return filepath.Join(c.Dir, bestName), true
}

// download resolves the latest release from the catalog, fetches the jar and
// its published digest, and persists the jar only after verification. The
// body lands in a temporary file that is renamed into place on success, so a
// mismatch or partial download never becomes visible under the final name.
func (c *Cache) download(ctx context.Context) (string, error) {
	versions, err := catalog.Versions(ctx, c.Client, c.BaseURL)
	if err != nil {
		return "", err
	}
	latest, err := catalog.Latest(versions)
	if err != nil {
		return "", err
	}

	jarURL := catalog.JarURL(c.BaseURL, latest)
	logx.L().Infow("downloading pdfbox", "version", latest, "url", jarURL)

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare cache dir: %w", err)
	}

	tmpPath, digest, err := c.fetchJar(ctx, jarURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	expected, err := c.fetchChecksum(ctx, catalog.ChecksumURL(jarURL))
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(digest, expected) {
		return "", fmt.Errorf("%w: %s: got %s, want %s", ErrChecksumMismatch, jarURL, digest, expected)
	}

	dest := filepath.Join(c.Dir, catalog.JarName(latest))
	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("finalize download: %w", err)
	}
	return dest, nil
}

// fetchJar streams the jar body into a temp file inside the cache directory,
// hashing as it copies. It returns the temp path and the hex SHA-512 digest.
func (c *Cache) fetchJar(ctx context.Context, jarURL string) (string, string, error) {
	resp, err := c.get(ctx, jarURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(c.Dir, "download-*.tmp")
	if err != nil {
		return "", "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading "+filepath.Base(jarURL))
	hash := sha512.New()

	if _, err := io.Copy(io.MultiWriter(tmpFile, hash, bar), resp.Body); err != nil {
		tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", "", fmt.Errorf("%w: read %s: %v", catalog.ErrNetwork, jarURL, err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", "", fmt.Errorf("close temp file: %w", err)
	}

	return tmpPath, hex.EncodeToString(hash.Sum(nil)), nil
}

// fetchChecksum returns the published hex digest. Apache .sha512 files may
// carry a trailing filename field; the first whitespace-separated field wins.
func (c *Cache) fetchChecksum(ctx context.Context, sumURL string) (string, error) {
	resp, err := c.get(ctx, sumURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", catalog.ErrNetwork, sumURL, err)
	}
	fields := strings.Fields(string(body))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: %s: empty checksum file", catalog.ErrNetwork, sumURL)
	}
	return fields[0], nil
}

func (c *Cache) get(ctx context.Context, url string) (*http.Response, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", catalog.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", "go-pdfbox/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", catalog.ErrNetwork, url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: get %s: unexpected status %s", catalog.ErrNetwork, url, resp.Status)
	}
	return resp, nil
}
