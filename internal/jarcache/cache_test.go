package jarcache

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archiveListing = `<html><body>
<a href="2.0.9/">2.0.9/</a>
<a href="2.0.27/">2.0.27/</a>
<a href="KEYS">KEYS</a>
</body></html>`

var jarBody = []byte("fake pdfbox app jar bytes")

// newArchiveServer serves a minimal Apache-style archive: a listing, the
// 2.0.27 jar, and its sha512 file. requests counts every hit.
func newArchiveServer(t *testing.T, digest string, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(archiveListing))
	})
	mux.HandleFunc("/2.0.27/pdfbox-app-2.0.27.jar", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(jarBody)
	})
	mux.HandleFunc("/2.0.27/pdfbox-app-2.0.27.jar.sha512", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(digest))
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func jarDigest() string {
	sum := sha512.Sum512(jarBody)
	return hex.EncodeToString(sum[:])
}

// noNetwork fails every request so tests can prove a path never goes remote.
type noNetwork struct{}

func (noNetwork) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled in this test")
}

func noNetworkClient() *http.Client {
	return &http.Client{Transport: noNetwork{}}
}

func TestResolveDownloadsVerifiesAndCaches(t *testing.T) {
	var requests atomic.Int64
	srv := newArchiveServer(t, jarDigest()+"  pdfbox-app-2.0.27.jar", &requests)

	dir := t.TempDir()
	cache := &Cache{BaseURL: srv.URL, Dir: dir, Client: srv.Client()}

	path, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pdfbox-app-2.0.27.jar"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, jarBody, data)

	// Listing + jar + checksum.
	assert.Equal(t, int64(3), requests.Load())
}

func TestResolveIsIdempotent(t *testing.T) {
	var requests atomic.Int64
	srv := newArchiveServer(t, jarDigest(), &requests)

	dir := t.TempDir()
	cache := &Cache{BaseURL: srv.URL, Dir: dir, Client: srv.Client()}

	first, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	afterDownload := requests.Load()

	second, err := cache.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, afterDownload, requests.Load(), "populated cache must not go remote")
}

func TestResolveChecksumMismatch(t *testing.T) {
	var requests atomic.Int64
	srv := newArchiveServer(t, "deadbeef", &requests)

	dir := t.TempDir()
	cache := &Cache{BaseURL: srv.URL, Dir: dir, Client: srv.Client()}

	_, err := cache.Resolve(context.Background())
	require.ErrorIs(t, err, ErrChecksumMismatch)

	// Nothing may be persisted under the final artifact name.
	matches, err := filepath.Glob(filepath.Join(dir, "pdfbox-app-*.jar"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolvePrefersHighestCachedVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"pdfbox-app-2.0.9.jar", "pdfbox-app-2.0.27.jar"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jar"), 0o644))
	}

	cache := &Cache{BaseURL: "http://unused.invalid", Dir: dir, Client: noNetworkClient()}
	path, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pdfbox-app-2.0.27.jar"), path)
}

func TestResolveSkipsUnparseableCachedVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"pdfbox-app-weird.jar", "pdfbox-app-2.0.27.jar"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jar"), 0o644))
	}

	cache := &Cache{BaseURL: "http://unused.invalid", Dir: dir, Client: noNetworkClient()}
	path, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pdfbox-app-2.0.27.jar"), path)
}

func TestResolveEnvOverride(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "pdfbox-app-9.9.9.jar")
	require.NoError(t, os.WriteFile(jar, []byte("jar"), 0o644))
	t.Setenv(EnvOverride, jar)

	cache := &Cache{BaseURL: "http://unused.invalid", Dir: t.TempDir(), Client: noNetworkClient()}
	path, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jar, path)
}

func TestResolveEnvOverrideMissingPath(t *testing.T) {
	t.Setenv(EnvOverride, filepath.Join(t.TempDir(), "nope.jar"))

	cache := &Cache{BaseURL: "http://unused.invalid", Dir: t.TempDir(), Client: noNetworkClient()}
	_, err := cache.Resolve(context.Background())
	require.ErrorIs(t, err, ErrConfig)
}

func TestResolveForceDownloadBypassesScan(t *testing.T) {
	var requests atomic.Int64
	srv := newArchiveServer(t, jarDigest(), &requests)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pdfbox-app-2.0.9.jar"), []byte("old"), 0o644))

	cache := &Cache{BaseURL: srv.URL, Dir: dir, Client: srv.Client(), ForceDownload: true}
	path, err := cache.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pdfbox-app-2.0.27.jar"), path)
	assert.Equal(t, int64(3), requests.Load())
}
