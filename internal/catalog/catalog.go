// Package catalog discovers released PDFBox versions from the Apache archive
// listing and resolves download URLs for a chosen version.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

const userAgent = "go-pdfbox/1.0"

var (
	// ErrNetwork wraps any failure to complete a remote fetch.
	ErrNetwork = errors.New("remote fetch failed")
	// ErrNoVersions indicates the listing contained no version links.
	ErrNoVersions = errors.New("no versions discovered")
)

// versionLink matches directory links such as "2.0.27/" or "3.0.0-alpha2/".
var versionLink = regexp.MustCompile(`^\d+\.\d+\.\d+[0-9A-Za-z.\-]*$`)

// Versions fetches the archive listing at baseURL and returns the set of
// version tokens found in anchor hrefs, deduplicated and sorted for
// deterministic output. Order carries no meaning to callers.
func Versions(ctx context.Context, client *http.Client, baseURL string) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrNetwork, baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: get %s: unexpected status %s", ErrNetwork, baseURL, resp.Status)
	}

	versions, err := parseVersionLinks(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNetwork, baseURL, err)
	}
	return versions, nil
}

// parseVersionLinks scans the document for <a href> targets that look like
// version directories.
func parseVersionLinks(r io.Reader) ([]string, error) {
	seen := map[string]struct{}{}

	tokenizer := html.NewTokenizer(r)
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			out := make([]string, 0, len(seen))
			for v := range seen {
				out = append(out, v)
			}
			sort.Strings(out)
			return out, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			for {
				key, val, more := tokenizer.TagAttr()
				if string(key) == "href" {
					target := strings.Trim(string(val), "/")
					if versionLink.MatchString(target) {
						seen[target] = struct{}{}
					}
				}
				if !more {
					break
				}
			}
		}
	}
}
