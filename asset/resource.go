// Package asset opens shader sources and other resources that may live on the
// local filesystem or behind an http/https URL.
package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Upper bound for the size of a resource read via ReadAll.
const maxResourceSize = 4 << 20

// Timeout for fetching remote resources.
const fetchTimeout = 10 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// The Resource type wraps a streamable file or remote resource.
type Resource struct {
	io.ReadCloser
	path   string
	remote bool
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.path
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.remote
}

// Open a resource data stream. Paths without a scheme are treated as local
// files and passed to the filesystem verbatim; http and https URLs are fetched
// with a GET request.
//
// The caller must close the returned resource.
func Open(pathToResource string) (*Resource, error) {
	switch scheme := resourceScheme(pathToResource); scheme {
	case "":
		f, err := os.Open(filepath.Clean(pathToResource))
		if err != nil {
			return nil, err
		}
		return &Resource{ReadCloser: f, path: pathToResource}, nil
	case "http", "https":
		u, err := url.Parse(pathToResource)
		if err != nil {
			return nil, fmt.Errorf("resource: invalid url '%s': %s", pathToResource, err.Error())
		}
		resp, err := httpClient.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", pathToResource, err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", pathToResource, resp.StatusCode)
		}
		return &Resource{ReadCloser: resp.Body, path: pathToResource, remote: true}, nil
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", scheme)
	}
}

// Extract the lowercased scheme from a "scheme://" prefix. Anything else,
// including windows drive letters, is a local path and yields "".
func resourceScheme(pathToResource string) string {
	idx := strings.Index(pathToResource, "://")
	if idx < 2 {
		return ""
	}

	scheme := pathToResource[:idx]
	for i, c := range scheme {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return ""
		}
	}
	return strings.ToLower(scheme)
}

// Read the entire contents of a resource.
func ReadAll(pathToResource string) ([]byte, error) {
	res, err := Open(pathToResource)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	data, err := io.ReadAll(io.LimitReader(res, maxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("resource: could not read '%s': %s", res.Path(), err.Error())
	}
	if len(data) > maxResourceSize {
		return nil, fmt.Errorf("resource: '%s' exceeds the %d byte size limit", res.Path(), maxResourceSize)
	}

	return data, nil
}
