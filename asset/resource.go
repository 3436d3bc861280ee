package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A Resource is a readable scene stream backed by a local file or an
// http(s) URL.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns the lower-case file extension of the resource path (e.g. ".json").
// Query strings and fragments of remote resources are ignored.
func (r *Resource) Ext() string {
	return strings.ToLower(path.Ext(r.url.Path))
}

// Open a local file or fetch an http(s) URL. The caller must close the
// returned Resource.
func NewResource(location string) (*Resource, error) {
	resURL, err := url.Parse(filepath.ToSlash(location))
	if err != nil {
		return nil, err
	}

	var stream io.ReadCloser
	switch resURL.Scheme {
	case "":
		stream, err = os.Open(filepath.Clean(filepath.FromSlash(resURL.Path)))
	case "http", "https":
		stream, err = fetch(resURL)
	default:
		err = fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}
	if err != nil {
		return nil, err
	}

	return &Resource{ReadCloser: stream, url: resURL}, nil
}

func fetch(resURL *url.URL) (io.ReadCloser, error) {
	resp, err := http.Get(resURL.String())
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
	}
	return resp.Body, nil
}
