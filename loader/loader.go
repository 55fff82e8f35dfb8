package loader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
)

// Loader fetches the raw bytes behind a canonical document identifier.
// The returned hint describes the content type when known (a media type
// such as "application/json", or a file extension such as ".yaml"); an
// empty hint means the format must be sniffed.
type Loader interface {
	Load(location string) (data []byte, hint string, err error)
}

// Func adapts a function to the Loader interface.
type Func func(location string) ([]byte, string, error)

func (f Func) Load(location string) ([]byte, string, error) {
	return f(location)
}

// Default loads scheme-less and file: identifiers from the filesystem and
// http/https identifiers over the network.
type Default struct {
	// Client is used for http/https fetches. nil means
	// http.DefaultClient.
	Client *http.Client
}

func (l *Default) Load(location string) ([]byte, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("%w: cannot parse %q: %w", ErrDocumentLoad, location, err)
	}
	switch u.Scheme {
	case "":
		return l.loadFile(location)
	case "file":
		return l.loadFile(u.Path)
	case "http", "https":
		return l.loadHTTP(location, u.Path)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (l *Default) loadFile(p string) ([]byte, string, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	return d, path.Ext(p), nil
}

func (l *Default) loadHTTP(location, urlPath string) ([]byte, string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(location)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: %q returned status %s", ErrDocumentLoad, location, resp.Status)
	}
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading %q: %w", ErrDocumentLoad, location, err)
	}
	hint := resp.Header.Get("Content-Type")
	if hint == "" {
		hint = path.Ext(urlPath)
	}
	return d, hint, nil
}
