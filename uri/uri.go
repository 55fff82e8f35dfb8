package uri

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// URI locates a node: a canonical document identifier plus a pointer
// within that document. Two URIs are equal iff their canonical root and
// pointer segment sequence are equal; Parse canonicalizes the root, so
// String() is a valid cache key.
type URI struct {
	Root    string
	Pointer Pointer
}

// Parse parses a location string of the form "document#/pointer". The
// fragment may be absent, denoting the document root.
func Parse(s string) (URI, error) {
	root, frag, _ := strings.Cut(s, "#")
	if root == "" {
		return URI{}, fmt.Errorf("%w: %q has no document part", ErrParse, s)
	}
	canonical, err := canonicalRoot(root)
	if err != nil {
		return URI{}, err
	}
	ptr, err := ParsePointer(frag)
	if err != nil {
		return URI{}, err
	}
	return URI{Root: canonical, Pointer: ptr}, nil
}

// canonicalRoot normalizes a document identifier. Absolute URLs are
// normalized by net/url; scheme-less identifiers are treated as paths and
// cleaned. Full RFC 3986 normalization is out of scope.
func canonicalRoot(root string) (string, error) {
	u, err := url.Parse(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	return path.Clean(root), nil
}

// Relative resolves a reference string against this location, yielding
// the referenced location. An empty document part means "same document";
// otherwise the document part is resolved against this URI's root using
// standard relative-URI resolution.
func (u URI) Relative(ref string) (URI, error) {
	doc, frag, _ := strings.Cut(ref, "#")
	ptr, err := ParsePointer(frag)
	if err != nil {
		return URI{}, err
	}
	if doc == "" {
		return URI{Root: u.Root, Pointer: ptr}, nil
	}
	root, err := resolveAgainst(u.Root, doc)
	if err != nil {
		return URI{}, err
	}
	return URI{Root: root, Pointer: ptr}, nil
}

// resolveAgainst resolves a document part against a base identifier.
// Bases with a scheme use net/url reference resolution; scheme-less bases
// resolve by path, against the base document's directory.
func resolveAgainst(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if refURL.IsAbs() {
		return refURL.String(), nil
	}
	baseURL, err := url.Parse(base)
	if err == nil && baseURL.IsAbs() {
		return baseURL.ResolveReference(refURL).String(), nil
	}
	if strings.HasPrefix(ref, "/") {
		return path.Clean(ref), nil
	}
	return path.Join(path.Dir(base), ref), nil
}

// Get returns the location of a member of the addressed node.
func (u URI) Get(segs ...string) URI {
	return URI{Root: u.Root, Pointer: u.Pointer.Append(segs...)}
}

// Back pops a segment from the pointer.
func (u URI) Back() URI {
	return URI{Root: u.Root, Pointer: u.Pointer.Back()}
}

// Equal reports location equality over the canonical root and pointer.
func (u URI) Equal(o URI) bool {
	return u.Root == o.Root && u.Pointer.Equal(o.Pointer)
}

// String renders the canonical form, e.g. "base/file.json#/definitions".
func (u URI) String() string {
	return u.Root + "#" + u.Pointer.String()
}
