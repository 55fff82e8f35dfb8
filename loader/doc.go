// Package loader supplies raw document content. A Loader fetches the
// bytes behind a canonical document identifier together with a
// content-type hint; Decode turns those bytes into an ir tree,
// dispatching between JSON and YAML deserialization on the hint.
//
// The default loader treats scheme-less identifiers as paths on disk and
// delegates http/https identifiers to a network fetch, negotiating the
// content type from response headers with a file-extension fallback.
package loader
