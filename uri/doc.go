// Package uri models document locations: a document identifier plus an
// optional JSON pointer fragment addressing a node within the document.
// It provides parsing, relative resolution of reference strings against a
// base location, and the pointer segment escaping rules of RFC 6901.
package uri
