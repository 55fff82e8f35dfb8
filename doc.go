// Package jsonref presents a set of interlinked structured documents as
// a single, lazily resolved document. Documents are JSON- or YAML-shaped
// trees containing pointer-style cross-references
// ({"$ref": "other.json#/definitions/bar"}); consumers navigate the
// merged document with normal key and index access, and reference
// targets, whether local, same-document or in another document, are
// resolved transparently and on demand.
//
// # Overview
//
// A Session owns the document cache: every document identifier is loaded
// and parsed at most once per Session, with raw byte fetching delegated
// to a pluggable loader.Loader. Open constructs a lazy *Map or *List
// view over a location:
//
//	view, err := jsonref.Open("schemas/master.yaml#/definitions")
//	v, err := view.(*jsonref.Map).Get("foo")
//
// Accessing a member resolves any chain of references to its terminal
// value; iterating keys, taking the length, printing, or comparing raw
// content resolves nothing.
//
// Materialize flattens a view into plain map[string]any/[]any values,
// resolving every reachable reference while preserving structural
// reference cycles as genuine cycles in the output. Key filtering, a
// scalar value transform and per-mapping provenance labels are available
// as options.
//
// Reference chains that revisit the exact same location within one
// resolution (pure forwarding loops) fail with
// ErrUnresolvableReference; structural cycles through containers are
// legal throughout.
package jsonref
