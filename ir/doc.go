// Package ir defines the tree representation for loaded documents.
//
// A document is a tree of Node values. Node is a tagged union: the Type
// field selects among null, bool, number, string, array and object, and
// every consumer switches over it exhaustively. For ObjectType nodes,
// Fields[i] is the key for the value at Values[i], so there are always as
// many fields as values; FromMap produces fields in sorted key order so
// that iteration is deterministic.
//
// Numbers are placed under Int64 if they are 64-bit integers, Float64 if
// they are 64-bit floats, and the Number string as a fallback when neither
// representation can hold the value.
//
// Trees are never mutated after construction; the loading layer hands out
// the same tree to every consumer of a document.
package ir
