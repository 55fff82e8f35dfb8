package uri

import "errors"

var (
	// ErrParse reports a reference string that cannot be parsed as a
	// location.
	ErrParse = errors.New("reference parse error")

	// ErrPointerSyntax reports a malformed pointer fragment or escape
	// sequence.
	ErrPointerSyntax = errors.New("pointer syntax error")
)
