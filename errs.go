package jsonref

import "errors"

var (
	// ErrInvalidRoot reports a root location addressing a scalar, which
	// cannot back a container view.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrKeyNotFound reports an absent mapping member.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange reports an absent sequence element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnresolvableReference reports a reference whose target is
	// missing, or a direct non-terminating reference chain.
	ErrUnresolvableReference = errors.New("unresolvable reference")
)
