package loader

import "errors"

var (
	// ErrDocumentLoad reports a transport or filesystem failure, or
	// content that could not be deserialized.
	ErrDocumentLoad = errors.New("document load error")

	// ErrUnsupportedScheme reports a document identifier whose scheme has
	// no loader.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrUnsupportedFormat reports content in no supported serialization
	// format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
