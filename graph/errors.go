package graph

import "errors"

// ErrUnsupportedFormat is returned when a serialization format is not known.
var ErrUnsupportedFormat = errors.New("unsupported RDF format")
