package lv2

import "github.com/c360studio/semstreams/vocabulary"

// Port predicates in dotted notation.
const (
	// PortSymbol is the short, C-identifier-like name of a port.
	PortSymbol = "lv2.port.symbol"

	// PortIndex is the zero-based position of a port on its plugin.
	PortIndex = "lv2.port.index"

	// PortName is the human readable port label.
	PortName = "lv2.port.name"
)

func init() {
	vocabulary.Register(PortSymbol,
		vocabulary.WithDescription("Port symbol used to derive the generated constant name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropSymbol))

	vocabulary.Register(PortIndex,
		vocabulary.WithDescription("Zero-based port index within the plugin"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(PropIndex))

	vocabulary.Register(PortName,
		vocabulary.WithDescription("Human readable port label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropName))
}
