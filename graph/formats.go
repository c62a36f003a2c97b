package graph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knakk/rdf"
)

// Format names an RDF serialization the graph can load.
type Format string

const (
	// FormatTurtle is Turtle (.ttl), the default for plugin descriptions.
	FormatTurtle Format = "turtle"

	// FormatNTriples is line-based N-Triples (.nt).
	FormatNTriples Format = "ntriples"

	// FormatRDFXML is RDF/XML (.rdf).
	FormatRDFXML Format = "rdfxml"
)

// FormatInfo provides metadata about an input format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extensions are the file extensions (with dot) mapped to this format.
	Extensions []string

	// Description describes the format.
	Description string

	decoder rdf.Format
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extensions:  []string{".ttl"},
		Description: "Turtle - Terse RDF Triple Language",
		decoder:     rdf.Turtle,
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extensions:  []string{".nt"},
		Description: "N-Triples - Line-based RDF format",
		decoder:     rdf.NTriples,
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extensions:  []string{".rdf", ".owl", ".xml"},
		Description: "RDF/XML - XML serialization of RDF",
		decoder:     rdf.RDFXML,
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a user supplied format name. Common aliases such as
// "ttl" and "nt" are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "n-triples", "nt":
		return FormatNTriples, nil
	case "rdfxml", "rdf/xml", "xml", "rdf":
		return FormatRDFXML, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnsupportedFormat, name, strings.Join(FormatNames(), ", "))
	}
}

// FormatFromPath picks a format from the file extension, defaulting to Turtle.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for name, info := range FormatRegistry {
		for _, e := range info.Extensions {
			if e == ext {
				return name
			}
		}
	}
	return FormatTurtle
}

// FormatNames returns the sorted list of supported format names.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
