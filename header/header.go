// Package header renders port tables as C preprocessor headers.
package header

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/ttl2port/ports"
)

// DefaultPrefix is prepended to every enumeration member.
const DefaultPrefix = "PORT_"

// Guard derives the include guard from the output file name:
// "out/lb303_ports.h" becomes "LB303_PORTS_H__".
func Guard(path string) string {
	name := filepath.Base(path)
	return strings.ReplaceAll(strings.ToUpper(name), ".", "_") + "__"
}

// Writer renders headers with a configurable member prefix.
type Writer struct {
	prefix string
}

// NewWriter creates a Writer. An empty prefix selects DefaultPrefix.
func NewWriter(prefix string) *Writer {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Writer{prefix: prefix}
}

// Render writes the header for list, in the order given, to w.
func (hw *Writer) Render(w io.Writer, guard string, list []ports.Port) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("#ifndef %s\n", guard))
	sb.WriteString(fmt.Sprintf("#define %s\n", guard))
	sb.WriteString("// Automatically generated file: do not edit.\n\n")
	sb.WriteString("enum {\n")
	for _, p := range list {
		sb.WriteString(fmt.Sprintf("\t%s%s\t = %d,\n", hw.prefix, strings.ToUpper(p.Symbol), p.Index))
	}
	sb.WriteString("};\n")
	sb.WriteString("#endif\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile renders the header in memory and then writes it to path,
// replacing any existing file. The guard is derived from path.
func (hw *Writer) WriteFile(path string, list []ports.Port) error {
	var buf bytes.Buffer
	if err := hw.Render(&buf, Guard(path), list); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
