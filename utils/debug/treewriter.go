// Package debug produces indented human readable dumps of parsed structures.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates dump lines, each indented by its depth.
type TreeWriter struct {
	sb strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// WriteTo implements io.WriterTo.
func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.sb.String())
	return int64(n), err
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.sb.WriteString(indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// Field writes "name = value" line, value is formatted with %v.
func (tw *TreeWriter) Field(depth int, name string, value any) {
	tw.pad(depth)
	tw.sb.WriteString(name)
	tw.sb.WriteString(" = ")
	fmt.Fprint(&tw.sb, value)
	tw.sb.WriteByte('\n')
}

// TextBlock writes label and quoted text, so that whitespace and control
// characters stay visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	tw.sb.WriteString(quote(value))
	tw.sb.WriteByte('\n')
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.QuoteToGraphic(raw)
}
