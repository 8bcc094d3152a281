package syntaxplugin

import "strings"

// OutputSink receives rendered output. It is append-only: plugins never read,
// replace or truncate what other renderers wrote before them.
type OutputSink interface {
	Append(text string)
}

// Document is the OutputSink used by Pipeline. The zero value is ready to use.
type Document struct {
	sb strings.Builder
}

// Append implements OutputSink
func (d *Document) Append(text string) {
	d.sb.WriteString(text)
}

// String returns everything appended so far
func (d *Document) String() string {
	return d.sb.String()
}

// Len returns the number of bytes appended so far
func (d *Document) Len() int {
	return d.sb.Len()
}
