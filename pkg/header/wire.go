package header

import (
	"io"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// WriteTo emits the headers in wire form, one "Name: value\r\n" line per
// entry. Comma headers are written as one line per value. Lines with a name
// that is not a valid token, or a value containing control characters, are
// skipped.
func (h Headers) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, line := range h.lines {
		if !httpguts.ValidHeaderFieldName(line.name) {
			continue
		}
		if IsCommaHeader(line.key) {
			for _, value := range line.values {
				writeField(&b, line.name, value)
			}
			continue
		}
		writeField(&b, line.name, line.CommaSeparated())
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeField(b *strings.Builder, name string, value string) {
	if !httpguts.ValidHeaderFieldValue(value) {
		return
	}
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}
