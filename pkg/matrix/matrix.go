package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
)

// defaultOS is the runner list every matrix starts with.
var defaultOS = []string{"ubuntu-22.04", "windows-2022", "macos-14"}

// DefaultOS returns a copy of the default runner operating systems.
func DefaultOS() []string {
	return append([]string(nil), defaultOS...)
}

// Matrix is the build matrix handed to the CI system.
type Matrix struct {
	OS             []string `json:"os"`
	PythonVersions []string `json:"python-version"`
}

// Encode returns the matrix as a single-line JSON object with the layout CI
// workflows already parse:
//
//	{"os": ["ubuntu-22.04", "windows-2022", "macos-14"], "python-version": ["3.7"]}
//
// Keys are always emitted in this order and separated by ", " and ": ", so the
// same matrix always encodes to the same bytes.
func (m *Matrix) Encode() string {
	var b strings.Builder
	b.WriteString(`{"os": `)
	writeList(&b, m.OS)
	b.WriteString(`, "python-version": `)
	writeList(&b, m.PythonVersions)
	b.WriteByte('}')
	return b.String()
}

// String implements fmt.Stringer.
func (m *Matrix) String() string { return m.Encode() }

func writeList(b *strings.Builder, items []string) {
	b.WriteByte('[')
	for i, s := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(s))
	}
	b.WriteByte(']')
}

// quote JSON-encodes s like Python's json.dumps with its defaults: no HTML
// escaping, and every rune outside printable ASCII written as a lowercase
// \uXXXX escape (surrogate pairs above the BMP).
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	encoded := strings.TrimSuffix(buf.String(), "\n")

	var b strings.Builder
	for _, r := range encoded {
		switch {
		case r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}
