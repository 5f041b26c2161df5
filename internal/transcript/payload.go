package transcript

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Payload is the raw JSON tree attached to an entry. A nil Payload means
// the entry carries no structured data. Payloads compare by value, not
// identity: two entries with byte-equal JSON are considered unchanged.
type Payload []byte

// Empty reports whether the payload is absent.
func (p Payload) Empty() bool {
	return len(p) == 0
}

// Equal reports whether two payloads hold the same bytes.
func (p Payload) Equal(other Payload) bool {
	return bytes.Equal(p, other)
}

// Valid reports whether the payload holds well-formed JSON.
func (p Payload) Valid() bool {
	return gjson.ValidBytes(p)
}

// Indented pretty-prints the payload as indented text for the expanded
// breadcrumb view. Each line is prefixed with the given indent string.
// Invalid JSON is returned as-is so a bad payload still shows something.
func (p Payload) Indented(indent string) string {
	if p.Empty() {
		return ""
	}

	src := []byte(p)
	if p.Valid() {
		src = pretty.PrettyOptions(src, &pretty.Options{Indent: "  ", SortKeys: true})
	}

	text := strings.TrimRight(string(src), "\n")
	if indent == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
