package encoder

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mcncl/xml2object/internal/models"
)

// Encoder renders JSON values to text
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder with the default two-space indent
func NewEncoder() *Encoder {
	return &Encoder{indent: 2}
}

// NewEncoderWithIndent creates a new Encoder with the given number of spaces
// per indentation level; zero produces compact output
func NewEncoderWithIndent(indent int) *Encoder {
	if indent < 0 {
		indent = 0
	}
	return &Encoder{indent: indent}
}

// Encode serializes a JSON value to text. HTML escaping is disabled so that
// element text like "<b>" survives verbatim.
func (e *Encoder) Encode(value models.JSONValue) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", e.indent))
	}
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	// json.Encoder appends a trailing newline; writeOutput adds its own.
	return strings.TrimRight(buf.String(), "\n"), nil
}
