// Package transcoder converts parsed XML element trees into generic JSON
// value trees: repeated sibling tags fold into arrays, leaf text is coerced
// to booleans and numbers where it parses as one, and attributes merge into
// the same object as child elements.
package transcoder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/mcncl/xml2object/internal/config"
	"github.com/mcncl/xml2object/internal/models"
)

// numberRegex matches the full numeric grammar accepted by scalar coercion:
// optional leading minus, base-10 digits, optional fraction, optional
// exponent. strconv.ParseFloat alone is too permissive for this purpose (it
// accepts hex floats, "Inf", "NaN" and digit underscores), so candidates are
// screened before parsing.
var numberRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// nodeKind classifies an element by which of children, text and attributes
// it carries. The classification decides the JSON shape the element takes.
type nodeKind int

const (
	nodeEmpty nodeKind = iota
	nodeText
	nodeAttributes
	nodeTextAndAttributes
	nodeParent
	// nodeMixed is an element with both child elements and nonblank text.
	// Children take precedence; the interleaved text is dropped.
	nodeMixed
)

// classify inspects an element's children, text and attributes. Text that is
// empty after trimming counts as absent.
func classify(el *etree.Element) nodeKind {
	hasText := strings.TrimSpace(el.Text()) != ""
	if len(el.ChildElements()) == 0 {
		if !hasText {
			if len(el.Attr) == 0 {
				return nodeEmpty
			}
			return nodeAttributes
		}
		if len(el.Attr) == 0 {
			return nodeText
		}
		return nodeTextAndAttributes
	}
	if hasText {
		return nodeMixed
	}
	return nodeParent
}

// Transcoder converts parsed XML element trees into JSON value trees.
// It holds no state beyond its configuration: it never mutates its input and
// is safe for concurrent use from multiple goroutines.
type Transcoder struct {
	config *config.Config
}

// NewTranscoder creates a new Transcoder with default policies.
func NewTranscoder() *Transcoder {
	return &Transcoder{
		config: config.NewConfig(),
	}
}

// NewTranscoderWithConfig creates a new Transcoder with custom policies.
func NewTranscoderWithConfig(cfg *config.Config) *Transcoder {
	return &Transcoder{
		config: cfg,
	}
}

// Transcode converts the tree rooted at el into a JSON object with exactly
// one key, the root element's tag name, mapped to the root's content. The
// input tree is borrowed and never modified; the returned tree is freshly
// allocated. Transcode is total: every well-formed element tree maps to a
// JSON value, and values that fail type coercion degrade to strings rather
// than erroring.
func (t *Transcoder) Transcode(el *etree.Element) models.JSONObject {
	content := t.convert(el)
	obj, ok := content.(models.JSONObject)
	if !ok {
		// A root text leaf is never collapsed to a bare scalar; its text
		// surfaces under the reserved text key instead.
		obj = models.JSONObject{t.config.Keys.TextKey: content}
	}
	return models.JSONObject{t.config.GetKeyName(el.Tag): obj}
}

// convert produces an element's own value: an object for structured
// elements, a coerced scalar for a plain text leaf. The scalar form is what
// lets <name>Alex</name> appear as "Alex" rather than an object when
// inserted into its parent.
func (t *Transcoder) convert(el *etree.Element) models.JSONValue {
	switch classify(el) {
	case nodeEmpty:
		return models.JSONObject{}
	case nodeText:
		return t.coerce(el.Text())
	case nodeAttributes:
		return t.attributeObject(el)
	case nodeTextAndAttributes:
		obj := t.attributeObject(el)
		obj[t.config.Keys.TextKey] = t.coerce(el.Text())
		return obj
	default: // nodeParent, nodeMixed
		return t.childObject(el)
	}
}

// attributeObject builds an object from an element's attributes in document
// order, coercing each value. Duplicate keys keep the last occurrence.
func (t *Transcoder) attributeObject(el *etree.Element) models.JSONObject {
	obj := make(models.JSONObject, len(el.Attr))
	for _, attr := range el.Attr {
		key := t.config.Keys.AttributePrefix + t.config.GetKeyName(attr.Key)
		obj[key] = t.coerce(attr.Value)
	}
	return obj
}

// childObject builds the object for an element with child elements.
// Attributes go in first, then children grouped by key in order of first
// appearance: a single child inserts its value directly, repeated siblings
// fold into an array in document order. A child overwrites a same-named
// attribute key (later insertion wins), and the overwritten value is never
// folded into the sibling array.
func (t *Transcoder) childObject(el *etree.Element) models.JSONObject {
	obj := t.attributeObject(el)
	folded := make(map[string]bool)
	for _, child := range el.ChildElements() {
		key := t.config.GetKeyName(child.Tag)
		value := t.convert(child)
		if !folded[key] {
			obj[key] = value
			folded[key] = true
			continue
		}
		if arr, ok := obj[key].(models.JSONArray); ok {
			obj[key] = append(arr, value)
		} else {
			obj[key] = models.JSONArray{obj[key], value}
		}
	}
	return obj
}

// coerce applies the scalar coercion chain to raw text: boolean literal,
// then full-string base-10 number, then string. Each attempt is total and
// the first match wins; the string fallback preserves the original,
// untrimmed text.
func (t *Transcoder) coerce(text string) models.JSONValue {
	trimmed := strings.TrimSpace(text)

	if t.config.Coercion.Booleans {
		switch trimmed {
		case "true":
			return true
		case "false":
			return false
		}
	}

	if t.config.Coercion.Numbers && numberRegex.MatchString(trimmed) {
		// Out-of-range literals like 1e999 fail here and fall through to
		// the string form instead of erroring.
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
	}

	return text
}
