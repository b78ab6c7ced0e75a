package xmltree

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gowebpki/jcs"
)

// ErrUnnamedElement is returned when an element without a name reaches a renderer.
var ErrUnnamedElement = errors.New("xmltree: element has no name")

// RenderOptions controls XML output formatting.
type RenderOptions struct {
	// Indent is the number of spaces per nesting level. Zero renders compact output.
	Indent int
	// Declaration prepends <?xml version="1.0" encoding="UTF-8"?>.
	Declaration bool
}

// DefaultRenderOptions renders with a four-space indent and no declaration.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Indent: 4}
}

// RenderXML writes p as XML. Attribute order and child order are preserved,
// attribute values and text are entity-escaped, and elements with no content
// are self-closed.
func RenderXML(w io.Writer, p Projection, opts RenderOptions) error {
	xw := &xmlWriter{w: w}
	if opts.Indent > 0 {
		xw.indent = strings.Repeat(" ", opts.Indent)
	}

	if opts.Declaration {
		xw.writeString(xml.Header)
		if xw.err != nil {
			return fmt.Errorf("writing declaration: %w", xw.err)
		}
	}

	if err := xw.element(p, 0); err != nil {
		return err
	}

	return xw.err
}

// RenderXMLString is RenderXML into a string.
func RenderXMLString(p Projection, opts RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := RenderXML(&buf, p, opts); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// xmlWriter keeps the first write error; later writes are no-ops.
type xmlWriter struct {
	w       io.Writer
	indent  string
	started bool
	err     error
}

func (x *xmlWriter) writeString(s string) {
	if x.err != nil {
		return
	}
	_, x.err = io.WriteString(x.w, s)
}

func (x *xmlWriter) escape(s string) {
	if x.err != nil {
		return
	}
	x.err = xml.EscapeText(x.w, []byte(s))
}

// escapeText escapes character data but keeps line breaks literal.
func (x *xmlWriter) escapeText(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			x.writeString("\n")
		}
		x.escape(line)
	}
}

// newline starts a new indented line. The first tag of a document gets none.
func (x *xmlWriter) newline(depth int) {
	if x.indent == "" {
		return
	}
	if x.started {
		x.writeString("\n" + strings.Repeat(x.indent, depth))
	}
}

func (x *xmlWriter) element(p Projection, depth int) error {
	if p.Type == KindText {
		x.escapeText(p.Text)
		return x.err
	}
	if p.Name == "" {
		return ErrUnnamedElement
	}

	x.newline(depth)
	x.started = true
	x.writeString("<" + p.Name)
	for _, attr := range p.Attributes {
		x.writeString(" " + attr.Name + `="`)
		x.escape(FormatValue(attr.Value))
		x.writeString(`"`)
	}

	if p.Text == "" && len(p.Elements) == 0 {
		x.writeString("/>")
		return x.err
	}
	x.writeString(">")

	x.escapeText(p.Text)
	nested := false
	for _, child := range p.Elements {
		if child.Type == KindText {
			x.escapeText(child.Text)
			continue
		}
		nested = true
		if err := x.element(child, depth+1); err != nil {
			return err
		}
	}

	if nested {
		x.newline(depth)
	}
	x.writeString("</" + p.Name + ">")

	if x.err != nil {
		return fmt.Errorf("encoding <%s>: %w", p.Name, x.err)
	}
	return nil
}

// MarshalJSON renders attributes as a JSON object in insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RenderJSON renders p as JSON. Canonical output follows RFC 8785, with keys
// sorted and no insignificant whitespace; otherwise it is indented by two spaces.
func RenderJSON(p Projection, canonical bool) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshalling projection: %w", err)
	}

	if canonical {
		out, err := jcs.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing projection: %w", err)
		}
		return out, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting projection: %w", err)
	}

	return buf.Bytes(), nil
}
