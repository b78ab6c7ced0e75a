// Package xmltree is a minimal composite document tree: element and text nodes
// with ordered attributes and children, a structural projection, and renderers
// that turn the projection into XML or JSON.
package xmltree

import (
	"fmt"
	"strconv"
)

// Kind tags a node as an element or a text leaf.
type Kind string

const (
	KindElement Kind = "element"
	KindText    Kind = "text"
)

// Attribute is a single name/value pair. Value holds a scalar: string, bool,
// an integer or float type, or a fmt.Stringer.
type Attribute struct {
	Name  string
	Value any
}

// Attributes keeps attributes in insertion order.
type Attributes []Attribute

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return nil, false
}

// Set stores value under name, replacing an existing entry in place.
func (a Attributes) Set(name string, value any) Attributes {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}

	return append(a, Attribute{Name: name, Value: value})
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a) }

// Equal reports whether both sets hold the same names with the same rendered
// values, ignoring order.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}

	for _, attr := range a {
		v, ok := other.Get(attr.Name)
		if !ok || FormatValue(v) != FormatValue(attr.Value) {
			return false
		}
	}

	return true
}

// Node is an element or text node. Each node exclusively owns its children.
type Node struct {
	kind       Kind
	name       string
	text       string
	attributes Attributes
	children   []*Node
}

// NewElement returns an element node with the given name.
func NewElement(name string) *Node {
	return &Node{kind: KindElement, name: name}
}

// NewText returns a text leaf.
func NewText(text string) *Node {
	return &Node{kind: KindText, text: text}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the element name.
func (n *Node) Name() string { return n.name }

// Text returns the text content.
func (n *Node) Text() string { return n.text }

// Attributes returns a copy of the node's attributes.
func (n *Node) Attributes() Attributes {
	out := make(Attributes, len(n.attributes))
	copy(out, n.attributes)
	return out
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetName sets the element name.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

// SetText sets the text content.
func (n *Node) SetText(text string) *Node {
	n.text = text
	return n
}

// AddChild appends children in order. Nil children are skipped, and text
// nodes never take children.
func (n *Node) AddChild(children ...*Node) *Node {
	if n.kind == KindText {
		return n
	}

	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}

	return n
}

// SetAttribute sets a single attribute. Ignored on text nodes.
func (n *Node) SetAttribute(name string, value any) *Node {
	if n.kind == KindText {
		return n
	}

	n.attributes = n.attributes.Set(name, value)
	return n
}

// SetAttributes replaces all attributes. Ignored on text nodes.
func (n *Node) SetAttributes(attrs Attributes) *Node {
	if n.kind == KindText {
		return n
	}

	n.attributes = make(Attributes, len(attrs))
	copy(n.attributes, attrs)
	return n
}

// Projection is the plain structural form of a node consumed by renderers.
// Field names follow the xml-js non-compact layout.
type Projection struct {
	Type       Kind         `json:"type"`
	Name       string       `json:"name,omitempty"`
	Text       string       `json:"text,omitempty"`
	Attributes Attributes   `json:"attributes,omitempty"`
	Elements   []Projection `json:"elements,omitempty"`
}

// Project returns the structural representation of n and its subtree.
func (n *Node) Project() Projection {
	p := Projection{Type: n.kind}

	if n.kind == KindText {
		p.Text = n.text
		return p
	}

	p.Name = n.name
	p.Text = n.text
	if len(n.attributes) > 0 {
		p.Attributes = n.Attributes()
	}

	if len(n.children) > 0 {
		p.Elements = make([]Projection, 0, len(n.children))
		for _, c := range n.children {
			p.Elements = append(p.Elements, c.Project())
		}
	}

	return p
}

// FormatValue renders an attribute value as text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
