// Package atna models IHE ATNA / DICOM PS3.15 audit messages as typed
// entities that project themselves into an xmltree document, and provides
// factory functions for the canonical audit events.
package atna

import (
	"github.com/persistorai/atna/xmltree"
)

// Projector is implemented by every entity that can render itself as a tree.
type Projector interface {
	Project() *xmltree.Node
}

// Code is a coded value: a code from a coding system with optional
// original and display text. The code is either a string or an int.
type Code struct {
	code         any
	system       string
	originalText string
	displayName  string
}

// NewCode returns a coded value with a string code.
func NewCode(code, system string) *Code {
	return &Code{code: code, system: system}
}

// NewNumericCode returns a coded value with an integer code.
func NewNumericCode(code int, system string) *Code {
	return &Code{code: code, system: system}
}

// WithOriginalText returns a copy of c carrying originalText.
func (c *Code) WithOriginalText(text string) *Code {
	out := *c
	out.originalText = text
	return &out
}

// WithDisplayName returns a copy of c carrying displayName.
func (c *Code) WithDisplayName(name string) *Code {
	out := *c
	out.displayName = name
	return &out
}

// Value returns the code as stored: a string or an int.
func (c *Code) Value() any { return c.code }

// System returns the coding system name.
func (c *Code) System() string { return c.system }

// OriginalText returns the original text, if any.
func (c *Code) OriginalText() string { return c.originalText }

// DisplayName returns the display name, if any.
func (c *Code) DisplayName() string { return c.displayName }

// Validate reports whether c can be embedded in an entity.
func (c *Code) Validate() error {
	if c == nil {
		return invalidArgument("code", "nil coded value")
	}

	switch v := c.code.(type) {
	case string:
		if v == "" {
			return invalidArgument("code", "empty code")
		}
	case int:
	default:
		return invalidArgument("code", "code must be a string or an integer")
	}

	return nil
}

// Project renders c as a Code element.
func (c *Code) Project() *xmltree.Node {
	n := xmltree.NewElement("Code").
		SetAttribute("code", c.code).
		SetAttribute("codeSystemName", c.system)

	if c.originalText != "" {
		n.SetAttribute("originalText", c.originalText)
	}
	if c.displayName != "" {
		n.SetAttribute("displayName", c.displayName)
	}

	return n
}

// wrap returns an element named name holding the projection of c.
func (c *Code) wrap(name string) *xmltree.Node {
	return xmltree.NewElement(name).AddChild(c.Project())
}
