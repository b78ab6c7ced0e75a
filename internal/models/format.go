package models

import (
	"fmt"
	"strings"
)

// Format is an output encoding for rendered messages.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	// FormatJCS is RFC 8785 canonical JSON, suitable for hashing or signing.
	FormatJCS Format = "jcs"
)

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXML, FormatJSON, FormatJCS:
		return f, nil
	}

	return "", fmt.Errorf("%w %q (want xml, json or jcs)", ErrUnknownFormat, s)
}
