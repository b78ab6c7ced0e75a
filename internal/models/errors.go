package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for request validation.
var (
	ErrMissingKind        = errors.New("kind is required")
	ErrUnknownKind        = errors.New("unknown message kind")
	ErrMissingSystemName  = errors.New("system_name is required")
	ErrMissingUsername    = errors.New("username is required")
	ErrMissingRole        = errors.New("user_role is required")
	ErrMissingAuditLogURI = errors.New("audit_log_uri is required")
	ErrMissingNodeIP      = errors.New("node_ip is required")
	ErrInvalidOutcome     = errors.New("invalid outcome")
	ErrUnknownFormat      = errors.New("unknown output format")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
