// Package models defines the request payloads accepted by the message service.
package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/persistorai/atna/atna"
)

// MessageKind names one of the canonical audit messages.
type MessageKind string

const (
	KindUserLogin          MessageKind = "user-login"
	KindAppActivity        MessageKind = "app-activity"
	KindAuditLogUsed       MessageKind = "audit-log-used"
	KindNodeAuthentication MessageKind = "node-authentication"
)

// Kinds lists every supported message kind.
var Kinds = []MessageKind{KindUserLogin, KindAppActivity, KindAuditLogUsed, KindNodeAuthentication}

// Valid reports whether k is a supported kind.
func (k MessageKind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

const maxFieldLen = 255

// Detail is an optional typed value attached to the audit log object.
type Detail struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// MessageRequest describes one audit message to build. Fields that do not
// apply to Kind are ignored.
type MessageRequest struct {
	ID           string      `json:"id,omitempty" yaml:"id,omitempty"`
	Kind         MessageKind `json:"kind" yaml:"kind"`
	Outcome      string      `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	SystemName   string      `json:"system_name,omitempty" yaml:"system_name,omitempty"`
	Hostname     string      `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Username     string      `json:"username,omitempty" yaml:"username,omitempty"`
	UserRole     string      `json:"user_role,omitempty" yaml:"user_role,omitempty"`
	UserRoleCode string      `json:"user_role_code,omitempty" yaml:"user_role_code,omitempty"`
	AuditLogURI  string      `json:"audit_log_uri,omitempty" yaml:"audit_log_uri,omitempty"`
	Detail       *Detail     `json:"detail,omitempty" yaml:"detail,omitempty"`
	NodeIP       string      `json:"node_ip,omitempty" yaml:"node_ip,omitempty"`
	Stop         bool        `json:"stop,omitempty" yaml:"stop,omitempty"`
}

// OutcomeIndicator returns the parsed outcome, defaulting to success.
func (r *MessageRequest) OutcomeIndicator() (atna.EventOutcome, error) {
	if r.Outcome == "" {
		return atna.OutcomeSuccess, nil
	}

	o, err := atna.ParseOutcome(r.Outcome)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, r.Outcome)
	}

	return o, nil
}

// Validate checks that the fields Kind needs are present and within limits.
// If ID is empty, a UUID is auto-generated.
func (r *MessageRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if r.Kind == "" {
		return ErrMissingKind
	}

	if !r.Kind.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownKind, r.Kind)
	}

	if r.SystemName == "" {
		return ErrMissingSystemName
	}

	if err := r.validateLengths(); err != nil {
		return err
	}

	if _, err := r.OutcomeIndicator(); err != nil {
		return err
	}

	switch r.Kind {
	case KindUserLogin:
		return r.validateUser()
	case KindAuditLogUsed:
		if err := r.validateUser(); err != nil {
			return err
		}
		if r.AuditLogURI == "" {
			return ErrMissingAuditLogURI
		}
	case KindNodeAuthentication:
		if r.NodeIP == "" {
			return ErrMissingNodeIP
		}
	}

	return nil
}

func (r *MessageRequest) validateUser() error {
	if r.Username == "" {
		return ErrMissingUsername
	}

	if r.UserRole == "" {
		return ErrMissingRole
	}

	return nil
}

func (r *MessageRequest) validateLengths() error {
	fields := []struct {
		name  string
		value string
	}{
		{"id", r.ID},
		{"system_name", r.SystemName},
		{"hostname", r.Hostname},
		{"username", r.Username},
		{"user_role", r.UserRole},
		{"user_role_code", r.UserRoleCode},
		{"node_ip", r.NodeIP},
	}

	for _, f := range fields {
		if len(f.value) > maxFieldLen {
			return ErrFieldTooLong(f.name, maxFieldLen)
		}
	}

	return nil
}
