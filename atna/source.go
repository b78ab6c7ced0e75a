package atna

import (
	"github.com/persistorai/atna/xmltree"
)

// AuditSourceIdentification identifies the component that generated the record.
type AuditSourceIdentification struct {
	enterpriseSiteID string
	sourceID         string
	sourceTypeCode   *Code
}

// NewAuditSource builds a source descriptor. enterpriseSiteID may be empty.
func NewAuditSource(enterpriseSiteID, sourceID string, sourceTypeCode *Code) (*AuditSourceIdentification, error) {
	if err := sourceTypeCode.Validate(); err != nil {
		return nil, fieldError("AuditSourceTypeCode", err)
	}
	if sourceID == "" {
		return nil, constructionError("AuditSourceIdentification", "AuditSourceID is required")
	}

	return &AuditSourceIdentification{
		enterpriseSiteID: enterpriseSiteID,
		sourceID:         sourceID,
		sourceTypeCode:   sourceTypeCode,
	}, nil
}

// SourceID returns the audit source ID.
func (s *AuditSourceIdentification) SourceID() string { return s.sourceID }

// Project renders s as an AuditSourceIdentification element. The type code is
// flattened onto the element instead of nested.
func (s *AuditSourceIdentification) Project() *xmltree.Node {
	n := xmltree.NewElement("AuditSourceIdentification")

	if s.enterpriseSiteID != "" {
		n.SetAttribute("AuditEnterpriseSiteID", s.enterpriseSiteID)
	}
	n.SetAttribute("AuditSourceID", s.sourceID).
		SetAttribute("code", s.sourceTypeCode.Value()).
		SetAttribute("codeSystemName", s.sourceTypeCode.System())

	if text := s.sourceTypeCode.OriginalText(); text != "" {
		n.SetAttribute("originalText", text)
	}

	return n
}
