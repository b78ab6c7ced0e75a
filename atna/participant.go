package atna

import (
	"github.com/persistorai/atna/xmltree"
)

// ActiveParticipant is a user or system involved in the audited event.
type ActiveParticipant struct {
	userID             string
	alternativeUserID  string
	userIsRequestor    bool
	networkAccessPoint string
	networkAccessType  NetworkAccessPointType
	roleIDCodes        []*Code
}

// ParticipantOption configures an ActiveParticipant. A failing option leaves
// the participant unchanged.
type ParticipantOption func(*ActiveParticipant) error

// NewActiveParticipant builds a participant from its required fields and options.
func NewActiveParticipant(userID, alternativeUserID string, userIsRequestor bool, opts ...ParticipantOption) (*ActiveParticipant, error) {
	if userID == "" {
		return nil, constructionError("ActiveParticipant", "UserID is required")
	}

	p := &ActiveParticipant{
		userID:            userID,
		alternativeUserID: alternativeUserID,
		userIsRequestor:   userIsRequestor,
	}
	if err := p.Apply(opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Apply applies opts in order, stopping at the first failure.
func (p *ActiveParticipant) Apply(opts ...ParticipantOption) error {
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return err
		}
	}
	return nil
}

// WithNetworkAccessPoint sets both the access point ID and its type.
func WithNetworkAccessPoint(id string, typ NetworkAccessPointType) ParticipantOption {
	return func(p *ActiveParticipant) error {
		if !typ.Valid() {
			return invalidArgument("NetworkAccessPointTypeCode", "unknown access point type")
		}
		p.networkAccessPoint = id
		p.networkAccessType = typ
		return nil
	}
}

// WithNetworkAccessPointID sets the access point ID.
func WithNetworkAccessPointID(id string) ParticipantOption {
	return func(p *ActiveParticipant) error {
		p.networkAccessPoint = id
		return nil
	}
}

// WithNetworkAccessPointType sets the access point type.
func WithNetworkAccessPointType(typ NetworkAccessPointType) ParticipantOption {
	return func(p *ActiveParticipant) error {
		if !typ.Valid() {
			return invalidArgument("NetworkAccessPointTypeCode", "unknown access point type")
		}
		p.networkAccessType = typ
		return nil
	}
}

// WithRoleIDCodes replaces the participant's role codes. Every code must be valid.
func WithRoleIDCodes(codes ...*Code) ParticipantOption {
	return func(p *ActiveParticipant) error {
		for _, c := range codes {
			if err := c.Validate(); err != nil {
				return fieldError("RoleIDCode", err)
			}
		}
		p.roleIDCodes = append([]*Code(nil), codes...)
		return nil
	}
}

// UserID returns the participant's user ID.
func (p *ActiveParticipant) UserID() string { return p.userID }

// UserIsRequestor reports whether the participant initiated the event.
func (p *ActiveParticipant) UserIsRequestor() bool { return p.userIsRequestor }

// RoleIDCodes returns the participant's role codes.
func (p *ActiveParticipant) RoleIDCodes() []*Code {
	return append([]*Code(nil), p.roleIDCodes...)
}

// Project renders p as an ActiveParticipant element.
func (p *ActiveParticipant) Project() *xmltree.Node {
	n := xmltree.NewElement("ActiveParticipant").
		SetAttribute("UserID", p.userID).
		SetAttribute("AlternativeUserID", p.alternativeUserID).
		SetAttribute("UserIsRequestor", p.userIsRequestor)

	if p.networkAccessPoint != "" {
		n.SetAttribute("NetworkAccessPointID", p.networkAccessPoint)
	}
	if p.networkAccessType != 0 {
		n.SetAttribute("NetworkAccessPointTypeCode", int(p.networkAccessType))
	}

	for _, c := range p.roleIDCodes {
		n.AddChild(c.wrap("RoleIDCode"))
	}

	return n
}
