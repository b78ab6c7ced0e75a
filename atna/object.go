package atna

import (
	"encoding/base64"

	"github.com/persistorai/atna/xmltree"
)

// ValuePair is a typed detail attached to a participant object. The value is
// kept raw and base64-encoded only when projected.
type ValuePair struct {
	typ   string
	value []byte
}

// NewValuePair copies value into a new pair.
func NewValuePair(typ string, value []byte) *ValuePair {
	return &ValuePair{typ: typ, value: append([]byte(nil), value...)}
}

// Type returns the pair's type key.
func (v *ValuePair) Type() string { return v.typ }

// Project renders v as a ValuePair element.
func (v *ValuePair) Project() *xmltree.Node {
	return xmltree.NewElement("ValuePair").
		SetAttribute("type", v.typ).
		SetAttribute("value", base64.StdEncoding.EncodeToString(v.value))
}

// ParticipantObjectIdentification describes a data object or resource acted upon.
type ParticipantObjectIdentification struct {
	objectID      string
	idTypeCode    *Code
	typeCode      ParticipantObjectType
	typeCodeRole  ParticipantObjectTypeRole
	dataLifeCycle DataLifeCycle
	sensitivity   string
	name          string
	query         string
	detail        *ValuePair
}

// ObjectOption configures a ParticipantObjectIdentification. A failing option
// leaves the object unchanged.
type ObjectOption func(*ParticipantObjectIdentification) error

// NewParticipantObject builds an object descriptor from its required ID and ID type code.
func NewParticipantObject(objectID string, idTypeCode *Code, opts ...ObjectOption) (*ParticipantObjectIdentification, error) {
	if objectID == "" {
		return nil, constructionError("ParticipantObjectIdentification", "ParticipantObjectID is required")
	}
	if err := idTypeCode.Validate(); err != nil {
		return nil, fieldError("ParticipantObjectIDTypeCode", err)
	}

	o := &ParticipantObjectIdentification{objectID: objectID, idTypeCode: idTypeCode}
	if err := o.Apply(opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// Apply applies opts in order, stopping at the first failure.
func (o *ParticipantObjectIdentification) Apply(opts ...ObjectOption) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// WithObjectTypeCode sets ParticipantObjectTypeCode.
func WithObjectTypeCode(t ParticipantObjectType) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		if !t.Valid() {
			return invalidArgument("ParticipantObjectTypeCode", "unknown object type")
		}
		o.typeCode = t
		return nil
	}
}

// WithObjectTypeCodeRole sets ParticipantObjectTypeCodeRole.
func WithObjectTypeCodeRole(r ParticipantObjectTypeRole) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		if !r.Valid() {
			return invalidArgument("ParticipantObjectTypeCodeRole", "unknown object role")
		}
		o.typeCodeRole = r
		return nil
	}
}

// WithDataLifeCycle sets ParticipantObjectDataLifeCycle.
func WithDataLifeCycle(l DataLifeCycle) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		if !l.Valid() {
			return invalidArgument("ParticipantObjectDataLifeCycle", "unknown life cycle stage")
		}
		o.dataLifeCycle = l
		return nil
	}
}

// WithSensitivity sets ParticipantObjectSensitivity.
func WithSensitivity(s string) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		o.sensitivity = s
		return nil
	}
}

// WithObjectName sets ParticipantObjectName. It takes precedence over a query.
func WithObjectName(name string) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		o.name = name
		return nil
	}
}

// WithObjectQuery sets ParticipantObjectQuery.
func WithObjectQuery(query string) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		o.query = query
		return nil
	}
}

// WithObjectDetail attaches a value pair as ParticipantObjectDetail.
func WithObjectDetail(v *ValuePair) ObjectOption {
	return func(o *ParticipantObjectIdentification) error {
		if v == nil {
			return invalidArgument("ParticipantObjectDetail", "nil value pair")
		}
		o.detail = v
		return nil
	}
}

// ObjectID returns ParticipantObjectID.
func (o *ParticipantObjectIdentification) ObjectID() string { return o.objectID }

// Project renders o as a ParticipantObjectIdentification element.
func (o *ParticipantObjectIdentification) Project() *xmltree.Node {
	n := xmltree.NewElement("ParticipantObjectIdentification").
		SetAttribute("ParticipantObjectID", o.objectID)

	if o.typeCode != 0 {
		n.SetAttribute("ParticipantObjectTypeCode", int(o.typeCode))
	}
	if o.typeCodeRole != 0 {
		n.SetAttribute("ParticipantObjectTypeCodeRole", int(o.typeCodeRole))
	}
	if o.dataLifeCycle != 0 {
		n.SetAttribute("ParticipantObjectDataLifeCycle", int(o.dataLifeCycle))
	}
	if o.sensitivity != "" {
		n.SetAttribute("ParticipantObjectSensitivity", o.sensitivity)
	}

	n.AddChild(o.idTypeCode.wrap("ParticipantObjectIDTypeCode"))

	switch {
	case o.name != "":
		n.AddChild(xmltree.NewElement("ParticipantObjectName").AddChild(xmltree.NewText(o.name)))
	case o.query != "":
		n.AddChild(xmltree.NewElement("ParticipantObjectQuery").AddChild(xmltree.NewText(o.query)))
	}

	if o.detail != nil {
		n.AddChild(xmltree.NewElement("ParticipantObjectDetail").AddChild(o.detail.Project()))
	}

	return n
}
