package atna

import (
	"strconv"

	"github.com/persistorai/atna/xmltree"
)

// AuditMessage is the aggregate root: one event, at least one participant and
// source, and any number of participant objects.
type AuditMessage struct {
	event        *EventIdentification
	participants []*ActiveParticipant
	sources      []*AuditSourceIdentification
	objects      []*ParticipantObjectIdentification
}

// NewAuditMessage assembles a message. The slices are copied.
func NewAuditMessage(
	event *EventIdentification,
	participants []*ActiveParticipant,
	sources []*AuditSourceIdentification,
	objects ...*ParticipantObjectIdentification,
) (*AuditMessage, error) {
	if event == nil {
		return nil, constructionError("AuditMessage", "EventIdentification is required")
	}
	if len(participants) == 0 {
		return nil, constructionError("AuditMessage", "at least one ActiveParticipant is required")
	}
	if len(sources) == 0 {
		return nil, constructionError("AuditMessage", "at least one AuditSourceIdentification is required")
	}

	for i, p := range participants {
		if p == nil {
			return nil, invalidArgument("ActiveParticipant["+strconv.Itoa(i)+"]", "nil participant")
		}
	}
	for i, s := range sources {
		if s == nil {
			return nil, invalidArgument("AuditSourceIdentification["+strconv.Itoa(i)+"]", "nil source")
		}
	}
	for i, o := range objects {
		if o == nil {
			return nil, invalidArgument("ParticipantObjectIdentification["+strconv.Itoa(i)+"]", "nil object")
		}
	}

	return &AuditMessage{
		event:        event,
		participants: append([]*ActiveParticipant(nil), participants...),
		sources:      append([]*AuditSourceIdentification(nil), sources...),
		objects:      append([]*ParticipantObjectIdentification(nil), objects...),
	}, nil
}

// Event returns the message's event descriptor.
func (m *AuditMessage) Event() *EventIdentification { return m.event }

// Project renders m as an AuditMessage element with children in schema order:
// event, participants, sources, objects.
func (m *AuditMessage) Project() *xmltree.Node {
	n := xmltree.NewElement("AuditMessage").AddChild(m.event.Project())

	for _, p := range m.participants {
		n.AddChild(p.Project())
	}
	for _, s := range m.sources {
		n.AddChild(s.Project())
	}
	for _, o := range m.objects {
		n.AddChild(o.Project())
	}

	return n
}

// RenderXML renders any entity as XML text.
func RenderXML(p Projector, opts xmltree.RenderOptions) (string, error) {
	return xmltree.RenderXMLString(p.Project().Project(), opts)
}

// RenderJSON renders any entity's tree as JSON.
func RenderJSON(p Projector, canonical bool) ([]byte, error) {
	return xmltree.RenderJSON(p.Project().Project(), canonical)
}
