package atna

import (
	"time"

	"github.com/persistorai/atna/xmltree"
)

// EventDateTimeLayout is ISO-8601 in UTC with millisecond precision.
const EventDateTimeLayout = "2006-01-02T15:04:05.000Z"

// EventIdentification describes what happened, when, and with which outcome.
type EventIdentification struct {
	actionCode    EventActionCode
	dateTime      time.Time
	outcome       EventOutcome
	eventID       *Code
	eventTypeCode *Code
	purposeOfUse  *Code
}

// EventOption configures an EventIdentification. A failing option leaves the
// event unchanged.
type EventOption func(*EventIdentification) error

// NewEventIdentification builds an event descriptor. at is normalized to UTC.
// outcome may be a code or a name, see ParseOutcome.
func NewEventIdentification(action EventActionCode, at time.Time, outcome EventOutcome, opts ...EventOption) (*EventIdentification, error) {
	if at.IsZero() {
		return nil, constructionError("EventIdentification", "EventDateTime is required")
	}
	if !action.Valid() {
		return nil, invalidArgument("EventActionCode", "unknown action code "+string(action))
	}
	outcome, err := ParseOutcome(string(outcome))
	if err != nil {
		return nil, fieldError("EventOutcomeIndicator", err)
	}

	e := &EventIdentification{
		actionCode: action,
		dateTime:   at.UTC(),
		outcome:    outcome,
	}
	if err := e.Apply(opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Apply applies opts in order, stopping at the first failure.
func (e *EventIdentification) Apply(opts ...EventOption) error {
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return err
		}
	}
	return nil
}

// WithEventID sets the EventID code.
func WithEventID(c *Code) EventOption {
	return func(e *EventIdentification) error {
		if err := c.Validate(); err != nil {
			return fieldError("EventID", err)
		}
		e.eventID = c
		return nil
	}
}

// WithEventTypeCode sets the EventTypeCode code.
func WithEventTypeCode(c *Code) EventOption {
	return func(e *EventIdentification) error {
		if err := c.Validate(); err != nil {
			return fieldError("EventTypeCode", err)
		}
		e.eventTypeCode = c
		return nil
	}
}

// WithPurposeOfUse sets the PurposeOfUse code.
func WithPurposeOfUse(c *Code) EventOption {
	return func(e *EventIdentification) error {
		if err := c.Validate(); err != nil {
			return fieldError("PurposeOfUse", err)
		}
		e.purposeOfUse = c
		return nil
	}
}

// DateTime returns the event time in UTC.
func (e *EventIdentification) DateTime() time.Time { return e.dateTime }

// Project renders e as an EventIdentification element.
func (e *EventIdentification) Project() *xmltree.Node {
	n := xmltree.NewElement("EventIdentification").
		SetAttribute("EventActionCode", string(e.actionCode)).
		SetAttribute("EventDateTime", e.dateTime.Format(EventDateTimeLayout)).
		SetAttribute("EventOutcomeIndicator", string(e.outcome))

	if e.eventID != nil {
		n.AddChild(e.eventID.wrap("EventId"))
	}
	if e.purposeOfUse != nil {
		n.AddChild(e.purposeOfUse.wrap("PurposeOfUse"))
	}
	if e.eventTypeCode != nil {
		n.AddChild(e.eventTypeCode.wrap("EventTypeCode"))
	}

	return n
}
