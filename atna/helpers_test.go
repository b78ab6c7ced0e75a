package atna

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/persistorai/atna/xmltree"
)

var fixedTime = time.Date(2024, 3, 9, 14, 30, 15, 123456789, time.FixedZone("CET", 3600))

// fixClock pins the factory timestamp for the duration of the test.
func fixClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return fixedTime }
	t.Cleanup(func() { now = orig })
}

type xmlCode struct {
	Code         string `xml:"code,attr"`
	System       string `xml:"codeSystemName,attr"`
	OriginalText string `xml:"originalText,attr"`
	DisplayName  string `xml:"displayName,attr"`
}

type xmlWrapped struct {
	Code xmlCode `xml:"Code"`
}

type xmlEvent struct {
	Action       string      `xml:"EventActionCode,attr"`
	DateTime     string      `xml:"EventDateTime,attr"`
	Outcome      string      `xml:"EventOutcomeIndicator,attr"`
	EventID      *xmlWrapped `xml:"EventId"`
	PurposeOfUse *xmlWrapped `xml:"PurposeOfUse"`
	TypeCode     *xmlWrapped `xml:"EventTypeCode"`
}

type xmlParticipant struct {
	UserID      string       `xml:"UserID,attr"`
	AltUserID   string       `xml:"AlternativeUserID,attr"`
	Requestor   string       `xml:"UserIsRequestor,attr"`
	AccessPoint string       `xml:"NetworkAccessPointID,attr"`
	AccessType  string       `xml:"NetworkAccessPointTypeCode,attr"`
	RoleIDCodes []xmlWrapped `xml:"RoleIDCode"`
}

type xmlSource struct {
	SiteID       string `xml:"AuditEnterpriseSiteID,attr"`
	SourceID     string `xml:"AuditSourceID,attr"`
	Code         string `xml:"code,attr"`
	System       string `xml:"codeSystemName,attr"`
	OriginalText string `xml:"originalText,attr"`
}

type xmlValuePair struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type xmlObject struct {
	ObjectID    string     `xml:"ParticipantObjectID,attr"`
	TypeCode    string     `xml:"ParticipantObjectTypeCode,attr"`
	Role        string     `xml:"ParticipantObjectTypeCodeRole,attr"`
	LifeCycle   string     `xml:"ParticipantObjectDataLifeCycle,attr"`
	Sensitivity string     `xml:"ParticipantObjectSensitivity,attr"`
	IDTypeCode  xmlWrapped `xml:"ParticipantObjectIDTypeCode"`
	Name        *string    `xml:"ParticipantObjectName"`
	Query       *string    `xml:"ParticipantObjectQuery"`
	Detail      *struct {
		ValuePair xmlValuePair `xml:"ValuePair"`
	} `xml:"ParticipantObjectDetail"`
}

type xmlMessage struct {
	XMLName      xml.Name         `xml:"AuditMessage"`
	Event        xmlEvent         `xml:"EventIdentification"`
	Participants []xmlParticipant `xml:"ActiveParticipant"`
	Sources      []xmlSource      `xml:"AuditSourceIdentification"`
	Objects      []xmlObject      `xml:"ParticipantObjectIdentification"`
}

func parseMessage(t *testing.T, doc string) xmlMessage {
	t.Helper()
	var m xmlMessage
	require.NoError(t, xml.Unmarshal([]byte(doc), &m), doc)
	return m
}

// childOrder returns the names of the root element's direct children.
func childOrder(t *testing.T, doc string) []string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	var names []string
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return names
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 {
				names = append(names, el.Name.Local)
			}
		case xml.EndElement:
			depth--
		}
	}
}

func childNames(n *xmltree.Node) []string {
	var names []string
	for _, c := range n.Children() {
		names = append(names, c.Name())
	}
	return names
}

func attr(t *testing.T, n *xmltree.Node, name string) any {
	t.Helper()
	v, ok := n.Attributes().Get(name)
	require.True(t, ok, "attribute %q missing", name)
	return v
}

func renderDoc(t *testing.T, p Projector) string {
	t.Helper()
	out, err := RenderXML(p, xmltree.DefaultRenderOptions())
	require.NoError(t, err)
	return out
}
