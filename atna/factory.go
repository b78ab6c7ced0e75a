package atna

import (
	"time"

	"github.com/persistorai/atna/xmltree"
)

// DefaultAppUser is the launcher recorded by application activity messages
// when no username is given.
const DefaultAppUser = "root"

// now is the timestamp source; overridden in tests.
var now = time.Now

// systemParticipant is the reporting application: not the requestor, reached
// through its host name, in the DICOM "Application" role.
func systemParticipant(systemName, hostname string) (*ActiveParticipant, error) {
	opts := []ParticipantOption{WithRoleIDCodes(dicomCode(CodeApplication, "Application"))}
	if hostname != "" {
		opts = append(opts, WithNetworkAccessPoint(hostname, NetworkAccessPointDNS))
	}

	return NewActiveParticipant(systemName, "", false, opts...)
}

// userParticipant is the requesting user. The role is coded as userRole in
// the userRoleCode coding system, with userRole as its original text.
func userParticipant(username, userRole, userRoleCode string) (*ActiveParticipant, error) {
	role := NewCode(userRole, userRoleCode).WithOriginalText(userRole)
	return NewActiveParticipant(username, "", true, WithRoleIDCodes(role))
}

func sources(systemName string, typ AuditSourceType) ([]*AuditSourceIdentification, error) {
	src, err := NewAuditSource("", systemName, typ.Code())
	if err != nil {
		return nil, err
	}
	return []*AuditSourceIdentification{src}, nil
}

// NewUserLoginMessage builds a "UserAuthenticated / Login" message with the
// system and the user as participants.
func NewUserLoginMessage(outcome EventOutcome, systemName, hostname, username, userRole, userRoleCode string) (*AuditMessage, error) {
	event, err := NewEventIdentification(ActionExecute, now(), outcome,
		WithEventID(dicomCode(CodeUserAuthenticated, "UserAuthenticated")),
		WithEventTypeCode(dicomCode(CodeLogin, "Login")),
	)
	if err != nil {
		return nil, err
	}

	sys, err := systemParticipant(systemName, hostname)
	if err != nil {
		return nil, err
	}
	user, err := userParticipant(username, userRole, userRoleCode)
	if err != nil {
		return nil, err
	}
	src, err := sources(systemName, AuditSourceUserInterface)
	if err != nil {
		return nil, err
	}

	return NewAuditMessage(event, []*ActiveParticipant{sys, user}, src)
}

// NewAppActivityMessage builds an "Application Activity" message for an
// application start or stop. An empty username records DefaultAppUser.
func NewAppActivityMessage(isStart bool, systemName, hostname, username string) (*AuditMessage, error) {
	if username == "" {
		username = DefaultAppUser
	}

	typeCode := dicomCode(CodeApplicationStop, "Application Stop")
	if isStart {
		typeCode = dicomCode(CodeApplicationStart, "Application Start")
	}

	event, err := NewEventIdentification(ActionExecute, now(), OutcomeSuccess,
		WithEventID(dicomCode(CodeApplicationActivity, "Application Activity")),
		WithEventTypeCode(typeCode),
	)
	if err != nil {
		return nil, err
	}

	sys, err := systemParticipant(systemName, hostname)
	if err != nil {
		return nil, err
	}
	launcher, err := NewActiveParticipant(username, "", true,
		WithRoleIDCodes(dicomCode(CodeApplicationLauncher, "Application Launcher")))
	if err != nil {
		return nil, err
	}
	src, err := sources(systemName, AuditSourceWebServer)
	if err != nil {
		return nil, err
	}

	return NewAuditMessage(event, []*ActiveParticipant{sys, launcher}, src)
}

// NewAuditLogUsedMessage builds an "Audit Log Used" message describing a read
// of the audit log at auditLogURI. detail may be nil.
func NewAuditLogUsedMessage(
	outcome EventOutcome,
	systemName, hostname, username, userRole, userRoleCode, auditLogURI string,
	detail *ValuePair,
) (*AuditMessage, error) {
	event, err := NewEventIdentification(ActionRead, now(), outcome,
		WithEventID(dicomCode(CodeAuditLogUsed, "Audit Log Used")),
	)
	if err != nil {
		return nil, err
	}

	sys, err := systemParticipant(systemName, hostname)
	if err != nil {
		return nil, err
	}
	user, err := userParticipant(username, userRole, userRoleCode)
	if err != nil {
		return nil, err
	}
	src, err := sources(systemName, AuditSourceUserInterface)
	if err != nil {
		return nil, err
	}

	opts := []ObjectOption{
		WithObjectTypeCode(ObjectTypeSystemObject),
		WithObjectTypeCodeRole(ObjectRoleSecurityResource),
		WithObjectName("Security Audit Log"),
	}
	if detail != nil {
		opts = append(opts, WithObjectDetail(detail))
	}
	auditLog, err := NewParticipantObject(auditLogURI, ObjectIDURI.Code("URI"), opts...)
	if err != nil {
		return nil, err
	}

	return NewAuditMessage(event, []*ActiveParticipant{sys, user}, src, auditLog)
}

// NewNodeAuthenticationMessage builds a "Security Alert / Node Authentication"
// message for the node at nodeIP.
func NewNodeAuthenticationMessage(nodeIP, systemName, hostname string, outcome EventOutcome) (*AuditMessage, error) {
	event, err := NewEventIdentification(ActionExecute, now(), outcome,
		WithEventID(dicomCode(CodeSecurityAlert, "Security Alert")),
		WithEventTypeCode(dicomCode(CodeNodeAuthentication, "Node Authentication")),
	)
	if err != nil {
		return nil, err
	}

	sys, err := systemParticipant(systemName, hostname)
	if err != nil {
		return nil, err
	}
	src, err := sources(systemName, AuditSourceWebServer)
	if err != nil {
		return nil, err
	}
	node, err := NewParticipantObject(nodeIP, dicomCode(CodeNodeID, "Node ID"),
		WithObjectTypeCode(ObjectTypeSystemObject),
		WithObjectName(nodeIP),
	)
	if err != nil {
		return nil, err
	}

	return NewAuditMessage(event, []*ActiveParticipant{sys}, src, node)
}

func render(m *AuditMessage, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return RenderXML(m, xmltree.DefaultRenderOptions())
}

// UserLoginAudit renders a user login message as XML.
func UserLoginAudit(outcome EventOutcome, systemName, hostname, username, userRole, userRoleCode string) (string, error) {
	return render(NewUserLoginMessage(outcome, systemName, hostname, username, userRole, userRoleCode))
}

// AppActivityAudit renders an application start or stop message as XML.
func AppActivityAudit(isStart bool, systemName, hostname, username string) (string, error) {
	return render(NewAppActivityMessage(isStart, systemName, hostname, username))
}

// AuditLogUsedAudit renders an audit log access message as XML.
func AuditLogUsedAudit(
	outcome EventOutcome,
	systemName, hostname, username, userRole, userRoleCode, auditLogURI string,
	detail *ValuePair,
) (string, error) {
	return render(NewAuditLogUsedMessage(outcome, systemName, hostname, username, userRole, userRoleCode, auditLogURI, detail))
}

// NodeAuthentication renders a node authentication message as XML.
func NodeAuthentication(nodeIP, systemName, hostname string, outcome EventOutcome) (string, error) {
	return render(NewNodeAuthenticationMessage(nodeIP, systemName, hostname, outcome))
}
