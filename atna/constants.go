package atna

import (
	"fmt"
	"strings"
)

// EventActionCode is the action performed in the audited event.
type EventActionCode string

const (
	ActionCreate  EventActionCode = "C"
	ActionRead    EventActionCode = "R"
	ActionUpdate  EventActionCode = "U"
	ActionDelete  EventActionCode = "D"
	ActionExecute EventActionCode = "E"
)

// Valid reports whether a is a known action code.
func (a EventActionCode) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionExecute:
		return true
	}
	return false
}

// EventOutcome is the EventOutcomeIndicator value.
type EventOutcome string

const (
	OutcomeSuccess        EventOutcome = "0"
	OutcomeMinorFailure   EventOutcome = "4"
	OutcomeSeriousFailure EventOutcome = "8"
	OutcomeMajorFailure   EventOutcome = "12"
)

// Valid reports whether o is a known outcome indicator.
func (o EventOutcome) Valid() bool {
	switch o {
	case OutcomeSuccess, OutcomeMinorFailure, OutcomeSeriousFailure, OutcomeMajorFailure:
		return true
	}
	return false
}

var outcomeNames = map[string]EventOutcome{
	"success":         OutcomeSuccess,
	"minor-failure":   OutcomeMinorFailure,
	"serious-failure": OutcomeSeriousFailure,
	"major-failure":   OutcomeMajorFailure,
}

// ParseOutcome accepts an outcome code ("0", "4", "8", "12") or a name
// ("success", "minor-failure", "serious-failure", "major-failure"),
// case-insensitively.
func ParseOutcome(s string) (EventOutcome, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if o := EventOutcome(v); o.Valid() {
		return o, nil
	}
	if o, ok := outcomeNames[strings.ReplaceAll(v, "_", "-")]; ok {
		return o, nil
	}

	return "", fmt.Errorf("%w: unknown event outcome %q", ErrInvalidArgument, s)
}

// NetworkAccessPointType identifies the kind of NetworkAccessPointID.
type NetworkAccessPointType int

const (
	NetworkAccessPointMachineName NetworkAccessPointType = 1
	NetworkAccessPointIPAddress   NetworkAccessPointType = 2
	NetworkAccessPointTelephone   NetworkAccessPointType = 3
	NetworkAccessPointEmail       NetworkAccessPointType = 4
	NetworkAccessPointURI         NetworkAccessPointType = 5
)

// NetworkAccessPointDNS is the machine-name type used for host names.
const NetworkAccessPointDNS = NetworkAccessPointMachineName

// Valid reports whether t is a known access point type.
func (t NetworkAccessPointType) Valid() bool {
	return t >= NetworkAccessPointMachineName && t <= NetworkAccessPointURI
}

// AuditSourceType is the code for the kind of component that produced the record.
type AuditSourceType int

const (
	AuditSourceUserInterface     AuditSourceType = 1
	AuditSourceAcquisitionDevice AuditSourceType = 2
	AuditSourceWebServer         AuditSourceType = 3
	AuditSourceApplicationServer AuditSourceType = 4
	AuditSourceDatabaseServer    AuditSourceType = 5
	AuditSourceSecurityServer    AuditSourceType = 6
	AuditSourceNetworkLow        AuditSourceType = 7
	AuditSourceNetworkHigh       AuditSourceType = 8
	AuditSourceOther             AuditSourceType = 9
)

// Valid reports whether t is a known source type.
func (t AuditSourceType) Valid() bool {
	return t >= AuditSourceUserInterface && t <= AuditSourceOther
}

// Code returns the source type as a coded value with an empty coding system.
func (t AuditSourceType) Code() *Code {
	return NewNumericCode(int(t), "")
}

// ParticipantObjectType is the ParticipantObjectTypeCode attribute.
type ParticipantObjectType int

const (
	ObjectTypePerson       ParticipantObjectType = 1
	ObjectTypeSystemObject ParticipantObjectType = 2
	ObjectTypeOrganization ParticipantObjectType = 3
	ObjectTypeOther        ParticipantObjectType = 4
)

// Valid reports whether t is a known object type.
func (t ParticipantObjectType) Valid() bool {
	return t >= ObjectTypePerson && t <= ObjectTypeOther
}

// ParticipantObjectTypeRole is the ParticipantObjectTypeCodeRole attribute.
type ParticipantObjectTypeRole int

const (
	ObjectRolePatient             ParticipantObjectTypeRole = 1
	ObjectRoleLocation            ParticipantObjectTypeRole = 2
	ObjectRoleReport              ParticipantObjectTypeRole = 3
	ObjectRoleResource            ParticipantObjectTypeRole = 4
	ObjectRoleMasterFile          ParticipantObjectTypeRole = 5
	ObjectRoleUser                ParticipantObjectTypeRole = 6
	ObjectRoleList                ParticipantObjectTypeRole = 7
	ObjectRoleDoctor              ParticipantObjectTypeRole = 8
	ObjectRoleSubscriber          ParticipantObjectTypeRole = 9
	ObjectRoleGuarantor           ParticipantObjectTypeRole = 10
	ObjectRoleSecurityUser        ParticipantObjectTypeRole = 11
	ObjectRoleSecurityGroup       ParticipantObjectTypeRole = 12
	ObjectRoleSecurityResource    ParticipantObjectTypeRole = 13
	ObjectRoleSecurityGranularity ParticipantObjectTypeRole = 14
	ObjectRoleProvider            ParticipantObjectTypeRole = 15
	ObjectRoleDataDestination     ParticipantObjectTypeRole = 16
	ObjectRoleDataRepository      ParticipantObjectTypeRole = 17
	ObjectRoleSchedule            ParticipantObjectTypeRole = 18
	ObjectRoleCustomer            ParticipantObjectTypeRole = 19
	ObjectRoleJob                 ParticipantObjectTypeRole = 20
	ObjectRoleJobStream           ParticipantObjectTypeRole = 21
	ObjectRoleTable               ParticipantObjectTypeRole = 22
	ObjectRoleRoutingCriteria     ParticipantObjectTypeRole = 23
	ObjectRoleQuery               ParticipantObjectTypeRole = 24
)

// Valid reports whether r is a known object role.
func (r ParticipantObjectTypeRole) Valid() bool {
	return r >= ObjectRolePatient && r <= ObjectRoleQuery
}

// ParticipantObjectIDType is the RFC 3881 ParticipantObjectIDTypeCode table.
type ParticipantObjectIDType int

const (
	ObjectIDMedicalRecordNumber ParticipantObjectIDType = 1
	ObjectIDPatientNumber       ParticipantObjectIDType = 2
	ObjectIDEncounterNumber     ParticipantObjectIDType = 3
	ObjectIDEnrolleeNumber      ParticipantObjectIDType = 4
	ObjectIDSocialSecurity      ParticipantObjectIDType = 5
	ObjectIDAccountNumber       ParticipantObjectIDType = 6
	ObjectIDGuarantorNumber     ParticipantObjectIDType = 7
	ObjectIDReportName          ParticipantObjectIDType = 8
	ObjectIDReportNumber        ParticipantObjectIDType = 9
	ObjectIDSearchCriteria      ParticipantObjectIDType = 10
	ObjectIDUserIdentifier      ParticipantObjectIDType = 11
	ObjectIDURI                 ParticipantObjectIDType = 12
)

// Code returns the ID type as a coded value in the given coding system.
func (t ParticipantObjectIDType) Code(system string) *Code {
	return NewNumericCode(int(t), system)
}

// DataLifeCycle is the ParticipantObjectDataLifeCycle attribute.
type DataLifeCycle int

const (
	LifeCycleOrigination         DataLifeCycle = 1
	LifeCycleImport              DataLifeCycle = 2
	LifeCycleAmendment           DataLifeCycle = 3
	LifeCycleVerification        DataLifeCycle = 4
	LifeCycleTranslation         DataLifeCycle = 5
	LifeCycleAccess              DataLifeCycle = 6
	LifeCycleDeidentification    DataLifeCycle = 7
	LifeCycleAggregation         DataLifeCycle = 8
	LifeCycleReport              DataLifeCycle = 9
	LifeCycleExport              DataLifeCycle = 10
	LifeCycleDisclosure          DataLifeCycle = 11
	LifeCycleReceiptOfDisclosure DataLifeCycle = 12
	LifeCycleArchiving           DataLifeCycle = 13
	LifeCycleLogicalDeletion     DataLifeCycle = 14
	LifeCyclePermanentErasure    DataLifeCycle = 15
)

// Valid reports whether l is a known life cycle stage.
func (l DataLifeCycle) Valid() bool {
	return l >= LifeCycleOrigination && l <= LifeCyclePermanentErasure
}

// DICOM controlled terminology (PS3.16 CID 400-405) used by the canonical messages.
const (
	CodingSystemDCM = "DCM"

	CodeApplicationActivity = 110100
	CodeAuditLogUsed        = 110101
	CodeSecurityAlert       = 110113
	CodeUserAuthenticated   = 110114
	CodeApplicationStart    = 110120
	CodeApplicationStop     = 110121
	CodeLogin               = 110122
	CodeNodeAuthentication  = 110126
	CodeApplication         = 110150
	CodeApplicationLauncher = 110151
	CodeNodeID              = 110182
)

func dicomCode(code int, text string) *Code {
	return NewNumericCode(code, CodingSystemDCM).WithOriginalText(text)
}
