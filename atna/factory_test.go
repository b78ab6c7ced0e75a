package atna

import (
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAuthentication(t *testing.T) {
	fixClock(t)

	doc, err := NodeAuthentication("10.0.0.5", "sys1", "host1", OutcomeSuccess)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"EventIdentification", "ActiveParticipant", "AuditSourceIdentification", "ParticipantObjectIdentification"},
		childOrder(t, doc))

	m := parseMessage(t, doc)
	assert.Equal(t, "E", m.Event.Action)
	assert.Equal(t, "0", m.Event.Outcome)
	assert.Equal(t, "2024-03-09T13:30:15.123Z", m.Event.DateTime)
	require.NotNil(t, m.Event.EventID)
	assert.Equal(t, "110113", m.Event.EventID.Code.Code)
	require.NotNil(t, m.Event.TypeCode)
	assert.Equal(t, "110126", m.Event.TypeCode.Code.Code)

	require.Len(t, m.Participants, 1)
	sys := m.Participants[0]
	assert.Equal(t, "sys1", sys.UserID)
	assert.Equal(t, "false", sys.Requestor)
	assert.Equal(t, "host1", sys.AccessPoint)
	assert.Equal(t, "1", sys.AccessType)
	require.Len(t, sys.RoleIDCodes, 1)
	assert.Equal(t, "110150", sys.RoleIDCodes[0].Code.Code)

	require.Len(t, m.Sources, 1)
	assert.Equal(t, "sys1", m.Sources[0].SourceID)
	assert.Equal(t, "3", m.Sources[0].Code)

	require.Len(t, m.Objects, 1)
	obj := m.Objects[0]
	assert.Equal(t, "10.0.0.5", obj.ObjectID)
	assert.Equal(t, "2", obj.TypeCode)
	assert.Equal(t, "110182", obj.IDTypeCode.Code.Code)
	assert.Equal(t, "DCM", obj.IDTypeCode.Code.System)
	assert.Equal(t, "Node ID", obj.IDTypeCode.Code.OriginalText)
	require.NotNil(t, obj.Name)
	assert.Equal(t, "10.0.0.5", *obj.Name)
}

func TestNodeAuthentication_OutcomeName(t *testing.T) {
	fixClock(t)

	doc, err := NodeAuthentication("10.0.0.5", "sys1", "host1", "Success")
	require.NoError(t, err)

	m := parseMessage(t, doc)
	assert.Equal(t, "0", m.Event.Outcome)
	require.Len(t, m.Participants, 1)
	assert.Equal(t, "false", m.Participants[0].Requestor)
	require.Len(t, m.Objects, 1)
	assert.Equal(t, "10.0.0.5", m.Objects[0].ObjectID)
	assert.Equal(t, "110182", m.Objects[0].IDTypeCode.Code.Code)
	assert.Equal(t, "Node ID", m.Objects[0].IDTypeCode.Code.OriginalText)
}

func TestUserLoginAudit(t *testing.T) {
	fixClock(t)

	doc, err := UserLoginAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Clinician", "C1")
	require.NoError(t, err)

	m := parseMessage(t, doc)
	assert.Equal(t, "E", m.Event.Action)
	assert.Equal(t, "0", m.Event.Outcome)
	assert.Equal(t, "110114", m.Event.EventID.Code.Code)
	assert.Equal(t, "UserAuthenticated", m.Event.EventID.Code.OriginalText)
	assert.Equal(t, "110122", m.Event.TypeCode.Code.Code)
	assert.Nil(t, m.Event.PurposeOfUse)

	require.Len(t, m.Participants, 2)
	assert.Equal(t, "sysA", m.Participants[0].UserID)
	assert.Equal(t, "false", m.Participants[0].Requestor)

	user := m.Participants[1]
	assert.Equal(t, "alice", user.UserID)
	assert.Equal(t, "true", user.Requestor)
	assert.Empty(t, user.AccessPoint)
	require.Len(t, user.RoleIDCodes, 1)
	assert.Equal(t, "Clinician", user.RoleIDCodes[0].Code.Code)
	assert.Equal(t, "C1", user.RoleIDCodes[0].Code.System)
	assert.Equal(t, "Clinician", user.RoleIDCodes[0].Code.OriginalText)

	require.Len(t, m.Sources, 1)
	assert.Equal(t, "1", m.Sources[0].Code)
	assert.Empty(t, m.Objects)
}

func TestUserLoginAudit_EmptyRoleCode(t *testing.T) {
	fixClock(t)

	doc, err := UserLoginAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Clinician", "")
	require.NoError(t, err)
	assert.Contains(t, doc, `<Code code="Clinician" codeSystemName="" originalText="Clinician"/>`)
}

func TestUserLoginAudit_FailureOutcome(t *testing.T) {
	fixClock(t)

	doc, err := UserLoginAudit(OutcomeMinorFailure, "sysA", "hostA", "alice", "Clinician", "C1")
	require.NoError(t, err)
	assert.Equal(t, "4", parseMessage(t, doc).Event.Outcome)
}

func TestAppActivityAudit(t *testing.T) {
	fixClock(t)

	tests := []struct {
		name     string
		isStart  bool
		username string
		wantType string
		wantText string
		wantUser string
	}{
		{name: "start", isStart: true, username: "ops", wantType: "110120", wantText: "Application Start", wantUser: "ops"},
		{name: "stop", isStart: false, username: "ops", wantType: "110121", wantText: "Application Stop", wantUser: "ops"},
		{name: "default launcher", isStart: true, wantType: "110120", wantText: "Application Start", wantUser: DefaultAppUser},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := AppActivityAudit(tc.isStart, "sysA", "hostA", tc.username)
			require.NoError(t, err)

			m := parseMessage(t, doc)
			assert.Equal(t, "E", m.Event.Action)
			assert.Equal(t, "0", m.Event.Outcome)
			assert.Equal(t, "110100", m.Event.EventID.Code.Code)
			assert.Equal(t, tc.wantType, m.Event.TypeCode.Code.Code)
			assert.Equal(t, tc.wantText, m.Event.TypeCode.Code.OriginalText)

			require.Len(t, m.Participants, 2)
			launcher := m.Participants[1]
			assert.Equal(t, tc.wantUser, launcher.UserID)
			assert.Equal(t, "true", launcher.Requestor)
			assert.Equal(t, "110151", launcher.RoleIDCodes[0].Code.Code)
			assert.Equal(t, "3", m.Sources[0].Code)
		})
	}
}

func TestAuditLogUsedAudit(t *testing.T) {
	fixClock(t)

	detail := NewValuePair("query", []byte("last 24h"))
	doc, err := AuditLogUsedAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Auditor", "A1", "https://audit.example/log", detail)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"EventIdentification", "ActiveParticipant", "ActiveParticipant", "AuditSourceIdentification", "ParticipantObjectIdentification"},
		childOrder(t, doc))

	m := parseMessage(t, doc)
	assert.Equal(t, "R", m.Event.Action)
	assert.Equal(t, "110101", m.Event.EventID.Code.Code)
	assert.Nil(t, m.Event.TypeCode)

	require.Len(t, m.Participants, 2)
	assert.Equal(t, "110150", m.Participants[0].RoleIDCodes[0].Code.Code)
	assert.Equal(t, "Auditor", m.Participants[1].RoleIDCodes[0].Code.Code)
	assert.Equal(t, "A1", m.Participants[1].RoleIDCodes[0].Code.System)

	require.Len(t, m.Objects, 1)
	obj := m.Objects[0]
	assert.Equal(t, "https://audit.example/log", obj.ObjectID)
	assert.Equal(t, "2", obj.TypeCode)
	assert.Equal(t, "13", obj.Role)
	assert.Equal(t, "12", obj.IDTypeCode.Code.Code)
	assert.Equal(t, "URI", obj.IDTypeCode.Code.System)
	require.NotNil(t, obj.Name)
	assert.Equal(t, "Security Audit Log", *obj.Name)
	require.NotNil(t, obj.Detail)
	assert.Equal(t, "query", obj.Detail.ValuePair.Type)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("last 24h")), obj.Detail.ValuePair.Value)
}

func TestAuditLogUsedAudit_WithoutDetail(t *testing.T) {
	fixClock(t)

	doc, err := AuditLogUsedAudit(OutcomeSuccess, "sysA", "", "alice", "Auditor", "A1", "urn:log", nil)
	require.NoError(t, err)

	m := parseMessage(t, doc)
	require.Len(t, m.Objects, 1)
	assert.Nil(t, m.Objects[0].Detail)
	assert.Empty(t, m.Participants[0].AccessPoint)
	assert.Empty(t, m.Participants[0].AccessType)
}

func TestFactories_PropagateErrors(t *testing.T) {
	fixClock(t)

	_, err := NodeAuthentication("10.0.0.5", "", "host1", OutcomeSuccess)
	require.ErrorIs(t, err, ErrConstruction)

	_, err = NodeAuthentication("", "sys1", "host1", OutcomeSuccess)
	require.ErrorIs(t, err, ErrConstruction)

	_, err = NodeAuthentication("10.0.0.5", "sys1", "host1", "sometimes")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UserLoginAudit(OutcomeSuccess, "sysA", "hostA", "", "Clinician", "C1")
	require.ErrorIs(t, err, ErrConstruction)

	_, err = UserLoginAudit(OutcomeSuccess, "sysA", "hostA", "alice", "", "C1")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = AuditLogUsedAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Auditor", "A1", "", nil)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestFactories_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			switch i % 4 {
			case 0:
				_, err = NodeAuthentication("10.0.0.5", "sys1", "host1", OutcomeSuccess)
			case 1:
				_, err = UserLoginAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Clinician", "C1")
			case 2:
				_, err = AppActivityAudit(i%8 == 2, "sysA", "hostA", "")
			case 3:
				_, err = AuditLogUsedAudit(OutcomeSuccess, "sysA", "hostA", "alice", "Auditor", "A1", "urn:log", nil)
			}
			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
