package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxdesk/internal/domain"
)

func TestFilingTransitions_StandardFlow(t *testing.T) {
	for _, kind := range []domain.FilingKind{
		domain.FilingKindIncomeTax, domain.FilingKindTDS, domain.FilingKindGST, domain.FilingKindSFT,
	} {
		table := domain.FilingTransitions[kind]
		assert.NoError(t, table.Check(domain.FilingStatusPending, domain.FilingStatusFiled), kind)
		assert.NoError(t, table.Check(domain.FilingStatusFiled, domain.FilingStatusProcessed), kind)
		assert.ErrorIs(t, table.Check(domain.FilingStatusPending, domain.FilingStatusProcessed), domain.ErrInvalidTransition, kind)
		assert.ErrorIs(t, table.Check(domain.FilingStatusProcessed, domain.FilingStatusPending), domain.ErrInvalidTransition, kind)
		assert.ErrorIs(t, table.Check(domain.FilingStatusFiled, domain.FilingStatusApproved), domain.ErrInvalidTransition, kind)
	}
}

func TestFilingTransitions_ROC(t *testing.T) {
	table := domain.FilingTransitions[domain.FilingKindROC]

	assert.NoError(t, table.Check(domain.FilingStatusFiled, domain.FilingStatusApproved))
	assert.ErrorIs(t, table.Check(domain.FilingStatusFiled, domain.FilingStatusProcessed), domain.ErrInvalidTransition)
	assert.False(t, table.Valid(domain.FilingStatusProcessed))
}

func TestFilingTransitions_XBRL(t *testing.T) {
	table := domain.FilingTransitions[domain.FilingKindXBRL]

	assert.NoError(t, table.Check(domain.FilingStatusDraft, domain.FilingStatusValidated))
	assert.NoError(t, table.Check(domain.FilingStatusValidated, domain.FilingStatusDraft))
	assert.NoError(t, table.Check(domain.FilingStatusValidated, domain.FilingStatusFiled))
	assert.ErrorIs(t, table.Check(domain.FilingStatusDraft, domain.FilingStatusFiled), domain.ErrInvalidTransition)
	assert.False(t, table.Valid(domain.FilingStatusPending))
}

func TestFilingTransitions_EveryKindHasInitialStatus(t *testing.T) {
	for _, kind := range domain.FilingKinds {
		table, ok := domain.FilingTransitions[kind]
		assert.True(t, ok, kind)
		assert.True(t, table.Valid(domain.InitialFilingStatus(kind)), kind)
		assert.NotEmpty(t, domain.FormTypes[kind], kind)
	}
}

func TestTransitions_UnknownTarget(t *testing.T) {
	err := domain.FeeTransitions.Check(domain.FeeStatusPending, domain.FeeStatus("Overdue"))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), `unknown status "Overdue"`)
}

func TestFeeTransitions(t *testing.T) {
	assert.NoError(t, domain.FeeTransitions.Check(domain.FeeStatusPending, domain.FeeStatusPaid))
	assert.NoError(t, domain.FeeTransitions.Check(domain.FeeStatusPaid, domain.FeeStatusPending))
	assert.ErrorIs(t, domain.FeeTransitions.Check(domain.FeeStatusPaid, domain.FeeStatusPaid), domain.ErrInvalidTransition)
}

func TestReminderTransitions_TerminalStates(t *testing.T) {
	assert.NoError(t, domain.ReminderTransitions.Check(domain.ReminderStatusActive, domain.ReminderStatusCompleted))
	assert.NoError(t, domain.ReminderTransitions.Check(domain.ReminderStatusActive, domain.ReminderStatusCancelled))
	assert.ErrorIs(t,
		domain.ReminderTransitions.Check(domain.ReminderStatusCompleted, domain.ReminderStatusActive),
		domain.ErrInvalidTransition)
}

func TestCommunicationTransitions(t *testing.T) {
	assert.NoError(t, domain.CommunicationTransitions.Check(domain.CommunicationPending, domain.CommunicationSent))
	assert.NoError(t, domain.CommunicationTransitions.Check(domain.CommunicationFailed, domain.CommunicationPending))
	assert.ErrorIs(t,
		domain.CommunicationTransitions.Check(domain.CommunicationSent, domain.CommunicationFailed),
		domain.ErrInvalidTransition)
}

func TestAssessmentTransitions_AppealPath(t *testing.T) {
	assert.NoError(t, domain.AssessmentTransitions.Check(domain.AssessmentStatusReceived, domain.AssessmentStatusUnderReview))
	assert.NoError(t, domain.AssessmentTransitions.Check(domain.AssessmentStatusUnderReview, domain.AssessmentStatusAppealed))
	assert.NoError(t, domain.AssessmentTransitions.Check(domain.AssessmentStatusAppealed, domain.AssessmentStatusSettled))
	assert.ErrorIs(t, domain.AssessmentTransitions.Check(domain.AssessmentStatusReceived, domain.AssessmentStatusAppealed), domain.ErrInvalidTransition)
	assert.ErrorIs(t, domain.AssessmentTransitions.Check(domain.AssessmentStatusSettled, domain.AssessmentStatusUnderReview), domain.ErrInvalidTransition)
}

func TestChallanTransitions(t *testing.T) {
	tests := []struct {
		from, to domain.ChallanStatus
		ok       bool
	}{
		{domain.ChallanStatusPending, domain.ChallanStatusCleared, true},
		{domain.ChallanStatusPending, domain.ChallanStatusBounced, true},
		{domain.ChallanStatusFailed, domain.ChallanStatusPending, true},
		{domain.ChallanStatusBounced, domain.ChallanStatusCleared, false},
		{domain.ChallanStatusCleared, domain.ChallanStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := domain.ChallanTransitions.Check(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		})
	}
}

func TestAuditAndCMATransitions_SubmittedIsTerminal(t *testing.T) {
	assert.Empty(t, domain.AuditTransitions[domain.AuditStatusSubmitted])
	assert.Empty(t, domain.CMATransitions[domain.CMAStatusSubmitted])
	assert.NoError(t, domain.AuditTransitions.Check(domain.AuditStatusCompleted, domain.AuditStatusInProgress))
	assert.NoError(t, domain.CMATransitions.Check(domain.CMAStatusFinal, domain.CMAStatusDraft))
}
