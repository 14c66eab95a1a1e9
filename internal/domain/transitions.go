package domain

import "fmt"

// Transitions is an allowed-transition table. Every valid state is a key;
// terminal states map to an empty slice.
type Transitions[S ~string] map[S][]S

// Valid reports whether s is a state of the table.
func (t Transitions[S]) Valid(s S) bool {
	_, ok := t[s]
	return ok
}

// States returns every state of the table.
func (t Transitions[S]) States() []S {
	out := make([]S, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	return out
}

// Check returns nil when moving from one state to the other is allowed.
func (t Transitions[S]) Check(from, to S) error {
	if !t.Valid(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	for _, next := range t[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

var standardFilingFlow = Transitions[FilingStatus]{
	FilingStatusPending:   {FilingStatusFiled},
	FilingStatusFiled:     {FilingStatusProcessed},
	FilingStatusProcessed: {},
}

// FilingTransitions holds the status table of each filing kind.
var FilingTransitions = map[FilingKind]Transitions[FilingStatus]{
	FilingKindIncomeTax: standardFilingFlow,
	FilingKindTDS:       standardFilingFlow,
	FilingKindGST:       standardFilingFlow,
	FilingKindSFT:       standardFilingFlow,
	FilingKindROC: {
		FilingStatusPending:  {FilingStatusFiled},
		FilingStatusFiled:    {FilingStatusApproved},
		FilingStatusApproved: {},
	},
	FilingKindXBRL: {
		FilingStatusDraft:     {FilingStatusValidated},
		FilingStatusValidated: {FilingStatusDraft, FilingStatusFiled},
		FilingStatusFiled:     {},
	},
}

// InitialFilingStatus returns the status a new filing of kind starts in.
func InitialFilingStatus(kind FilingKind) FilingStatus {
	if kind == FilingKindXBRL {
		return FilingStatusDraft
	}
	return FilingStatusPending
}

var FeeTransitions = Transitions[FeeStatus]{
	FeeStatusPending: {FeeStatusPaid},
	FeeStatusPaid:    {FeeStatusPending},
}

var ReminderTransitions = Transitions[ReminderStatus]{
	ReminderStatusActive:    {ReminderStatusCompleted, ReminderStatusCancelled},
	ReminderStatusCompleted: {},
	ReminderStatusCancelled: {},
}

var ChecklistTransitions = Transitions[ChecklistStatus]{
	ChecklistStatusOpen:      {ChecklistStatusCompleted},
	ChecklistStatusCompleted: {ChecklistStatusOpen},
}

var CommunicationTransitions = Transitions[CommunicationStatus]{
	CommunicationPending: {CommunicationSent, CommunicationFailed},
	CommunicationSent:    {},
	CommunicationFailed:  {CommunicationPending},
}

var ClientTransitions = Transitions[ClientStatus]{
	ClientStatusActive:   {ClientStatusInactive},
	ClientStatusInactive: {ClientStatusActive},
}

var EmployeeTransitions = Transitions[EmployeeStatus]{
	EmployeeStatusActive:   {EmployeeStatusInactive},
	EmployeeStatusInactive: {EmployeeStatusActive},
}

// A completed audit may be reopened until its report is submitted.
var AuditTransitions = Transitions[AuditStatus]{
	AuditStatusInProgress: {AuditStatusCompleted},
	AuditStatusCompleted:  {AuditStatusInProgress, AuditStatusSubmitted},
	AuditStatusSubmitted:  {},
}

var CMATransitions = Transitions[CMAStatus]{
	CMAStatusDraft:     {CMAStatusFinal},
	CMAStatusFinal:     {CMAStatusDraft, CMAStatusSubmitted},
	CMAStatusSubmitted: {},
}

var AssessmentTransitions = Transitions[AssessmentStatus]{
	AssessmentStatusReceived:    {AssessmentStatusUnderReview, AssessmentStatusSettled},
	AssessmentStatusUnderReview: {AssessmentStatusAppealed, AssessmentStatusSettled},
	AssessmentStatusAppealed:    {AssessmentStatusSettled},
	AssessmentStatusSettled:     {},
}

// Failed and bounced challans are re-presented by moving them back to Pending.
var ChallanTransitions = Transitions[ChallanStatus]{
	ChallanStatusPending: {ChallanStatusCleared, ChallanStatusFailed, ChallanStatusBounced},
	ChallanStatusCleared: {},
	ChallanStatusFailed:  {ChallanStatusPending},
	ChallanStatusBounced: {ChallanStatusPending},
}
