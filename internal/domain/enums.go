package domain

// UserRole defines the role of a caller within a tenant.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// ClientType classifies the legal form of a client.
type ClientType string

const (
	ClientTypeIndividual  ClientType = "Individual"
	ClientTypeCompany     ClientType = "Company"
	ClientTypePartnership ClientType = "Partnership"
	ClientTypeLLP         ClientType = "LLP"
	ClientTypeTrust       ClientType = "Trust"
	ClientTypeSociety     ClientType = "Society"
)

// ClientStatus is the lifecycle state of a client record.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// FilingKind identifies which statutory return a filing represents.
type FilingKind string

const (
	FilingKindIncomeTax FilingKind = "income_tax"
	FilingKindTDS       FilingKind = "tds"
	FilingKindGST       FilingKind = "gst"
	FilingKindROC       FilingKind = "roc"
	FilingKindSFT       FilingKind = "sft"
	FilingKindXBRL      FilingKind = "xbrl"
)

// FilingKinds lists every supported kind in display order.
var FilingKinds = []FilingKind{
	FilingKindIncomeTax, FilingKindTDS, FilingKindGST,
	FilingKindROC, FilingKindSFT, FilingKindXBRL,
}

// FilingStatus is the lifecycle state of a return filing. The valid subset
// depends on the filing kind.
type FilingStatus string

const (
	FilingStatusDraft     FilingStatus = "Draft"
	FilingStatusValidated FilingStatus = "Validated"
	FilingStatusPending   FilingStatus = "Pending"
	FilingStatusFiled     FilingStatus = "Filed"
	FilingStatusProcessed FilingStatus = "Processed"
	FilingStatusApproved  FilingStatus = "Approved"
)

// Settled reports whether a filing in this status no longer counts as overdue.
func (s FilingStatus) Settled() bool {
	switch s {
	case FilingStatusFiled, FilingStatusProcessed, FilingStatusApproved:
		return true
	}
	return false
}

// XBRLValidationStatus is the outcome of validating an XBRL instance.
type XBRLValidationStatus string

const (
	XBRLValidationPending XBRLValidationStatus = "Pending"
	XBRLValidationValid   XBRLValidationStatus = "Valid"
	XBRLValidationInvalid XBRLValidationStatus = "Invalid"
)

// FormTypes lists the form types accepted for each filing kind.
var FormTypes = map[FilingKind][]string{
	FilingKindIncomeTax: {"ITR-1", "ITR-2", "ITR-3", "ITR-4", "ITR-5", "ITR-6", "ITR-7"},
	FilingKindTDS:       {"24Q", "26Q", "27Q", "27EQ"},
	FilingKindGST:       {"GSTR-1", "GSTR-3B", "GSTR-9", "GSTR-9C"},
	FilingKindROC:       {"AOC-4", "MGT-7", "DIR-3 KYC", "ADT-1", "INC-20A", "INC-22", "MGT-14"},
	FilingKindSFT:       {"SFT-001", "SFT-002"},
	FilingKindXBRL:      {"Balance Sheet", "P&L", "Cash Flow", "Notes"},
}

// FeeStatus is the payment state of an outstanding fee. Overdue is derived,
// never stored.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "Pending"
	FeeStatusPaid    FeeStatus = "Paid"
)

// Settled reports whether the fee has been paid.
func (s FeeStatus) Settled() bool { return s == FeeStatusPaid }

// ReminderType classifies a reminder.
type ReminderType string

const (
	ReminderTypeBirthday ReminderType = "Birthday"
	ReminderTypeDueDate  ReminderType = "Due Date"
	ReminderTypeFollowUp ReminderType = "Follow-up"
	ReminderTypeMeeting  ReminderType = "Meeting"
	ReminderTypeOther    ReminderType = "Other"
)

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderStatusActive    ReminderStatus = "Active"
	ReminderStatusCompleted ReminderStatus = "Completed"
	ReminderStatusCancelled ReminderStatus = "Cancelled"
)

// StockStatus is derived from an inventory item's stock levels and stored on every write.
type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// InventoryUnits lists the accepted units of measure.
var InventoryUnits = []string{"pcs", "kg", "ltr", "mtr", "box", "set", "other"}

// InventoryCategories lists the accepted item categories.
var InventoryCategories = []string{
	"Office Supplies", "Furniture", "Computers & IT", "Software",
	"Hardware", "Stationery", "Others",
}

// ChecklistStatus is the lifecycle state of a document checklist.
type ChecklistStatus string

const (
	ChecklistStatusOpen      ChecklistStatus = "Open"
	ChecklistStatusCompleted ChecklistStatus = "Completed"
)

// Channel is the delivery medium of a message.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// CommunicationStatus is the delivery state of a communication log entry.
type CommunicationStatus string

const (
	CommunicationPending CommunicationStatus = "Pending"
	CommunicationSent    CommunicationStatus = "Sent"
	CommunicationFailed  CommunicationStatus = "Failed"
)

// AllowedExtensions maps accepted upload extensions (without dot) to their MIME type.
var AllowedExtensions = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"xbrl": "application/xml",
	"xml":  "application/xml",
}

// AuditType classifies a balance sheet audit engagement.
type AuditType string

const (
	AuditTypeStatutory  AuditType = "Statutory"
	AuditTypeTax        AuditType = "Tax"
	AuditTypeInternal   AuditType = "Internal"
	AuditTypeBank       AuditType = "Bank"
	AuditTypeGovernment AuditType = "Government"
)

// AuditOpinion is the opinion expressed in the audit report.
type AuditOpinion string

const (
	AuditOpinionUnqualified AuditOpinion = "Unqualified"
	AuditOpinionQualified   AuditOpinion = "Qualified"
	AuditOpinionAdverse     AuditOpinion = "Adverse"
	AuditOpinionDisclaimer  AuditOpinion = "Disclaimer"
)

// AuditStatus is the lifecycle state of an audit engagement.
type AuditStatus string

const (
	AuditStatusInProgress AuditStatus = "In Progress"
	AuditStatusCompleted  AuditStatus = "Completed"
	AuditStatusSubmitted  AuditStatus = "Submitted"
)

// CMAPeriod is the reporting frequency of a CMA report.
type CMAPeriod string

const (
	CMAPeriodMonthly   CMAPeriod = "Monthly"
	CMAPeriodQuarterly CMAPeriod = "Quarterly"
	CMAPeriodAnnual    CMAPeriod = "Annual"
)

// CMAStatus is the lifecycle state of a CMA report.
type CMAStatus string

const (
	CMAStatusDraft     CMAStatus = "Draft"
	CMAStatusFinal     CMAStatus = "Final"
	CMAStatusSubmitted CMAStatus = "Submitted"
)

// AssessmentOrderType classifies an income tax assessment order.
type AssessmentOrderType string

const (
	AssessmentOrderScrutiny      AssessmentOrderType = "Scrutiny"
	AssessmentOrderBestJudgment  AssessmentOrderType = "Best Judgment"
	AssessmentOrderExParte       AssessmentOrderType = "Ex-parte"
	AssessmentOrderPenalty       AssessmentOrderType = "Penalty"
	AssessmentOrderRectification AssessmentOrderType = "Rectification"
)

// AssessmentStatus is the lifecycle state of an assessment order.
type AssessmentStatus string

const (
	AssessmentStatusReceived    AssessmentStatus = "Received"
	AssessmentStatusUnderReview AssessmentStatus = "Under Review"
	AssessmentStatusAppealed    AssessmentStatus = "Appealed"
	AssessmentStatusSettled     AssessmentStatus = "Settled"
)

// ChallanType is the government form a tax payment was made on.
type ChallanType string

const (
	ChallanITNS280    ChallanType = "ITNS 280"
	ChallanITNS281    ChallanType = "ITNS 281"
	ChallanGSTPMT06   ChallanType = "GST PMT-06"
	ChallanTDSPayment ChallanType = "TDS Payment"
)

// TaxType is the head of tax a challan pays.
type TaxType string

const (
	TaxTypeIncomeTax TaxType = "Income Tax"
	TaxTypeTDS       TaxType = "TDS"
	TaxTypeGST       TaxType = "GST"
)

// ChallanTaxTypes lists the tax heads each challan form can carry.
var ChallanTaxTypes = map[ChallanType][]TaxType{
	ChallanITNS280:    {TaxTypeIncomeTax},
	ChallanITNS281:    {TaxTypeTDS},
	ChallanGSTPMT06:   {TaxTypeGST},
	ChallanTDSPayment: {TaxTypeTDS},
}

// ChallanStatus is the bank clearance state of a challan payment.
type ChallanStatus string

const (
	ChallanStatusPending ChallanStatus = "Pending"
	ChallanStatusCleared ChallanStatus = "Cleared"
	ChallanStatusFailed  ChallanStatus = "Failed"
	ChallanStatusBounced ChallanStatus = "Bounced"
)

// NoteCategory classifies a client note.
type NoteCategory string

const (
	NoteCategoryGeneral  NoteCategory = "General"
	NoteCategoryCall     NoteCategory = "Call"
	NoteCategoryMeeting  NoteCategory = "Meeting"
	NoteCategoryFollowUp NoteCategory = "Follow-up"
)
