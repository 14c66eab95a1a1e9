package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is a customer of the practice.
type Client struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	TenantID          uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	Name              string       `db:"name" json:"name"`
	PAN               *string      `db:"pan" json:"pan,omitempty"`
	GSTIN             *string      `db:"gstin" json:"gstin,omitempty"`
	Email             string       `db:"email" json:"email"`
	Phone             string       `db:"phone" json:"phone"`
	Address           string       `db:"address" json:"address"`
	DateOfBirth       *time.Time   `db:"date_of_birth" json:"date_of_birth,omitempty"`
	IncorporationDate *time.Time   `db:"incorporation_date" json:"incorporation_date,omitempty"`
	ClientType        ClientType   `db:"client_type" json:"client_type"`
	Status            ClientStatus `db:"status" json:"status"`
	Notes             string       `db:"notes" json:"notes"`
	CreatedBy         uuid.UUID    `db:"created_by" json:"created_by"`
	UpdatedBy         uuid.UUID    `db:"updated_by" json:"updated_by"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`

	// Display enrichment derived from GSTIN; never stored.
	StateCode string `db:"-" json:"state_code,omitempty"`
	StateName string `db:"-" json:"state_name,omitempty"`
}

// ReturnFiling is a statutory return of any kind: income tax, TDS, GST, ROC, SFT or XBRL.
// Period holds the assessment year for income tax and the financial year otherwise;
// SubPeriod holds the quarter for TDS and the month for GST.
type ReturnFiling struct {
	ID                   uuid.UUID            `db:"id" json:"id"`
	TenantID             uuid.UUID            `db:"tenant_id" json:"tenant_id"`
	ClientID             uuid.UUID            `db:"client_id" json:"client_id"`
	Kind                 FilingKind           `db:"kind" json:"kind"`
	FormType             string               `db:"form_type" json:"form_type"`
	Period               string               `db:"period" json:"period"`
	SubPeriod            string               `db:"sub_period" json:"sub_period,omitempty"`
	TAN                  string               `db:"tan" json:"tan,omitempty"`
	GSTIN                string               `db:"gstin" json:"gstin,omitempty"`
	DueDate              *time.Time           `db:"due_date" json:"due_date,omitempty"`
	FilingDate           *time.Time           `db:"filing_date" json:"filing_date,omitempty"`
	Status               FilingStatus         `db:"status" json:"status"`
	AcknowledgmentNumber string               `db:"acknowledgment_number" json:"acknowledgment_number,omitempty"`
	TaxableAmount        decimal.Decimal      `db:"taxable_amount" json:"taxable_amount"`
	TaxAmount            decimal.Decimal      `db:"tax_amount" json:"tax_amount"`
	RefundAmount         decimal.Decimal      `db:"refund_amount" json:"refund_amount"`
	LateFee              decimal.Decimal      `db:"late_fee" json:"late_fee"`
	TransactionCount     int                  `db:"transaction_count" json:"transaction_count"`
	FilingCategory       string               `db:"filing_category" json:"filing_category,omitempty"`
	ValidationStatus     XBRLValidationStatus `db:"validation_status" json:"validation_status,omitempty"`
	ValidationErrors     string               `db:"validation_errors" json:"validation_errors,omitempty"`
	DocumentID           *uuid.UUID           `db:"document_id" json:"document_id,omitempty"`
	Remarks              string               `db:"remarks" json:"remarks"`
	CreatedBy            uuid.UUID            `db:"created_by" json:"created_by"`
	UpdatedBy            uuid.UUID            `db:"updated_by" json:"updated_by"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time            `db:"updated_at" json:"updated_at"`

	Overdue bool `db:"-" json:"overdue"`
}

// Employee is a member of the practice's own staff.
type Employee struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeCode  string          `db:"employee_code" json:"employee_code"`
	Name          string          `db:"name" json:"name"`
	Email         string          `db:"email" json:"email"`
	Phone         string          `db:"phone" json:"phone"`
	PAN           string          `db:"pan" json:"pan"`
	Designation   string          `db:"designation" json:"designation"`
	Department    string          `db:"department" json:"department"`
	DateOfJoining *time.Time      `db:"date_of_joining" json:"date_of_joining,omitempty"`
	Salary        decimal.Decimal `db:"salary" json:"salary"`
	Status        EmployeeStatus  `db:"status" json:"status"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy     uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// PayrollEntry is one month's salary computation for an employee.
type PayrollEntry struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	TenantID     uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID   uuid.UUID       `db:"employee_id" json:"employee_id"`
	MonthYear    string          `db:"month_year" json:"month_year"`
	BasicSalary  decimal.Decimal `db:"basic_salary" json:"basic_salary"`
	Allowances   decimal.Decimal `db:"allowances" json:"allowances"`
	Deductions   decimal.Decimal `db:"deductions" json:"deductions"`
	PFDeduction  decimal.Decimal `db:"pf_deduction" json:"pf_deduction"`
	TDSDeduction decimal.Decimal `db:"tds_deduction" json:"tds_deduction"`
	NetSalary    decimal.Decimal `db:"net_salary" json:"net_salary"`
	CreatedBy    uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Gross returns basic salary plus allowances.
func (p *PayrollEntry) Gross() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances)
}

// ComputeNet sets NetSalary from the entry's components.
func (p *PayrollEntry) ComputeNet() {
	p.NetSalary = p.Gross().Sub(p.Deductions).Sub(p.PFDeduction).Sub(p.TDSDeduction)
}

// Document is a file stored for a client.
type Document struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	ClientID     *uuid.UUID `db:"client_id" json:"client_id,omitempty"`
	Title        string     `db:"title" json:"title"`
	DocumentType string     `db:"document_type" json:"document_type"`
	Folder       string     `db:"folder" json:"folder,omitempty"`
	OriginalName string     `db:"original_name" json:"original_name"`
	StoredName   string     `db:"stored_name" json:"stored_name"`
	S3Bucket     string     `db:"s3_bucket" json:"-"`
	S3Key        string     `db:"s3_key" json:"-"`
	ContentType  string     `db:"content_type" json:"content_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	Notes        string     `db:"notes" json:"notes"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// OutstandingFee is an amount billed to a client.
type OutstandingFee struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	ServiceType   string          `db:"service_type" json:"service_type"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	DueDate       *time.Time      `db:"due_date" json:"due_date,omitempty"`
	Status        FeeStatus       `db:"status" json:"status"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	PaidAt        *time.Time      `db:"paid_at" json:"paid_at,omitempty"`
	Notes         string          `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy     uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`

	Overdue bool `db:"-" json:"overdue"`
}

// Reminder is a dated follow-up for the practice, optionally tied to a client.
type Reminder struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	TenantID     uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	ClientID     *uuid.UUID     `db:"client_id" json:"client_id,omitempty"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	ReminderDate time.Time      `db:"reminder_date" json:"reminder_date"`
	ReminderType ReminderType   `db:"reminder_type" json:"reminder_type"`
	Status       ReminderStatus `db:"status" json:"status"`
	CreatedBy    uuid.UUID      `db:"created_by" json:"created_by"`
	UpdatedBy    uuid.UUID      `db:"updated_by" json:"updated_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// InventoryItem is a stocked office item.
type InventoryItem struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	TenantID     uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ItemCode     *string         `db:"item_code" json:"item_code,omitempty"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description"`
	Unit         string          `db:"unit" json:"unit"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	CurrentStock int             `db:"current_stock" json:"current_stock"`
	MinimumStock int             `db:"minimum_stock" json:"minimum_stock"`
	Location     string          `db:"location" json:"location"`
	Category     string          `db:"category" json:"category"`
	StockStatus  StockStatus     `db:"stock_status" json:"stock_status"`
	CreatedBy    uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy    uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// RefreshStockStatus recomputes StockStatus from the current levels.
func (i *InventoryItem) RefreshStockStatus() {
	i.StockStatus = DeriveStockStatus(i.CurrentStock, i.MinimumStock)
}

// StockValue returns unit price times current stock.
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}

// DocumentChecklist tracks the documents required from a client for an engagement.
type DocumentChecklist struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	Title         string          `db:"title" json:"title"`
	FinancialYear string          `db:"financial_year" json:"financial_year"`
	DueDate       *time.Time      `db:"due_date" json:"due_date,omitempty"`
	Status        ChecklistStatus `db:"status" json:"status"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy     uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`

	Items    []ChecklistItem `db:"-" json:"items"`
	Progress int             `db:"-" json:"progress"`
}

// RefreshProgress recomputes Progress from Items.
func (c *DocumentChecklist) RefreshProgress() {
	received := 0
	for i := range c.Items {
		if c.Items[i].Received {
			received++
		}
	}
	c.Progress = ChecklistProgress(received, len(c.Items))
}

// ChecklistItem is one required document within a checklist.
type ChecklistItem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ChecklistID uuid.UUID  `db:"checklist_id" json:"checklist_id"`
	Name        string     `db:"name" json:"name"`
	Received    bool       `db:"received" json:"received"`
	ReceivedAt  *time.Time `db:"received_at" json:"received_at,omitempty"`
	Position    int        `db:"position" json:"position"`
}

// MessageTemplate is a reusable email or SMS body with substitution tokens.
type MessageTemplate struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Channel   Channel   `db:"channel" json:"channel"`
	Subject   string    `db:"subject" json:"subject"`
	Content   string    `db:"content" json:"content"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	UpdatedBy uuid.UUID `db:"updated_by" json:"updated_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CommunicationLog records one outbound message and its delivery outcome.
type CommunicationLog struct {
	ID         uuid.UUID           `db:"id" json:"id"`
	TenantID   uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	ClientID   *uuid.UUID          `db:"client_id" json:"client_id,omitempty"`
	TemplateID *uuid.UUID          `db:"template_id" json:"template_id,omitempty"`
	Channel    Channel             `db:"channel" json:"channel"`
	Recipient  string              `db:"recipient" json:"recipient"`
	Subject    string              `db:"subject" json:"subject"`
	Body       string              `db:"body" json:"body"`
	Status     CommunicationStatus `db:"status" json:"status"`
	Error      string              `db:"error" json:"error,omitempty"`
	SentAt     *time.Time          `db:"sent_at" json:"sent_at,omitempty"`
	CreatedBy  uuid.UUID           `db:"created_by" json:"created_by"`
	CreatedAt  time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at" json:"updated_at"`
}

// BalanceSheetAudit is an audit engagement for a client's financial year.
type BalanceSheetAudit struct {
	ID                     uuid.UUID    `db:"id" json:"id"`
	TenantID               uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	ClientID               uuid.UUID    `db:"client_id" json:"client_id"`
	FinancialYear          string       `db:"financial_year" json:"financial_year"`
	AuditType              AuditType    `db:"audit_type" json:"audit_type"`
	BalanceSheetDate       time.Time    `db:"balance_sheet_date" json:"balance_sheet_date"`
	CompletionDate         *time.Time   `db:"audit_completion_date" json:"audit_completion_date,omitempty"`
	AuditorName            string       `db:"auditor_name" json:"auditor_name"`
	AuditorMembershipNo    string       `db:"auditor_membership_no" json:"auditor_membership_no"`
	OpinionType            AuditOpinion `db:"opinion_type" json:"opinion_type"`
	KeyAuditMatters        string       `db:"key_audit_matters" json:"key_audit_matters"`
	ManagementLetterIssued bool         `db:"management_letter_issued" json:"management_letter_issued"`
	Status                 AuditStatus  `db:"status" json:"status"`
	CreatedBy              uuid.UUID    `db:"created_by" json:"created_by"`
	UpdatedBy              uuid.UUID    `db:"updated_by" json:"updated_by"`
	CreatedAt              time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time    `db:"updated_at" json:"updated_at"`
}

// CMAReport is a Credit Monitoring Arrangement statement prepared for a
// client's banker.
type CMAReport struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	TenantID             uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ClientID             uuid.UUID       `db:"client_id" json:"client_id"`
	ReportingPeriod      CMAPeriod       `db:"reporting_period" json:"reporting_period"`
	ReportDate           time.Time       `db:"report_date" json:"report_date"`
	BankName             string          `db:"bank_name" json:"bank_name"`
	WorkingCapitalLimit  decimal.Decimal `db:"working_capital_limit" json:"working_capital_limit"`
	UtilizedAmount       decimal.Decimal `db:"utilized_amount" json:"utilized_amount"`
	CashCreditLimit      decimal.Decimal `db:"cash_credit_limit" json:"cash_credit_limit"`
	OverdraftLimit       decimal.Decimal `db:"overdraft_limit" json:"overdraft_limit"`
	BillDiscountingLimit decimal.Decimal `db:"bill_discounting_limit" json:"bill_discounting_limit"`
	LetterOfCredit       decimal.Decimal `db:"letter_of_credit" json:"letter_of_credit"`
	BankGuarantee        decimal.Decimal `db:"bank_guarantee" json:"bank_guarantee"`
	InventoryValue       decimal.Decimal `db:"inventory_value" json:"inventory_value"`
	ReceivablesValue     decimal.Decimal `db:"receivables_value" json:"receivables_value"`
	Status               CMAStatus       `db:"status" json:"status"`
	Remarks              string          `db:"remarks" json:"remarks"`
	CreatedBy            uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy            uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`

	UtilizationPercent decimal.Decimal `db:"-" json:"utilization_percent"`
	OverLimit          bool            `db:"-" json:"over_limit"`
}

// RefreshUtilization derives the utilization fields. A report without a
// sanctioned working capital limit shows zero utilization.
func (r *CMAReport) RefreshUtilization() {
	r.UtilizationPercent = decimal.Zero
	r.OverLimit = false
	if !r.WorkingCapitalLimit.IsPositive() {
		return
	}
	r.UtilizationPercent = r.UtilizedAmount.Mul(decimal.NewFromInt(100)).
		Div(r.WorkingCapitalLimit).Round(2)
	r.OverLimit = r.UtilizedAmount.GreaterThan(r.WorkingCapitalLimit)
}

// AssessmentOrder is an order received from the income tax department.
type AssessmentOrder struct {
	ID                  uuid.UUID           `db:"id" json:"id"`
	TenantID            uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	ClientID            uuid.UUID           `db:"client_id" json:"client_id"`
	AssessmentYear      string              `db:"assessment_year" json:"assessment_year"`
	OrderType           AssessmentOrderType `db:"order_type" json:"order_type"`
	OrderDate           time.Time           `db:"order_date" json:"order_date"`
	OrderNumber         string              `db:"order_number" json:"order_number"`
	TotalIncomeAssessed decimal.Decimal     `db:"total_income_assessed" json:"total_income_assessed"`
	TaxDemanded         decimal.Decimal     `db:"tax_demanded" json:"tax_demanded"`
	InterestCharged     decimal.Decimal     `db:"interest_charged" json:"interest_charged"`
	PenaltyImposed      decimal.Decimal     `db:"penalty_imposed" json:"penalty_imposed"`
	AppealFiled         bool                `db:"appeal_filed" json:"appeal_filed"`
	AppealDate          *time.Time          `db:"appeal_date" json:"appeal_date,omitempty"`
	AppealNumber        string              `db:"appeal_number" json:"appeal_number"`
	Status              AssessmentStatus    `db:"status" json:"status"`
	Remarks             string              `db:"remarks" json:"remarks"`
	CreatedBy           uuid.UUID           `db:"created_by" json:"created_by"`
	UpdatedBy           uuid.UUID           `db:"updated_by" json:"updated_by"`
	CreatedAt           time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updated_at"`

	TotalDemand decimal.Decimal `db:"-" json:"total_demand"`
}

// RefreshTotalDemand sums tax, interest and penalty.
func (o *AssessmentOrder) RefreshTotalDemand() {
	o.TotalDemand = o.TaxDemanded.Add(o.InterestCharged).Add(o.PenaltyImposed)
}

// ChallanPayment is a tax payment made on behalf of a client.
type ChallanPayment struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	TenantID       uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ClientID       uuid.UUID       `db:"client_id" json:"client_id"`
	ChallanNumber  string          `db:"challan_number" json:"challan_number"`
	ChallanType    ChallanType     `db:"challan_type" json:"challan_type"`
	TaxType        TaxType         `db:"tax_type" json:"tax_type"`
	AssessmentYear string          `db:"assessment_year" json:"assessment_year"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate    time.Time       `db:"payment_date" json:"payment_date"`
	BankName       string          `db:"bank_name" json:"bank_name"`
	BankBranch     string          `db:"bank_branch" json:"bank_branch"`
	BSRCode        string          `db:"bsr_code" json:"bsr_code"`
	SerialNumber   string          `db:"serial_number" json:"serial_number"`
	Status         ChallanStatus   `db:"status" json:"status"`
	ClearedAt      *time.Time      `db:"cleared_at" json:"cleared_at,omitempty"`
	Remarks        string          `db:"remarks" json:"remarks"`
	CreatedBy      uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy      uuid.UUID       `db:"updated_by" json:"updated_by"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// ClientNote is a free-form CRM note about a client.
type ClientNote struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	TenantID  uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	ClientID  uuid.UUID    `db:"client_id" json:"client_id"`
	Title     string       `db:"title" json:"title"`
	Content   string       `db:"content" json:"content"`
	Category  NoteCategory `db:"category" json:"category"`
	Pinned    bool         `db:"pinned" json:"pinned"`
	CreatedBy uuid.UUID    `db:"created_by" json:"created_by"`
	UpdatedBy uuid.UUID    `db:"updated_by" json:"updated_by"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// GSTINValidation is the latest recorded check of a GSTIN within a tenant.
type GSTINValidation struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantID      uuid.UUID `db:"tenant_id" json:"tenant_id"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	IsValid       bool      `db:"is_valid" json:"is_valid"`
	StateCode     string    `db:"state_code" json:"state_code"`
	StateName     string    `db:"state_name" json:"state_name"`
	EmbeddedPAN   string    `db:"embedded_pan" json:"embedded_pan"`
	Message       string    `db:"message" json:"message"`
	CheckCount    int       `db:"check_count" json:"check_count"`
	LastCheckedBy uuid.UUID `db:"last_checked_by" json:"last_checked_by"`
	LastValidated time.Time `db:"last_validated" json:"last_validated"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
