package port

import (
	"context"

	"github.com/google/uuid"

	"taxdesk/internal/domain"
)

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ClientRepository defines the contract for client persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// FilingRepository defines the contract for return filing persistence.
type FilingRepository interface {
	Create(ctx context.Context, filing *domain.ReturnFiling) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ReturnFiling, error)
	// List filters on Kind, Status, ClientID, Search and the due date range.
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ReturnFiling, int, error)
	// ListUnsettled returns filings not yet Filed, Processed or Approved ordered by due date.
	ListUnsettled(ctx context.Context, tenantID uuid.UUID) ([]domain.ReturnFiling, error)
	Update(ctx context.Context, filing *domain.ReturnFiling) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// EmployeeRepository defines the contract for employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Employee, int, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// PayrollRepository defines the contract for payroll entry persistence.
type PayrollRepository interface {
	Create(ctx context.Context, entry *domain.PayrollEntry) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PayrollEntry, error)
	// List returns entries for monthYear (YYYY-MM), or every month when empty.
	// filter.ClientID, when set, narrows the result to one employee.
	List(ctx context.Context, tenantID uuid.UUID, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// DocumentRepository defines the contract for document metadata persistence.
// List filters on ClientID, Kind (document type), Status (folder) and Search.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Document, int, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// FeeRepository defines the contract for outstanding fee persistence.
type FeeRepository interface {
	Create(ctx context.Context, fee *domain.OutstandingFee) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.OutstandingFee, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.OutstandingFee, int, error)
	Update(ctx context.Context, fee *domain.OutstandingFee) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountPendingByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int, error)
}

// ReminderRepository defines the contract for reminder persistence.
// List filters on Status, Kind (reminder type), Search and the reminder date range.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Reminder, int, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// InventoryRepository defines the contract for inventory persistence.
// List filters on Kind (category), Status (stock status) and Search.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error)
	// GetForUpdate loads the item and locks its row for the current transaction.
	GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.InventoryItem, int, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ChecklistRepository defines the contract for document checklist persistence.
// Checklists are always returned with their items loaded.
type ChecklistRepository interface {
	Create(ctx context.Context, checklist *domain.DocumentChecklist) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DocumentChecklist, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.DocumentChecklist, int, error)
	UpdateStatus(ctx context.Context, checklist *domain.DocumentChecklist) error
	SetItemReceived(ctx context.Context, checklistID, itemID uuid.UUID, received bool) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// TemplateRepository defines the contract for message template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.MessageTemplate) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.MessageTemplate, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.MessageTemplate, int, error)
	Update(ctx context.Context, tmpl *domain.MessageTemplate) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CommunicationLogRepository defines the contract for communication log persistence.
type CommunicationLogRepository interface {
	Create(ctx context.Context, log *domain.CommunicationLog) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CommunicationLog, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CommunicationLog, int, error)
	UpdateStatus(ctx context.Context, log *domain.CommunicationLog) error
}

// AuditRepository defines the contract for balance sheet audit persistence.
// List filters on Status, Kind (audit type), ClientID, Search and the balance sheet date range.
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.BalanceSheetAudit) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.BalanceSheetAudit, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.BalanceSheetAudit, int, error)
	Update(ctx context.Context, audit *domain.BalanceSheetAudit) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CMAReportRepository defines the contract for CMA report persistence.
// List filters on Status, Kind (reporting period), ClientID, Search and the report date range.
type CMAReportRepository interface {
	Create(ctx context.Context, report *domain.CMAReport) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.CMAReport, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.CMAReport, int, error)
	Update(ctx context.Context, report *domain.CMAReport) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// AssessmentRepository defines the contract for assessment order persistence.
// List filters on Status, Kind (order type), ClientID, Search and the order date range.
type AssessmentRepository interface {
	Create(ctx context.Context, order *domain.AssessmentOrder) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.AssessmentOrder, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.AssessmentOrder, int, error)
	Update(ctx context.Context, order *domain.AssessmentOrder) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ChallanRepository defines the contract for challan payment persistence.
// List filters on Status, Kind (tax type), ClientID, Search and the payment date range.
type ChallanRepository interface {
	// Create and Update return domain.ErrDuplicateChallan when the challan
	// number is already recorded for the tenant.
	Create(ctx context.Context, challan *domain.ChallanPayment) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ChallanPayment, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ChallanPayment, int, error)
	Update(ctx context.Context, challan *domain.ChallanPayment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ClientNoteRepository defines the contract for client note persistence.
// List returns pinned notes first and filters on Kind (category), ClientID and Search.
type ClientNoteRepository interface {
	Create(ctx context.Context, note *domain.ClientNote) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.ClientNote, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.ClientNote, int, error)
	Update(ctx context.Context, note *domain.ClientNote) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// GSTINValidationRepository defines the contract for the GSTIN check history.
type GSTINValidationRepository interface {
	// Upsert records a check. A GSTIN already checked by the tenant has its
	// result replaced and its check count incremented; v receives the stored row.
	Upsert(ctx context.Context, v *domain.GSTINValidation) error
	// ListRecent returns the tenant's most recently checked GSTINs.
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.GSTINValidation, error)
}
