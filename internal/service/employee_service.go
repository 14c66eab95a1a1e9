package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// EmployeeInput is the DTO for creating or editing an employee.
type EmployeeInput struct {
	EmployeeCode  string          `json:"employee_code" validate:"required,max=20"`
	Name          string          `json:"name" validate:"required,max=200"`
	Email         string          `json:"email" validate:"omitempty,email,max=120"`
	Phone         string          `json:"phone" validate:"omitempty,phone_in"`
	PAN           string          `json:"pan" validate:"omitempty,pan"`
	Designation   string          `json:"designation" validate:"omitempty,max=100"`
	Department    string          `json:"department" validate:"omitempty,max=100"`
	DateOfJoining string          `json:"date_of_joining" validate:"omitempty,datetime=2006-01-02"`
	Salary        decimal.Decimal `json:"salary" validate:"gte=0"`
	Status        string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (in *EmployeeInput) apply(e *domain.Employee) {
	e.EmployeeCode = strings.TrimSpace(in.EmployeeCode)
	e.Name = strings.TrimSpace(in.Name)
	e.Email = in.Email
	e.Phone = in.Phone
	e.PAN = in.PAN
	e.Designation = in.Designation
	e.Department = strings.TrimSpace(in.Department)
	e.DateOfJoining = mustDate(in.DateOfJoining)
	e.Salary = in.Salary
}

// PayrollInput is the DTO for recording one month's payroll for an employee.
type PayrollInput struct {
	EmployeeID   uuid.UUID       `json:"employee_id" validate:"required"`
	MonthYear    string          `json:"month_year" validate:"required,datetime=2006-01"`
	BasicSalary  decimal.Decimal `json:"basic_salary" validate:"gte=0"`
	Allowances   decimal.Decimal `json:"allowances" validate:"gte=0"`
	Deductions   decimal.Decimal `json:"deductions" validate:"gte=0"`
	PFDeduction  decimal.Decimal `json:"pf_deduction" validate:"gte=0"`
	TDSDeduction decimal.Decimal `json:"tds_deduction" validate:"gte=0"`
}

// PayrollSummary is the payroll overview for one month.
type PayrollSummary struct {
	MonthYear       string          `json:"month_year"`
	EmployeeCount   int             `json:"employee_count"`
	ActiveEmployees int             `json:"active_employees"`
	DepartmentCount int             `json:"department_count"`
	EntryCount      int             `json:"entry_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

// EmployeeService defines the employee and payroll contract.
type EmployeeService interface {
	Create(ctx context.Context, actor domain.Actor, input EmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Employee, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error

	CreatePayroll(ctx context.Context, actor domain.Actor, input PayrollInput) (*domain.PayrollEntry, error)
	ListPayroll(ctx context.Context, actor domain.Actor, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error)
	DeletePayroll(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	// PayrollSummary defaults to the current month when monthYear is empty.
	PayrollSummary(ctx context.Context, actor domain.Actor, monthYear string) (*PayrollSummary, error)
}

type employeeService struct {
	repo    port.EmployeeRepository
	payroll port.PayrollRepository
	tx      port.Transactor
	valid   *validator.Validator
	now     Clock
	log     *zap.Logger
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(
	repo port.EmployeeRepository,
	payroll port.PayrollRepository,
	tx port.Transactor,
	valid *validator.Validator,
	now Clock,
	log *zap.Logger,
) EmployeeService {
	return &employeeService{repo: repo, payroll: payroll, tx: tx, valid: valid, now: clockOrNow(now), log: log}
}

func (s *employeeService) Create(ctx context.Context, actor domain.Actor, input EmployeeInput) (*domain.Employee, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	employee := &domain.Employee{
		TenantID:  actor.TenantID,
		Status:    domain.EmployeeStatusActive,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(employee)
	if input.Status != "" {
		employee.Status = domain.EmployeeStatus(input.Status)
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, employee)
	}); err != nil {
		return nil, err
	}
	s.log.Info("employee created", zap.String("employee_id", employee.ID.String()))
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *employeeService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Employee, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *employeeService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input EmployeeInput) (*domain.Employee, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	var employee *domain.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		employee, err = s.repo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.apply(employee)
		if to := domain.EmployeeStatus(input.Status); to != "" && to != employee.Status {
			if err := domain.EmployeeTransitions.Check(employee.Status, to); err != nil {
				return err
			}
			employee.Status = to
		}
		employee.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, employee)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// CreatePayroll computes the net salary and records the entry. A negative
// net is rejected before anything is written.
func (s *employeeService) CreatePayroll(ctx context.Context, actor domain.Actor, input PayrollInput) (*domain.PayrollEntry, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	entry := &domain.PayrollEntry{
		TenantID:     actor.TenantID,
		EmployeeID:   input.EmployeeID,
		MonthYear:    input.MonthYear,
		BasicSalary:  input.BasicSalary,
		Allowances:   input.Allowances,
		Deductions:   input.Deductions,
		PFDeduction:  input.PFDeduction,
		TDSDeduction: input.TDSDeduction,
		CreatedBy:    actor.UserID,
	}
	entry.ComputeNet()
	if entry.NetSalary.IsNegative() {
		return nil, domain.ErrNegativeNetSalary
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, actor.TenantID, input.EmployeeID); err != nil {
			return err
		}
		return s.payroll.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("payroll recorded",
		zap.String("employee_id", entry.EmployeeID.String()),
		zap.String("month_year", entry.MonthYear))
	return entry, nil
}

func (s *employeeService) ListPayroll(ctx context.Context, actor domain.Actor, monthYear string, filter domain.ListFilter) ([]domain.PayrollEntry, int, error) {
	return s.payroll.List(ctx, actor.TenantID, monthYear, filter)
}

func (s *employeeService) DeletePayroll(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.payroll.Delete(ctx, actor.TenantID, id)
	})
}

func (s *employeeService) PayrollSummary(ctx context.Context, actor domain.Actor, monthYear string) (*PayrollSummary, error) {
	if monthYear == "" {
		monthYear = s.now().Format(domain.MonthLayout)
	}
	employees, _, err := s.repo.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	entries, _, err := s.payroll.List(ctx, actor.TenantID, monthYear, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	gross, net := aggregate.PayrollTotals(entries)
	return &PayrollSummary{
		MonthYear:       monthYear,
		EmployeeCount:   len(employees),
		ActiveEmployees: aggregate.ActiveEmployeeCount(employees),
		DepartmentCount: aggregate.DepartmentCount(employees),
		EntryCount:      len(entries),
		TotalGross:      gross,
		TotalNet:        net,
	}, nil
}
