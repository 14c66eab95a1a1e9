package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `INSERT INTO employees (id, tenant_id, employee_code, name, email, phone, pan, designation,
		department, date_of_joining, salary, status, created_by, updated_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :employee_code, :name, :email, :phone, :pan, :designation,
		:department, :date_of_joining, :salary, :status, :created_by, :updated_by, :created_at, :updated_at)`

	if _, err := conn(ctx, r.db).NamedExecContext(ctx, query, employee); err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicateEmployeeCode
		}
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	err := conn(ctx, r.db).GetContext(ctx, &employee,
		"SELECT * FROM employees WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ListFilter) ([]domain.Employee, int, error) {
	w := tenantWhere(tenantID)
	w.eq("status", filter.Status)
	w.eq("department", filter.Kind)
	w.search(filter.Search, "name", "employee_code", "email", "designation")

	employees, total, err := selectPage[domain.Employee](ctx, conn(ctx, r.db), "employees", w,
		"employee_code ASC", filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	employee.UpdatedAt = time.Now().UTC()
	query := `UPDATE employees SET employee_code = :employee_code, name = :name, email = :email,
		phone = :phone, pan = :pan, designation = :designation, department = :department,
		date_of_joining = :date_of_joining, salary = :salary, status = :status,
		updated_by = :updated_by, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	res, err := conn(ctx, r.db).NamedExecContext(ctx, query, employee)
	if err != nil {
		if _, dup := uniqueViolation(err); dup {
			return domain.ErrDuplicateEmployeeCode
		}
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}

func (r *employeeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM employees WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Delete: %w", err)
	}
	return rowsAffectedOrNotFound(res, domain.ErrNotFound)
}
