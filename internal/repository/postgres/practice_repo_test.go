package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/repository/postgres"
)

func TestAuditRepo_List_FiltersAuditType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAuditRepo(db)
	tenantID, clientID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM balance_sheet_audits WHERE tenant_id = \$1 AND audit_type = \$2 AND client_id = \$3 AND \(auditor_name ILIKE \$4 OR financial_year ILIKE \$4 OR auditor_membership_no ILIKE \$4\)$`).
		WithArgs(tenantID, "Statutory", clientID, "%Rao%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM balance_sheet_audits WHERE .* ORDER BY created_at DESC$`).
		WithArgs(tenantID, "Statutory", clientID, "%Rao%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "auditor_name", "status"}).
			AddRow(uuid.New().String(), "S. Rao", "In Progress"))

	audits, total, err := repo.List(context.Background(), tenantID, domain.ListFilter{
		Kind: "Statutory", ClientID: &clientID, Search: "Rao",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, audits, 1)
	assert.Equal(t, domain.AuditStatusInProgress, audits[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAuditRepo(db)

	mock.ExpectQuery(`SELECT \* FROM balance_sheet_audits WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCMAReportRepo_GetByID_ScansAmounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCMAReportRepo(db)
	tenantID, id := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM cma_reports WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs(id, tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "working_capital_limit", "utilized_amount", "status"}).
			AddRow(id.String(), "5000000.00", "3750000.00", "Draft"))

	report, err := repo.GetByID(context.Background(), tenantID, id)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000000).Equal(report.WorkingCapitalLimit))
	assert.Equal(t, domain.CMAStatusDraft, report.Status)
}

func TestCMAReportRepo_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewCMAReportRepo(db)

	mock.ExpectExec(`DELETE FROM cma_reports WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New(), uuid.New()), domain.ErrNotFound)
}

func TestAssessmentRepo_Update_WritesAppealFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAssessmentRepo(db)

	mock.ExpectExec(`UPDATE assessment_orders SET .* appeal_filed = \$\d+, appeal_date = \$\d+, appeal_number = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.AssessmentOrder{
		ID: uuid.New(), TenantID: uuid.New(), AppealFiled: true, AppealNumber: "CIT(A)/42/2025",
		Status: domain.AssessmentStatusAppealed,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientNoteRepo_List_PinnedFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewClientNoteRepo(db)
	tenantID, clientID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM client_notes WHERE tenant_id = \$1 AND client_id = \$2$`).
		WithArgs(tenantID, clientID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM client_notes WHERE .* ORDER BY pinned DESC, created_at DESC$`).
		WithArgs(tenantID, clientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "pinned"}).
			AddRow(uuid.New().String(), "Bank details", true).
			AddRow(uuid.New().String(), "Called about TDS", false))

	notes, total, err := repo.List(context.Background(), tenantID, domain.ListFilter{ClientID: &clientID})

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, notes, 2)
	assert.True(t, notes[0].Pinned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
