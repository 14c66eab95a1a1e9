package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
// Each condition is a format string whose verbs receive the argument's
// position; use %[1]d to reference it more than once.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func tenantWhere(tenantID uuid.UUID) *whereBuilder {
	return &whereBuilder{clauses: []string{"tenant_id = $1"}, args: []interface{}{tenantID}}
}

func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(cond, len(w.args)))
}

// eq adds "col = $n" when value is non-empty.
func (w *whereBuilder) eq(col, value string) {
	if value != "" {
		w.add(col+" = $%d", value)
	}
}

func (w *whereBuilder) eqID(col string, id *uuid.UUID) {
	if id != nil {
		w.add(col+" = $%d", *id)
	}
}

// search adds a case-insensitive substring match over cols.
func (w *whereBuilder) search(term string, cols ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE $%[1]d"
	}
	w.add("("+strings.Join(parts, " OR ")+")", "%"+term+"%")
}

// between bounds col to the calendar days from..to. The upper bound is the
// start of the day after to, so timestamps late on the last day still match.
func (w *whereBuilder) between(col string, from, to *time.Time) {
	if from != nil {
		w.add(col+" >= $%d", *from)
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day()+1, 0, 0, 0, 0, to.Location())
		w.add(col+" < $%d", end)
	}
}

func (w *whereBuilder) String() string {
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// selectPage runs a COUNT and a paged SELECT * over table. A zero limit
// returns every matching row.
func selectPage[T any](ctx context.Context, q dbtx, table string, w *whereBuilder,
	orderBy string, offset, limit int) ([]T, int, error) {
	var total int
	if err := q.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+table+" "+w.String(), w.args...); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	query := "SELECT * FROM " + table + " " + w.String() + " ORDER BY " + orderBy
	args := append([]interface{}{}, w.args...)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	items := []T{}
	if err := q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select: %w", err)
	}
	return items, total, nil
}
