package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
)

func TestFinancialYear(t *testing.T) {
	assert.Equal(t, "2024-2025", domain.FinancialYear(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-2024", domain.FinancialYear(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-2025", domain.FinancialYear(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestAssessmentYear(t *testing.T) {
	assert.Equal(t, "2025-2026", domain.AssessmentYear(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = domain.ParseDate("2024-07-31")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.July, d.Month())

	_, err = domain.ParseDate("31/07/2024")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/07/2024", domain.FormatDate(&d))
	assert.Equal(t, "", domain.FormatDate(nil))
}

func TestValidationError(t *testing.T) {
	ve := &domain.ValidationError{}
	assert.NoError(t, ve.OrNil())

	ve.Add("pan", "PAN format is invalid")
	ve.Add("pan", "second message is ignored")
	ve.Merge(domain.NewValidationError("name", "is required"))

	err := ve.OrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "validation failed: name: is required; pan: PAN format is invalid", err.Error())
}
