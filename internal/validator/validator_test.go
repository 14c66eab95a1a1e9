package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/validator"
)

type sampleInput struct {
	Name    string           `json:"name" validate:"required,max=10"`
	PAN     string           `json:"pan" validate:"omitempty,pan"`
	GSTIN   string           `json:"gstin" validate:"omitempty,gstin"`
	TAN     string           `json:"tan" validate:"omitempty,tan"`
	Phone   string           `json:"phone" validate:"omitempty,phone_in"`
	Amount  decimal.Decimal  `json:"amount" validate:"gte=0"`
	Fee     *decimal.Decimal `json:"fee" validate:"omitempty,gte=0"`
	Due     string           `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Kind    string           `json:"kind" validate:"omitempty,oneof='Due Date' Birthday"`
	Ignored string           `json:"-"`
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := validator.New()
	fee := decimal.NewFromInt(10)

	err := v.Struct(sampleInput{
		Name:   "Acme",
		PAN:    "ABCDE1234F",
		GSTIN:  "27ABCDE1234F1Z5",
		TAN:    "MUMA12345B",
		Phone:  "9876543210",
		Amount: decimal.RequireFromString("1500.50"),
		Fee:    &fee,
		Due:    "2024-07-31",
		Kind:   "Due Date",
	})

	assert.NoError(t, err)
}

func TestValidator_Struct_FieldMessages(t *testing.T) {
	v := validator.New()
	neg := decimal.NewFromInt(-1)

	err := v.Struct(sampleInput{
		PAN:    "abcde1234f",
		GSTIN:  "27ABCDE1234F15Z",
		TAN:    "SHORT",
		Phone:  "12345",
		Amount: decimal.NewFromInt(-5),
		Fee:    &neg,
		Due:    "31/07/2024",
		Kind:   "Weekly",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "is required", ve.Fields["name"])
	assert.Equal(t, "PAN format is invalid (e.g. ABCDE1234F)", ve.Fields["pan"])
	assert.Equal(t, "GSTIN format is invalid", ve.Fields["gstin"])
	assert.Equal(t, "TAN must be exactly 10 characters", ve.Fields["tan"])
	assert.Equal(t, "enter a valid 10-digit phone number", ve.Fields["phone"])
	assert.Equal(t, "must be at least 0", ve.Fields["amount"])
	assert.Equal(t, "must be at least 0", ve.Fields["fee"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", ve.Fields["due_date"])
	assert.Equal(t, "must be one of: Due Date Birthday", ve.Fields["kind"])
}

func TestValidator_Struct_MaxLength(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleInput{Name: "far too long a name"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be at most 10 characters", ve.Fields["name"])
	assert.Len(t, ve.Fields, 1)
}

func TestValidator_Struct_YearRangeAndDigits(t *testing.T) {
	v := validator.New()
	type challan struct {
		AssessmentYear string `json:"assessment_year" validate:"required,year_range"`
		BSRCode        string `json:"bsr_code" validate:"omitempty,len=7,numeric"`
	}

	assert.NoError(t, v.Struct(challan{AssessmentYear: "2025-2026", BSRCode: "0510002"}))

	err := v.Struct(challan{AssessmentYear: "2025-26", BSRCode: "05100AB"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be a year range such as 2024-2025", ve.Fields["assessment_year"])
	assert.Equal(t, "must contain digits only", ve.Fields["bsr_code"])
}
