package service

import (
	"testing"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

func testField(name string, t models.FieldType, required bool, opts models.FieldOptions) models.Field {
	return models.Field{Name: name, Label: name, Type: t, Required: required, Options: datatypes.NewJSONType(opts)}
}

func contactFields() []models.Field {
	return []models.Field{
		testField("name", models.FieldTypeText, true, models.FieldOptions{}),
		testField("email", models.FieldTypeEmail, false, models.FieldOptions{}),
		testField("website", models.FieldTypeURL, false, models.FieldOptions{}),
		testField("employees", models.FieldTypeNumber, false, models.FieldOptions{Min: ptr(0.0), Max: ptr(500.0)}),
		testField("joined", models.FieldTypeDate, false, models.FieldOptions{}),
		testField("vip", models.FieldTypeCheckbox, false, models.FieldOptions{}),
		testField("status", models.FieldTypeSelect, false, models.FieldOptions{Choices: []models.Choice{
			{Value: "new", Label: "New"}, {Value: "active", Label: "Active"},
		}}),
	}
}

func codes(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Code
	}
	return out
}

func TestValidateRecord_ValidData(t *testing.T) {
	data := map[string]interface{}{
		"name":      "Ada",
		"email":     "ada@example.com",
		"website":   "https://example.com",
		"employees": float64(12),
		"joined":    "2024-03-01",
		"vip":       true,
		"status":    "active",
		"unbound":   []interface{}{"extra keys are ignored"},
	}
	assert.Empty(t, ValidateRecord(contactFields(), data))
}

func TestValidateRecord_Failures(t *testing.T) {
	tests := []struct {
		name  string
		data  map[string]interface{}
		field string
		code  string
	}{
		{name: "required missing", data: map[string]interface{}{}, field: "name", code: CodeRequired},
		{name: "required blank", data: map[string]interface{}{"name": "   "}, field: "name", code: CodeRequired},
		{name: "required null", data: map[string]interface{}{"name": nil}, field: "name", code: CodeRequired},
		{name: "bad email", data: map[string]interface{}{"name": "x", "email": "not-an-email"}, field: "email", code: CodeTypeMismatch},
		{name: "bad url", data: map[string]interface{}{"name": "x", "website": "example"}, field: "website", code: CodeTypeMismatch},
		{name: "number as text", data: map[string]interface{}{"name": "x", "employees": "many"}, field: "employees", code: CodeTypeMismatch},
		{name: "number below min", data: map[string]interface{}{"name": "x", "employees": float64(-1)}, field: "employees", code: CodeOutOfRange},
		{name: "number above max", data: map[string]interface{}{"name": "x", "employees": float64(501)}, field: "employees", code: CodeOutOfRange},
		{name: "bad date", data: map[string]interface{}{"name": "x", "joined": "someday"}, field: "joined", code: CodeTypeMismatch},
		{name: "checkbox as string", data: map[string]interface{}{"name": "x", "vip": "yes"}, field: "vip", code: CodeTypeMismatch},
		{name: "unknown choice", data: map[string]interface{}{"name": "x", "status": "archived"}, field: "status", code: CodeEnumInvalid},
		{name: "choice not a string", data: map[string]interface{}{"name": "x", "status": float64(1)}, field: "status", code: CodeTypeMismatch},
		{name: "text as number", data: map[string]interface{}{"name": float64(42)}, field: "name", code: CodeTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRecord(contactFields(), tt.data)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidateRecord_LenientCoercions(t *testing.T) {
	data := map[string]interface{}{
		"name":      "x",
		"employees": "42",
		"joined":    float64(1709251200000),
	}
	assert.Empty(t, ValidateRecord(contactFields(), data))
}

func TestValidateRecord_OptionalEmptyValuesPass(t *testing.T) {
	data := map[string]interface{}{"name": "x", "email": "", "status": nil}
	assert.Empty(t, ValidateRecord(contactFields(), data))
}

func TestValidateRecord_ReportsEveryField(t *testing.T) {
	errs := ValidateRecord(contactFields(), map[string]interface{}{"email": "nope", "vip": "nope"})
	assert.Equal(t, map[string]string{
		"name":  CodeRequired,
		"email": CodeTypeMismatch,
		"vip":   CodeTypeMismatch,
	}, codes(errs))
}

func TestBuildReport_ListsUnenforcedUniqueFields(t *testing.T) {
	fields := contactFields()
	fields[1].Unique = true

	report := buildReport(fields, map[string]interface{}{"name": "x"})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{"email"}, report.Unenforced)

	report = buildReport(fields, map[string]interface{}{})
	assert.False(t, report.Valid)
	assert.Len(t, report.Errors, 1)
}

func TestRecordValidationError_IsValidationError(t *testing.T) {
	err := &RecordValidationError{Errors: []FieldError{{Code: CodeRequired, Field: "name", Message: "name is required"}}}
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "name is required")

	multi := &RecordValidationError{Errors: make([]FieldError, 3)}
	assert.Contains(t, multi.Error(), "3 field errors")
}
