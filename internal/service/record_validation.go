package service

import (
	"fmt"
	"strconv"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/render"

	"github.com/go-playground/validator/v10"
)

// Field error codes reported by ValidateRecord
const (
	CodeRequired     = "required"
	CodeTypeMismatch = "type_mismatch"
	CodeEnumInvalid  = "enum_invalid"
	CodeOutOfRange   = "out_of_range"
)

// FieldError describes one record value that does not satisfy its field
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport is the advisory outcome of validating record data.
// Unenforced lists the unique fields, whose uniqueness is never checked.
type ValidationReport struct {
	Valid      bool         `json:"valid"`
	Errors     []FieldError `json:"errors"`
	Unenforced []string     `json:"unenforced,omitempty"`
}

// RecordValidationError rejects a record write when validation is enforced
type RecordValidationError struct {
	Errors []FieldError
}

func (e *RecordValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("record validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("record validation failed: %d field errors", len(e.Errors))
}

// Unwrap exposes the failure as a ValidationError
func (e *RecordValidationError) Unwrap() error {
	return apperrors.NewValidationError("data", e.Error())
}

var valueValidator = validator.New()

// ValidateRecord checks data against the field definitions: required
// presence, type compatibility, select membership and numeric bounds. Keys
// without a field are ignored.
func ValidateRecord(fields []models.Field, data map[string]interface{}) []FieldError {
	errs := []FieldError{}
	for _, f := range fields {
		value, present := data[f.Name]
		if !present || render.IsEmpty(value) {
			if f.Required {
				errs = append(errs, FieldError{Code: CodeRequired, Field: f.Name, Message: fmt.Sprintf("%s is required", f.Label)})
			}
			continue
		}
		if e := checkValue(f, value); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

func mismatch(f models.Field, expected string) *FieldError {
	return &FieldError{Code: CodeTypeMismatch, Field: f.Name, Message: fmt.Sprintf("%s must be %s", f.Label, expected)}
}

func checkValue(f models.Field, value interface{}) *FieldError {
	switch f.Type {
	case models.FieldTypeCheckbox:
		if _, ok := value.(bool); !ok {
			return mismatch(f, "a boolean")
		}

	case models.FieldTypeNumber, models.FieldTypeCurrency:
		n, ok := render.Number(value)
		if !ok {
			return mismatch(f, "a number")
		}
		opts := f.Options.Data()
		if opts.Min != nil && n < *opts.Min {
			return &FieldError{Code: CodeOutOfRange, Field: f.Name, Message: fmt.Sprintf("%s must be at least %s", f.Label, strconv.FormatFloat(*opts.Min, 'f', -1, 64))}
		}
		if opts.Max != nil && n > *opts.Max {
			return &FieldError{Code: CodeOutOfRange, Field: f.Name, Message: fmt.Sprintf("%s must be at most %s", f.Label, strconv.FormatFloat(*opts.Max, 'f', -1, 64))}
		}

	case models.FieldTypeDate:
		if _, ok := render.Date(value); !ok {
			return mismatch(f, "an ISO date or epoch milliseconds")
		}

	case models.FieldTypeSelect:
		s, ok := value.(string)
		if !ok {
			return mismatch(f, "a string")
		}
		if _, ok := f.Options.Data().Choice(s); !ok {
			return &FieldError{Code: CodeEnumInvalid, Field: f.Name, Message: fmt.Sprintf("%q is not a choice of %s", s, f.Label)}
		}

	case models.FieldTypeEmail:
		s, ok := value.(string)
		if !ok || valueValidator.Var(s, "email") != nil {
			return mismatch(f, "an email address")
		}

	case models.FieldTypeURL:
		s, ok := value.(string)
		if !ok || valueValidator.Var(s, "url") != nil {
			return mismatch(f, "a URL")
		}

	default:
		if _, ok := value.(string); !ok {
			return mismatch(f, "a string")
		}
	}
	return nil
}

// buildReport wraps ValidateRecord output with the unique fields it skipped
func buildReport(fields []models.Field, data map[string]interface{}) *ValidationReport {
	report := &ValidationReport{Errors: ValidateRecord(fields, data)}
	report.Valid = len(report.Errors) == 0
	for _, f := range fields {
		if f.Unique {
			report.Unenforced = append(report.Unenforced, f.Name)
		}
	}
	return report
}
