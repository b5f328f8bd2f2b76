package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// validateRequest runs struct validation and reports the first failing field
// as a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(jsonName(fe.Field()), msg))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

// jsonName lower-cases the first letter of a Go field name
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// lookupError maps a repository read error onto the domain error space
func lookupError(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.NewStorageError(op, err)
}

// writeError maps a repository write error, turning unique violations into conflicts
func writeError(err error, conflict error, op string) error {
	if conflict != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return apperrors.NewStorageError(op, err)
}

// actorFromContext returns the authenticated user stored by the auth middleware
func actorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if email, ok := ctx.Value(logger.ContextKeyEmail).(string); ok && email != "" {
		return email
	}
	if user, ok := ctx.Value(logger.ContextKeyUser).(string); ok {
		return user
	}
	return ""
}

// firstNonEmpty returns the first non-blank value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Pagination bounds shared by record listings
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

// clamp applies the default to a zero limit and caps it at the maximum
func (p Pagination) clamp(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, apperrors.ErrInvalidPagination
	}
	if limit == 0 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	return limit, offset, nil
}
