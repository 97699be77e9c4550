package usecase

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user so
	// callers cannot probe for foreign ids.
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries field level messages keyed by request field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// fieldErrors accumulates messages and returns nil when nothing was added.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// money checks an amount against the range the money columns can store.
func (f fieldErrors) money(field string, v float64) {
	label := strings.ReplaceAll(field, "_", " ")
	switch {
	case v < 0:
		f.add(field, "The "+label+" must be at least 0.")
	case v > entities.MaxMoney:
		f.add(field, "The "+label+" must not be greater than "+strconv.FormatFloat(entities.MaxMoney, 'f', 2, 64)+".")
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}

// ConflictError reports a uniqueness rule the request would break.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

var (
	ErrUnitHasActiveAgreement = &ConflictError{Message: "Unit already has an active agreement"}
	ErrDuplicateBillingMonth  = &ConflictError{Message: "Payment for this agreement and billing month already exists."}
	ErrConcurrentModification = &ConflictError{Message: "The record was modified by another request. Reload and try again."}
)
