package apperrors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"configuration", &ConfigurationError{Role: "FX_GAIN", Reason: "not configured"}, ErrConfiguration},
		{"validation", NewValidationError("lines", "document has no lines"), ErrValidation},
		{"rate", &RateNotFoundError{From: "USD", To: "AED", AsOf: time.Now(), RateType: "SPOT"}, ErrRateNotFound},
		{"immutable", &ImmutableDocumentError{DocumentID: "d1", Fields: []string{"total"}}, ErrImmutableDocument},
		{"state", &InvalidStateError{Entity: "document", ID: "d1", Current: "DRAFT", Wanted: "POSTED"}, ErrInvalidState},
		{"app", NewAppError(500, "boom", ErrInternal), ErrInternal},
		{"not found", NewNotFoundError("document", "d1"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestRateNotFoundError_Message(t *testing.T) {
	err := &RateNotFoundError{From: "USD", To: "AED", AsOf: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), RateType: "SPOT"}
	assert.Equal(t, "no SPOT exchange rate from USD to AED on or before 2024-03-15", err.Error())

	var target *RateNotFoundError
	assert.True(t, errors.As(fmt.Errorf("posting: %w", err), &target))
	assert.Equal(t, "USD", target.From)
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Role: "AR", Code: "1100", Reason: "account not found in chart of accounts"}
	assert.Contains(t, err.Error(), "AR")
	assert.Contains(t, err.Error(), "1100")
}

func TestImmutableDocumentError_ListsFields(t *testing.T) {
	err := &ImmutableDocumentError{DocumentID: "inv-1", Fields: []string{"total", "lines[0].unitPrice"}}
	assert.Contains(t, err.Error(), "total, lines[0].unitPrice")
}
