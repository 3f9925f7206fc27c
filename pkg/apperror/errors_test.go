package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrInvalidStatus(),
			expected: "[ORD_004] Invalid transaction status",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrPayoutFailed(fmt.Errorf("paybox: 503")),
			expected: "[EXT_002] Payout failed: paybox: 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("rpc timeout")
	appErr := ErrLedgerFailure(inner)
	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrInvalidSignature().Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("credit: %w", ErrOwnershipMismatch())
	assert.True(t, HasCode(wrapped, CodeOwnershipMismatch))
	assert.False(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestErrorCatalogue(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("Transaction"), CodeNotFound, http.StatusNotFound},
		{"OwnershipMismatch", ErrOwnershipMismatch(), CodeOwnershipMismatch, http.StatusBadRequest},
		{"InvalidStateTransition", ErrInvalidStateTransition("INITIATED", "SETTLING"), CodeInvalidStateTransition, http.StatusBadRequest},
		{"InvalidStatus", ErrInvalidStatus(), CodeInvalidStatus, http.StatusBadRequest},
		{"ConcurrentModification", ErrConcurrentModification(), CodeConcurrentModification, http.StatusConflict},
		{"WalletNotLinked", ErrWalletNotLinked(), CodeWalletNotLinked, http.StatusBadRequest},
		{"UnsupportedToken", ErrUnsupportedToken(), CodeUnsupportedToken, http.StatusBadRequest},
		{"InvalidPayout", ErrInvalidPayout("bad"), CodeInvalidPayout, http.StatusBadRequest},
		{"PaymentInitiationFailed", ErrPaymentInitiationFailed(inner), CodePaymentInitiationFailed, http.StatusBadGateway},
		{"PayoutFailed", ErrPayoutFailed(inner), CodePayoutFailed, http.StatusBadGateway},
		{"LedgerFailure", ErrLedgerFailure(inner), CodeLedgerFailure, http.StatusBadGateway},
		{"TokenAccountCreationFailed", ErrTokenAccountCreationFailed(inner), CodeTokenAccountCreationFailed, http.StatusBadGateway},
		{"MarketDataUnavailable", ErrMarketDataUnavailable(inner), CodeMarketDataUnavailable, http.StatusBadGateway},
		{"InvalidToken", ErrInvalidToken(), CodeInvalidToken, http.StatusUnauthorized},
		{"InvalidSignature", ErrInvalidSignature(), CodeInvalidSignature, http.StatusBadRequest},
		{"RateLimitExceeded", ErrRateLimitExceeded(), CodeRateLimitExceeded, http.StatusTooManyRequests},
		{"Validation", Validation("bad shape"), CodeValidation, http.StatusBadRequest},
		{"Internal", InternalError(inner), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvalidStateTransition_Message(t *testing.T) {
	err := ErrInvalidStateTransition("INITIATED", "SETTLING")
	assert.Contains(t, err.Message, "INITIATED")
	assert.Contains(t, err.Message, "SETTLING")
}
