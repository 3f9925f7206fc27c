package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodeNotFound               = "ORD_001"
	CodeOwnershipMismatch      = "ORD_002"
	CodeInvalidStateTransition = "ORD_003"
	CodeInvalidStatus          = "ORD_004"
	CodeConcurrentModification = "ORD_005"
	CodeWalletNotLinked        = "ORD_006"
	CodeUnsupportedToken       = "ORD_007"
	CodeInvalidPayout          = "ORD_008"

	CodePaymentInitiationFailed    = "EXT_001"
	CodePayoutFailed               = "EXT_002"
	CodeLedgerFailure              = "EXT_003"
	CodeTokenAccountCreationFailed = "EXT_004"
	CodeMarketDataUnavailable      = "EXT_005"

	CodeInvalidToken     = "SEC_001"
	CodeInvalidSignature = "SEC_002"

	CodeRateLimitExceeded = "RATE_001"
	CodeValidation        = "VAL_001"
	CodeInternal          = "SYS_001"
)

// ---- Order state machine (ORD) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrOwnershipMismatch() *AppError {
	return New(CodeOwnershipMismatch, "Transaction does not belong to user", http.StatusBadRequest)
}

func ErrInvalidStateTransition(from, to string) *AppError {
	return New(CodeInvalidStateTransition,
		fmt.Sprintf("Transaction cannot move from %s to %s", from, to), http.StatusBadRequest)
}

func ErrInvalidStatus() *AppError {
	return New(CodeInvalidStatus, "Invalid transaction status", http.StatusBadRequest)
}

func ErrConcurrentModification() *AppError {
	return New(CodeConcurrentModification, "Transaction was modified by another request", http.StatusConflict)
}

func ErrWalletNotLinked() *AppError {
	return New(CodeWalletNotLinked, "User has no wallet address", http.StatusBadRequest)
}

func ErrUnsupportedToken() *AppError {
	return New(CodeUnsupportedToken, "Unsupported token", http.StatusBadRequest)
}

func ErrInvalidPayout(message string) *AppError {
	return New(CodeInvalidPayout, message, http.StatusBadRequest)
}

// ---- External services (EXT) ----

func ErrPaymentInitiationFailed(err error) *AppError {
	return Wrap(CodePaymentInitiationFailed, "Payment initiation failed", http.StatusBadGateway, err)
}

func ErrPayoutFailed(err error) *AppError {
	return Wrap(CodePayoutFailed, "Payout failed", http.StatusBadGateway, err)
}

func ErrLedgerFailure(err error) *AppError {
	return Wrap(CodeLedgerFailure, "Ledger request failed", http.StatusBadGateway, err)
}

func ErrTokenAccountCreationFailed(err error) *AppError {
	return Wrap(CodeTokenAccountCreationFailed, "Token account creation failed", http.StatusBadGateway, err)
}

func ErrMarketDataUnavailable(err error) *AppError {
	return Wrap(CodeMarketDataUnavailable, "Market data unavailable", http.StatusBadGateway, err)
}

// ---- Security (SEC) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Validation & System ----

// Validation rejects a malformed request before any state is touched.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
