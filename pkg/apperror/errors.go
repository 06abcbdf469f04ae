package apperror

import (
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
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Lifecycle & Validation (WAL) ----

func ErrNoWallet() *AppError {
	return New("WAL_001", "No wallet available", http.StatusPreconditionFailed)
}

func ErrInvalidPrivateKey() *AppError {
	return New("WAL_002", "Invalid private key", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_003", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrMissingAddress() *AppError {
	return New("WAL_004", "Destination address is required", http.StatusBadRequest)
}

func ErrUnknownAsset(symbol string) *AppError {
	return New("WAL_005", fmt.Sprintf("Unsupported asset %s", symbol), http.StatusBadRequest)
}

func ErrUnknownFiat(currency string) *AppError {
	return New("WAL_006", fmt.Sprintf("Unsupported fiat currency %s", currency), http.StatusBadRequest)
}

// Validation returns a WAL_003-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("WAL_003", message, http.StatusBadRequest)
}

// ---- Ledger Business Logic (LED) ----

func ErrInsufficientBalance(symbol string) *AppError {
	return New("LED_001", fmt.Sprintf("Insufficient %s balance", symbol), http.StatusPaymentRequired)
}

func ErrLimitExceeded(reason string) *AppError {
	return New("LED_002", reason, http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Collaborator Failures (EXT) ----

func ErrGatewayFailure(message string) *AppError {
	return New("EXT_001", message, http.StatusBadGateway)
}

func ErrOracleFailure(err error) *AppError {
	return Wrap("EXT_002", "Market data unavailable", http.StatusBadGateway, err)
}

func ErrVerificationFailure(err error) *AppError {
	return Wrap("EXT_003", "Verification service unavailable", http.StatusBadGateway, err)
}

// ---- Connectivity (CONN) ----

func ErrEndpointRejected(reason string) *AppError {
	return New("CONN_001", reason, http.StatusServiceUnavailable)
}

func ErrNetworkNotConfigured(network string) *AppError {
	return New("CONN_002", fmt.Sprintf("No RPC credentials configured for network %s", network), http.StatusServiceUnavailable)
}

func ErrTransferTimeout() *AppError {
	return New("CONN_003", "Transaction confirmation timed out", http.StatusGatewayTimeout)
}

func ErrBroadcastFailure(err error) *AppError {
	return Wrap("CONN_004", "Failed to broadcast transaction", http.StatusBadGateway, err)
}

func ErrNativeAssetOnly(network string) *AppError {
	return New("CONN_005", fmt.Sprintf("Only the native asset of %s can be transferred on-chain", network), http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired session token", http.StatusUnauthorized)
}

func ErrSessionMismatch() *AppError {
	return New("AUTH_002", "Session does not match the active wallet", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrSnapshotError(err error) *AppError {
	return Wrap("SYS_002", "Snapshot store failure", http.StatusInternalServerError, err)
}
