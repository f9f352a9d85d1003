package errors

import (
	"net/http"

	"encontro/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// Account-related errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"E-mail já cadastrado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"Conta desativada",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	// Token-related errors
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Token de acesso necessário",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expirado",
		"",
	)

	ErrTokenWrongScope = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_WRONG_SCOPE",
		"Token não é válido para este recurso",
		"",
	)

	ErrSuperAdminRequired = NewBaseError(
		http.StatusForbidden,
		"SUPER_ADMIN_REQUIRED",
		"Acesso negado. Apenas super administradores podem executar esta ação",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"PEDIDO_NOT_FOUND",
		"Pedido não encontrado",
		"",
	)

	ErrOrderDeadlinePassed = NewBaseError(
		http.StatusBadRequest,
		"PRAZO_ENCERRADO",
		"Prazo para compra de camisas encerrado",
		"",
	)

	ErrPendingOrderExists = NewBaseError(
		http.StatusConflict,
		"PEDIDO_PENDENTE_EXISTS",
		"Você já possui um pedido pendente",
		"",
	)

	ErrOrderNotPending = NewBaseError(
		http.StatusBadRequest,
		"PEDIDO_NOT_PENDENTE",
		"Apenas pedidos pendentes podem ser alterados",
		"",
	)

	ErrOrderTotalMismatch = NewBaseError(
		http.StatusBadRequest,
		"VALOR_TOTAL_INCORRETO",
		"Valor total incorreto",
		"",
	)

	ErrNoShirtRequired = NewBaseError(
		http.StatusBadRequest,
		"CAMISA_NAO_NECESSARIA",
		"Crianças menores de 6 anos não precisam de camisa",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAGAMENTO_NOT_FOUND",
		"Pagamento não encontrado",
		"",
	)

	ErrPaymentAlreadyProcessed = NewBaseError(
		http.StatusConflict,
		"PAGAMENTO_ALREADY_PROCESSED",
		"Pagamento já foi processado",
		"",
	)

	ErrPaymentAmountMismatch = NewBaseError(
		http.StatusBadRequest,
		"VALOR_PAGAMENTO_INCORRETO",
		"Valor do pagamento não confere com o pedido",
		"",
	)

	ErrReceiptNotPix = NewBaseError(
		http.StatusBadRequest,
		"COMPROVANTE_ONLY_PIX",
		"Upload de comprovante só é necessário para PIX",
		"",
	)

	ErrReceiptBadFormat = NewBaseError(
		http.StatusBadRequest,
		"COMPROVANTE_BAD_FORMAT",
		"Formato de arquivo não permitido",
		"",
	)

	// Reservation-related errors
	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVA_NOT_FOUND",
		"Reserva não encontrada",
		"",
	)

	ErrReservationExists = NewBaseError(
		http.StatusConflict,
		"RESERVA_EXISTS",
		"Você já possui uma reserva ativa",
		"",
	)

	ErrTableNotFound = NewBaseError(
		http.StatusNotFound,
		"MESA_NOT_FOUND",
		"Mesa não encontrada",
		"",
	)

	ErrTableAlreadyReserved = NewBaseError(
		http.StatusConflict,
		"MESA_RESERVADA",
		"Mesa já está reservada",
		"",
	)

	ErrTableDataMismatch = NewBaseError(
		http.StatusBadRequest,
		"MESA_DADOS_INVALIDOS",
		"Dados da mesa não conferem",
		"",
	)

	ErrReservationNotActive = NewBaseError(
		http.StatusBadRequest,
		"RESERVA_NOT_CONFIRMADA",
		"Apenas reservas confirmadas podem ser canceladas",
		"",
	)

	// Admin-related errors
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Administrador não encontrado",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno do servidor"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
