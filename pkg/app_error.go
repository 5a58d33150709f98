package pkg

import (
	"errors"
	"net/http"

	"repairdesk/internal/domain/errs"
)

// AppError is what handlers render. Code is a stable machine-readable string,
// Message is safe to show a client, Err keeps the cause for logs only.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON envelope of every error response.
type HTTPError struct {
	Code    string `json:"code" example:"INVALID_TRANSITION"`
	Message string `json:"message" example:"ticket: INVALID_TRANSITION: cannot move from INTAKE to READY"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:        http.StatusBadRequest,
	errs.KindNotFound:          http.StatusNotFound,
	errs.KindInvalidTransition: http.StatusConflict,
	errs.KindAlreadyConverted:  http.StatusConflict,
	errs.KindClaimInProgress:   http.StatusConflict,
	errs.KindConflict:          http.StatusConflict,
	errs.KindExceedsBalance:    http.StatusUnprocessableEntity,
	errs.KindWarrantyExpired:   http.StatusUnprocessableEntity,
	errs.KindNotEligible:       http.StatusUnprocessableEntity,
	errs.KindExpired:           http.StatusUnprocessableEntity,
}

// HTTPStatus maps a domain error kind to its status code. Errors outside the
// taxonomy are internal.
func HTTPStatus(kind errs.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// FromError wraps err for rendering. A *AppError passes through untouched; a
// typed domain error keeps its kind as the code and its text as the message;
// anything else becomes an opaque INTERNAL_ERROR.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		return NewDomainError(string(domainErr.Kind), domainErr.Error(), err, HTTPStatus(domainErr.Kind))
	}
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
