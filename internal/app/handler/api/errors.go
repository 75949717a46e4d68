package api

import (
	"context"
	"errors"
	"net/http"

	"warp_ships/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	ErrorCode    string `json:"error_code,omitempty"`
}

// StatusClientClosedRequest is the nginx convention for a client that went
// away before the response was ready.
const StatusClientClosedRequest = 499

// AppError is a rejection ready to be written to the client. Err is the
// cause and is only logged.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) withCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

var (
	ErrBodyParse        = &AppError{Status: http.StatusBadRequest, Code: "BODY_PARSE_ERROR", Message: "invalid body"}
	ErrInvalidID        = &AppError{Status: http.StatusBadRequest, Code: "INVALID_ID", Message: "invalid ship id"}
	ErrNotFound         = &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "ship not found"}
	ErrDB               = &AppError{Status: http.StatusInternalServerError, Code: "DB_ERROR", Message: "something in the DB didn't work"}
	ErrUnknown          = &AppError{Status: http.StatusInternalServerError, Code: "UNKNOWN", Message: "service crashed"}
	ErrTimeout          = &AppError{Status: http.StatusGatewayTimeout, Code: "TIMEOUT", Message: "request timed out"}
	ErrCanceled         = &AppError{Status: StatusClientClosedRequest, Code: "CANCELED", Message: "request canceled"}
	ErrRouteNotFound    = &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "route not found"}
	ErrMethodNotAllowed = &AppError{Status: http.StatusMethodNotAllowed, Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"}
)

// FromServiceError maps a service failure to its rejection.
func FromServiceError(err error) *AppError {
	var svcErr *service.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout.withCause(err)
	case errors.Is(err, context.Canceled):
		return ErrCanceled.withCause(err)
	case errors.As(err, &svcErr):
		switch svcErr.Kind {
		case service.KindNotFound:
			return ErrNotFound.withCause(err)
		case service.KindDBError:
			return ErrDB.withCause(err)
		default:
			return ErrUnknown.withCause(err)
		}
	default:
		return ErrUnknown.withCause(err)
	}
}

// Reject logs the cause and writes the JSON error body.
func Reject(c *gin.Context, appErr *AppError) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"code":       appErr.Code,
		"status":     appErr.Status,
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	if appErr.Status >= http.StatusInternalServerError {
		entry.Error(appErr.Message)
	} else {
		entry.Warn(appErr.Message)
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorResponse{
		ErrorMessage: appErr.Message,
		ErrorCode:    appErr.Code,
	})
}
