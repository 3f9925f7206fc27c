package response

import (
	"errors"
	"net/http"
	"time"

	"ramp-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request id middleware writes.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Upstream causes never
// appear here; they are attached to the gin context for the request log.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, data)
}

func write(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

// Error maps err to its AppError status and code; anything else is a 500.
// Server-side failures (5xx) are recorded with c.Error so the request logger
// can report the provider or ledger cause next to the request id.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := ErrorResponse{
		Error:     "Internal server error",
		ErrorCode: apperror.CodeInternal,
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		body.Error = appErr.Message
		body.ErrorCode = appErr.Code
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	body.RequestID = requestID(c)
	body.Timestamp = now()
	c.JSON(status, body)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
