package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ramp-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if requestID != "" {
		c.Set(RequestIDKey, requestID)
	}
	return c, w
}

func TestSuccessEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		write  func(*gin.Context, interface{})
		status int
	}{
		{"ok", OK, http.StatusOK},
		{"created", Created, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("req-1")
			tt.write(c, map[string]string{"status": "SETTLED"})

			assert.Equal(t, tt.status, w.Code)
			var resp SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "req-1", resp.RequestID)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Equal(t, "SETTLED", resp.Data.(map[string]interface{})["status"])
		})
	}
}

func TestOK_GeneratesRequestID_WhenMissing(t *testing.T) {
	c, w := newContext("")
	OK(c, nil)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.RequestID, 36)
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantCause  bool
	}{
		{
			name:       "client error",
			err:        apperror.ErrConcurrentModification(),
			wantStatus: http.StatusConflict,
			wantCode:   apperror.CodeConcurrentModification,
			wantMsg:    "Transaction was modified by another request",
		},
		{
			name:       "wrapped upstream failure",
			err:        fmt.Errorf("outer: %w", apperror.ErrPayoutFailed(errors.New("paybox down"))),
			wantStatus: http.StatusBadGateway,
			wantCode:   apperror.CodePayoutFailed,
			wantCause:  true,
		},
		{
			name:       "plain error",
			err:        errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperror.CodeInternal,
			wantMsg:    "Internal server error",
			wantCause:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("req-2")
			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			assert.Equal(t, "req-2", resp.RequestID)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error)
			}

			assert.NotContains(t, w.Body.String(), "paybox down")
			if tt.wantCause {
				require.Len(t, c.Errors, 1)
				assert.ErrorIs(t, c.Errors.Last().Err, tt.err)
			} else {
				assert.Empty(t, c.Errors)
			}
		})
	}
}
