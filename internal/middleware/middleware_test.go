package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.New(&logs)))
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Fatalf("expected generated request id, header=%q body=%q", generated, w.Body.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", logs.String(), err)
	}
	if entry["requestId"] != generated || entry["path"] != "/x" {
		t.Fatalf("unexpected log entry %v", entry)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("expected caller request id to be reused")
	}
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   dto.ErrorCode
	}{
		{fmt.Errorf("%w: S9", apperrors.ErrStudentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{fmt.Errorf("%w: XX", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{fmt.Errorf("%w: S1", apperrors.ErrDuplicateID), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.NewCustomError(apperrors.ErrCourseFull, "full"), http.StatusConflict, dto.ErrorCodeCourseFull},
		{apperrors.ErrNotRegistered, http.StatusConflict, dto.ErrorCodeNotRegistered},
		{apperrors.ErrAlreadyRegistered, http.StatusConflict, dto.ErrorCodeAlreadyRegistered},
		{apperrors.NewValidationError("student name cannot be empty"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			HandleAPIError(c, tc.err)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tc.code {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
		})
	}
}

func TestHandleAPIErrorIncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	err := apperrors.NewCustomError(apperrors.ErrCourseFull, "full").
		WithDetails(map[string]interface{}{"courseCode": "CS101"})
	HandleAPIError(c, err)

	var body struct {
		Error struct {
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Details["courseCode"] != "CS101" {
		t.Fatalf("expected details, got %s", w.Body.String())
	}
}

func TestHandleAPIErrorUsesAttachedCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	err := fmt.Errorf("register: %w", apperrors.NewCustomError(apperrors.ErrCourseFull, "course CS101 is full").WithCode("REG_101"))
	HandleAPIError(c, err)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "REG_101" {
		t.Fatalf("expected attached code, got %s", w.Body.String())
	}
}

func TestHandleAPIErrorValidationMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, apperrors.NewValidationError("student ID cannot be empty"))

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusBadRequest || resp.Error == nil || resp.Error.Message != "student ID cannot be empty" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
