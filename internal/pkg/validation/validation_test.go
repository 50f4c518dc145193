package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type registerBody struct {
	CourseCode string `json:"courseCode" binding:"required,max=5"`
}

func bindBody(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst registerBody
	return BindJSON(c, &dst)
}

func TestBindJSONUsesJSONFieldNames(t *testing.T) {
	fields := bindBody(t, `{}`)
	msg, ok := fields["courseCode"]
	if !ok {
		t.Fatalf("expected courseCode error, got %v", fields)
	}
	if !strings.Contains(msg, "required") {
		t.Fatalf("expected translated required message, got %q", msg)
	}
}

func TestBindJSONMaxLength(t *testing.T) {
	fields := bindBody(t, `{"courseCode":"TOOLONG"}`)
	if _, ok := fields["courseCode"]; !ok {
		t.Fatalf("expected courseCode error, got %v", fields)
	}
}

func TestBindJSONAcceptsValidBody(t *testing.T) {
	if fields := bindBody(t, `{"courseCode":"CS101"}`); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}
}

func TestTranslateErrorsNonValidation(t *testing.T) {
	fields := TranslateErrors(errors.New("unexpected EOF"))
	if fields["detail"] != "unexpected EOF" {
		t.Fatalf("unexpected %v", fields)
	}
}
