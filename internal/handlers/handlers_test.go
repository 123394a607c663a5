package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testTime = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

type errorBody struct {
	Title      string                 `json:"title"`
	Status     int                    `json:"status"`
	Violations []validation.Violation `json:"violations"`
}

// crudRoutes registers the standard route set the router uses in
// production, so tests exercise the same paths.
func crudRoutes(g *gin.RouterGroup, count, list, get, create, update, del gin.HandlerFunc) {
	g.GET("/count", count)
	g.GET("", list)
	g.GET("/:id", get)
	g.POST("", create)
	g.PUT("/:id", update)
	g.DELETE("/:id", del)
}

func perform(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// checkError asserts the uniform error body: status, title, and the
// exact violation set regardless of order.
func checkError(t *testing.T, w *httptest.ResponseRecorder, status int, want ...validation.Violation) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("code=%d want=%d body=%s", w.Code, status, w.Body.String())
	}
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	if body.Title != "Constraint Violation" || body.Status != status {
		t.Fatalf("body=%+v", body)
	}
	if len(body.Violations) != len(want) {
		t.Fatalf("violations=%v want=%v", body.Violations, want)
	}
	for _, w := range want {
		found := false
		for _, g := range body.Violations {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing violation %+v in %v", w, body.Violations)
		}
	}
}

func violation(field, message string) validation.Violation {
	return validation.Violation{Field: field, Message: message}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}
