package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFieldErrorsMessage(t *testing.T) {
	fe := FieldErrors{"title": "is required", "content": "is required"}
	want := "{content: is required, title: is required}"
	if got := fe.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestJSONErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("board 3: %w", ErrNotFound), http.StatusNotFound},
		{FieldErrors{"title": "is required"}, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		JSONError(c, tc.err)

		if w.Code != tc.status {
			t.Errorf("JSONError(%v): status %d, want %d", tc.err, w.Code, tc.status)
		}

		var resp Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid envelope for %v: %v", tc.err, err)
		}
		if resp.Code != -1 {
			t.Errorf("JSONError(%v): code %d, want -1", tc.err, resp.Code)
		}
	}
}

func TestRedirectCarriesMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/boards", nil)

	Redirect(c, "/boards", "board created")
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusFound {
		t.Fatalf("status %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/boards?msg=board+created" {
		t.Fatalf("Location = %q", loc)
	}
}
