package board

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogapp/internal/app/session"
	"blogapp/internal/app/user"
	"blogapp/internal/middleware"
	"blogapp/internal/web"

	"github.com/gin-gonic/gin"
)

type fakeSessionService struct {
	users map[string]*user.User
}

func (f *fakeSessionService) IssueSession(userID uint64) (*session.Session, error) {
	panic("not used")
}

func (f *fakeSessionService) GetUserBySessionKey(ctx context.Context, sessionKey string) (*user.User, error) {
	u, ok := f.users[sessionKey]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return u, nil
}

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := &fakeSessionService{users: map[string]*user.User{
		"key-a": userA,
		"key-b": userB,
	}}

	engine := gin.New()
	api := engine.Group("/api")
	api.Use(middleware.IdentityMiddleware(sessions))
	RegisterRoutes(api, NewHandler(newTestService(repo)))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, sessionKey string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sessionKey != "" {
		req.Header.Set("X-Session-Key", sessionKey)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) web.Response {
	t.Helper()
	var resp web.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestDeleteBoardEndpoint(t *testing.T) {
	repo := newFakeRepository()
	seedBoard(repo, 3, userA.ID)
	engine := newTestRouter(repo)

	// No session: unauthenticated.
	w := doJSON(t, engine, http.MethodDelete, "/api/boards/3", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}

	// Wrong user: forbidden, board untouched.
	w = doJSON(t, engine, http.MethodDelete, "/api/boards/3", "key-b", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", w.Code)
	}
	if _, ok := repo.boards[3]; !ok {
		t.Fatal("board deleted by non-owner")
	}

	// Owner: success envelope with code 1 and no data.
	w = doJSON(t, engine, http.MethodDelete, "/api/boards/3", "key-a", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	resp := envelope(t, w)
	if resp.Code != 1 || resp.Data != nil {
		t.Fatalf("envelope = %+v, want code 1 with nil data", resp)
	}
}

func TestUpdateBoardEndpointFieldErrors(t *testing.T) {
	repo := newFakeRepository()
	seedBoard(repo, 3, userA.ID)
	engine := newTestRouter(repo)

	w := doJSON(t, engine, http.MethodPut, "/api/boards/3", "key-a", `{"title":"ab","content":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	resp := envelope(t, w)
	if resp.Code != -1 {
		t.Fatalf("envelope code %d, want -1", resp.Code)
	}
	fields, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected field map in data, got %T", resp.Data)
	}
	if _, ok := fields["title"]; !ok {
		t.Fatalf("expected title error, got %v", fields)
	}
}

func TestUpdateBoardEndpointSuccess(t *testing.T) {
	repo := newFakeRepository()
	seedBoard(repo, 3, userA.ID)
	engine := newTestRouter(repo)

	w := doJSON(t, engine, http.MethodPut, "/api/boards/3", "key-a", `{"title":"edited","content":"edited body"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}
	if resp := envelope(t, w); resp.Code != 1 {
		t.Fatalf("envelope code %d, want 1", resp.Code)
	}
	if repo.boards[3].Title != "edited" {
		t.Fatalf("board not updated: %+v", repo.boards[3])
	}
}

func TestCreateBoardEndpointRedirects(t *testing.T) {
	repo := newFakeRepository()
	engine := newTestRouter(repo)

	form := url.Values{"title": {"hello"}, "content": {"<p>body</p>"}}

	// Unauthenticated: off to login.
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Fatalf("Location = %q, want /login target", loc)
	}

	// Authenticated: created and sent back to the listing.
	req = httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-Key", "key-a")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/boards") {
		t.Fatalf("Location = %q, want /boards target", loc)
	}

	if len(repo.boards) != 1 {
		t.Fatalf("expected one board, got %d", len(repo.boards))
	}
	for _, b := range repo.boards {
		if b.Content != "body" {
			t.Fatalf("paragraph markup not stripped: %q", b.Content)
		}
		if b.UserID != userA.ID {
			t.Fatalf("owner %d, want %d", b.UserID, userA.ID)
		}
	}
}

func TestListBoardsEndpoint(t *testing.T) {
	repo := newFakeRepository()
	for id := uint64(1); id <= 5; id++ {
		seedBoard(repo, id, userA.ID)
	}
	engine := newTestRouter(repo)

	w := doJSON(t, engine, http.MethodGet, "/api/boards?page=1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var p Page
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("invalid page payload: %v", err)
	}
	if len(p.Boards) != 2 || p.Boards[0].ID != 2 || p.Boards[1].ID != 1 {
		t.Fatalf("unexpected page 1: %+v", p.Boards)
	}
	if !p.HasPrev || p.HasNext {
		t.Fatalf("pagination flags wrong: %+v", p)
	}
}

func TestGetBoardEndpointNotFound(t *testing.T) {
	repo := newFakeRepository()
	engine := newTestRouter(repo)

	w := doJSON(t, engine, http.MethodGet, "/api/boards/42", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}
