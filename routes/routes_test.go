package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/handlers"
	"github.com/tennisclub/clubweb/session"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]struct{}{})
	}))
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, srv.Client())
	sessions := session.NewStore(client, bytes.Repeat([]byte("k"), 32), false)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		sessions,
		handlers.NewHomeHandler(client),
		handlers.NewAuthHandler(sessions),
		handlers.NewBookingHandler(client),
		handlers.NewTournamentHandler(client),
		handlers.NewPlayerHandler(client),
		handlers.NewAssistantHandler(client),
		handlers.NewAdminHandler(client),
		bytes.Repeat([]byte("c"), 32),
		false,
	)
	return router
}

func TestRouter_PagesRespond(t *testing.T) {
	router := newTestRouter(t)

	pages := []string{"/", "/login", "/book", "/tournaments", "/leaderboard", "/players", "/ai", "/admin"}
	for _, page := range pages {
		req := httptest.NewRequest(http.MethodGet, page, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: want 200, got %d", page, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("GET %s: want HTML response, got %q", page, ct)
		}
	}
}

func TestRouter_FormPostWithoutCSRFTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"email": {"a@b.com"}, "name": {"A"}, "role": {"player"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("POST without CSRF token: want 403, got %d", rec.Code)
	}
}
