package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/models"
)

var testHashKey = bytes.Repeat([]byte("k"), 32)

// fakeBackend поднимает тестовый бэкенд с управляемыми ответами
// /auth/login и /me.
type fakeBackend struct {
	srv     *httptest.Server
	profile models.UserProfile
	meFails bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		profile: models.UserProfile{ID: "u1", Email: "a@b.com", Name: "A", Role: models.RolePlayer},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "t1"})
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if fb.meFails {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(fb.profile)
	})
	fb.srv = httptest.NewServer(mux)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) store(secure bool) *Store {
	client := backend.NewClient(fb.srv.URL, fb.srv.Client())
	return NewStore(client, testHashKey, secure)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func TestLogin_SetsCookieAndResolvesProfile(t *testing.T) {
	fb := newFakeBackend(t)
	store := fb.store(false)

	rec := httptest.NewRecorder()
	sess, err := store.Login(context.Background(), rec, models.LoginInput{Email: "a@b.com", Name: "A", Role: "player"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if sess.Token != "t1" {
		t.Errorf("want token t1, got %q", sess.Token)
	}
	if !sess.Authenticated() || sess.Profile.ID != "u1" {
		t.Errorf("session must carry the profile fetched with the token, got %+v", sess.Profile)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("session cookie was not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != cookieMaxAge {
		t.Errorf("want cookie max-age %d, got %d", cookieMaxAge, cookie.MaxAge)
	}
}

func TestLogin_ProfileFailureLeavesNothingPersisted(t *testing.T) {
	fb := newFakeBackend(t)
	fb.meFails = true
	store := fb.store(false)

	rec := httptest.NewRecorder()
	_, err := store.Login(context.Background(), rec, models.LoginInput{Email: "a@b.com", Name: "A", Role: "player"})
	if err == nil {
		t.Fatal("expected error when profile fetch fails")
	}
	if !errors.Is(err, ErrAuthFailed) {
		t.Errorf("want ErrAuthFailed, got %v", err)
	}

	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Errorf("cause must stay reachable through the wrap, got %v", err)
	}

	if cookie := sessionCookie(t, rec); cookie != nil {
		t.Errorf("token must not be persisted without a profile, got cookie %q", cookie.Value)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	fb := newFakeBackend(t)
	store := fb.store(false)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		store.Logout(rec)
		cookie := sessionCookie(t, rec)
		if cookie == nil {
			t.Fatalf("logout %d: clearing cookie was not written", i)
		}
		if cookie.MaxAge >= 0 || cookie.Value != "" {
			t.Errorf("logout %d: cookie must be expired and empty, got max-age=%d value=%q", i, cookie.MaxAge, cookie.Value)
		}
	}
}

func TestFromRequest_RestoresSessionFromCookie(t *testing.T) {
	fb := newFakeBackend(t)
	store := fb.store(false)

	rec := httptest.NewRecorder()
	if _, err := store.Login(context.Background(), rec, models.LoginInput{Email: "a@b.com", Name: "A", Role: "player"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	sess := store.FromRequest(context.Background(), req)
	if !sess.Authenticated() {
		t.Fatal("session must be restored from a valid cookie")
	}
	if sess.Token != "t1" || sess.Profile.Role != models.RolePlayer {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestFromRequest_RefetchesProfileEveryRequest(t *testing.T) {
	fb := newFakeBackend(t)
	store := fb.store(false)

	rec := httptest.NewRecorder()
	if _, err := store.Login(context.Background(), rec, models.LoginInput{Email: "a@b.com", Name: "A", Role: "player"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if sess := store.FromRequest(context.Background(), req); sess.IsAdmin() {
		t.Fatalf("expected player session first, got %+v", sess.Profile)
	}

	// Бэкенд сменил роль — следующий запрос обязан это увидеть,
	// никакого кэширования профиля между запросами нет.
	fb.profile.Role = models.RoleAdmin

	sess := store.FromRequest(context.Background(), req)
	if !sess.IsAdmin() {
		t.Errorf("profile must be refetched per request, got %+v", sess.Profile)
	}
}

func TestFromRequest_FailuresYieldAnonymousSession(t *testing.T) {
	fb := newFakeBackend(t)
	store := fb.store(false)

	// Нет cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sess := store.FromRequest(context.Background(), req); sess.Authenticated() {
		t.Error("no cookie must mean anonymous")
	}

	// Подделанная cookie.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "tampered"})
	if sess := store.FromRequest(context.Background(), req); sess.Authenticated() {
		t.Error("tampered cookie must mean anonymous")
	}

	// Валидная cookie, но профиль больше не отдаётся.
	rec := httptest.NewRecorder()
	if _, err := store.Login(context.Background(), rec, models.LoginInput{Email: "a@b.com", Name: "A", Role: "player"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	fb.meFails = true
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, rec))
	sess := store.FromRequest(context.Background(), req)
	if sess.Authenticated() || sess.Token != "" {
		t.Errorf("token without profile must be anonymous, got %+v", sess)
	}
}
