package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/models"
)

// ErrAuthFailed возвращается, когда логин или запрос профиля не удался.
var ErrAuthFailed = errors.New("authentication failed")

const (
	cookieName   = "club_session"
	cookieMaxAge = 30 * 24 * 60 * 60 // 30 дней
)

// Session — токен и профиль текущего посетителя. Анонимная сессия
// отличается отсутствием профиля: токен без профиля прав не даёт.
type Session struct {
	Token   string
	Profile *models.UserProfile
}

func (s Session) Authenticated() bool {
	return s.Profile != nil
}

func (s Session) IsAdmin() bool {
	return s.Profile != nil && s.Profile.Role == models.RoleAdmin
}

// Store владеет жизненным циклом аутентификации: логин, логаут и
// восстановление сессии из cookie. Токен хранится в подписанной cookie
// под одним фиксированным именем.
type Store struct {
	client *backend.Client
	codec  *securecookie.SecureCookie
	secure bool
}

func NewStore(client *backend.Client, hashKey []byte, secure bool) *Store {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(cookieMaxAge)
	return &Store{
		client: client,
		codec:  codec,
		secure: secure,
	}
}

// Login обменивает данные формы на токен, запрашивает профиль этим же
// токеном и только после успеха обоих вызовов пишет cookie. Токен без
// разрешившегося профиля не сохраняется никогда: иначе посетитель
// застрянет в состоянии «вроде вошёл, но профиля нет».
func (s *Store) Login(ctx context.Context, w http.ResponseWriter, input models.LoginInput) (Session, error) {
	token, err := s.client.Login(ctx, input)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	profile, err := s.client.Me(ctx, token)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	encoded, err := s.codec.Encode(cookieName, token)
	if err != nil {
		return Session{}, fmt.Errorf("failed to encode session cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return Session{Token: token, Profile: profile}, nil
}

// Logout стирает cookie. Идемпотентен: повторный вызов для анонимного
// посетителя просто перезапишет уже истёкшую cookie.
func (s *Store) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest восстанавливает сессию из cookie запроса. Профиль
// запрашивается заново на каждый запрос: профиль никогда не
// переживает смену токена. Любая ошибка — испорченная cookie,
// недоступный бэкенд, отозванный токен — даёт анонимную сессию.
func (s *Store) FromRequest(ctx context.Context, r *http.Request) Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	var token string
	if err := s.codec.Decode(cookieName, cookie.Value, &token); err != nil {
		return Session{}
	}

	profile, err := s.client.Me(ctx, token)
	if err != nil {
		return Session{}
	}
	return Session{Token: token, Profile: profile}
}
