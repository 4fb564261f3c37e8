package handlers

import (
	"errors"
	"net/http"

	"github.com/tennisclub/clubweb/models"
	"github.com/tennisclub/clubweb/session"
)

type AuthHandler struct {
	sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginPageData struct {
	Email string
	Name  string
	Role  string
	Error string
}

// LoginPage показывает форму входа с теми же значениями по умолчанию,
// что и раньше: так удобно заходить демо-пользователем.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", loginPageData{
		Email: "player@example.com",
		Name:  "Player One",
		Role:  models.RolePlayer,
	})
}

// Login обрабатывает отправку формы входа. При ошибке форма
// перерисовывается с введёнными значениями и текстом ошибки.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	input := models.LoginInput{
		Email: r.PostFormValue("email"),
		Name:  r.PostFormValue("name"),
		Role:  r.PostFormValue("role"),
	}
	if !models.ValidRole(input.Role) {
		input.Role = models.RolePlayer
	}

	data := loginPageData{Email: input.Email, Name: input.Name, Role: input.Role}

	if input.Email == "" || input.Name == "" {
		data.Error = "email and name are required"
		render(w, r, "login.html", data)
		return
	}

	if _, err := h.sessions.Login(r.Context(), w, input); err != nil {
		if errors.Is(err, session.ErrAuthFailed) {
			data.Error = errText(err)
			render(w, r, "login.html", data)
			return
		}
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout стирает сессию и возвращает на главную. Идемпотентен.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
