package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/middleware"
	"github.com/tennisclub/clubweb/models"
)

type AdminHandler struct {
	client *backend.Client
}

func NewAdminHandler(client *backend.Client) *AdminHandler {
	return &AdminHandler{client: client}
}

type adminPageData struct {
	Courts      []models.Court
	Tournaments []models.Tournament
	Surfaces    []string
	Error       string
}

// Page — админская панель: создание кортов и турниров с текущими
// списками обоих. Ссылку на страницу видят только админы, но сам
// доступ не ограничен: неавторизованные записи отклонит бэкенд.
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

func (h *AdminHandler) renderPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	var (
		courts      []models.Court
		tournaments []models.Tournament
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		courts, err = h.client.ListCourts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tournaments, err = h.client.ListTournaments(ctx)
		return err
	})

	data := adminPageData{Surfaces: models.Surfaces, Error: errMsg}
	if err := g.Wait(); err != nil {
		if data.Error == "" {
			data.Error = errText(err)
		}
		render(w, r, "admin.html", data)
		return
	}

	data.Courts = courts
	data.Tournaments = tournaments
	render(w, r, "admin.html", data)
}

// CreateCourt добавляет корт и возвращает на панель, где список
// перечитывается заново.
func (h *AdminHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if !sess.Authenticated() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	input := models.CourtInput{
		Name:    r.PostFormValue("name"),
		Surface: r.PostFormValue("surface"),
		Indoor:  r.PostFormValue("indoor") != "",
	}
	if input.Name == "" {
		h.renderPage(w, r, "court name is required")
		return
	}
	if !models.ValidSurface(input.Surface) {
		h.renderPage(w, r, "unknown court surface")
		return
	}

	if _, err := h.client.CreateCourt(r.Context(), input, sess.Token); err != nil {
		h.renderPage(w, r, errText(err))
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CreateTournament добавляет турнир и возвращает на панель.
func (h *AdminHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if !sess.Authenticated() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	input := models.TournamentInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		StartDate:   r.PostFormValue("start_date"),
		EndDate:     r.PostFormValue("end_date"),
	}
	if input.Title == "" || input.StartDate == "" || input.EndDate == "" {
		h.renderPage(w, r, "title, start date and end date are required")
		return
	}

	if _, err := h.client.CreateTournament(r.Context(), input, sess.Token); err != nil {
		h.renderPage(w, r, errText(err))
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
