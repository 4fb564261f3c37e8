package handlers

import (
	"net/http"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/models"
)

type TournamentHandler struct {
	client *backend.Client
}

func NewTournamentHandler(client *backend.Client) *TournamentHandler {
	return &TournamentHandler{client: client}
}

type tournamentsPageData struct {
	Tournaments []models.Tournament
	Error       string
}

// Page показывает список турниров. Страница только для чтения.
func (h *TournamentHandler) Page(w http.ResponseWriter, r *http.Request) {
	data := tournamentsPageData{}

	tournaments, err := h.client.ListTournaments(r.Context())
	if err != nil {
		data.Error = errText(err)
		render(w, r, "tournaments.html", data)
		return
	}

	data.Tournaments = tournaments
	render(w, r, "tournaments.html", data)
}
