package handlers

import (
	"net/http"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/models"
)

type PlayerHandler struct {
	client *backend.Client
}

func NewPlayerHandler(client *backend.Client) *PlayerHandler {
	return &PlayerHandler{client: client}
}

// rankedPlayer — строка рейтинга. Место считается исключительно от
// порядка ответа бэкенда, поле rating на него не влияет.
type rankedPlayer struct {
	Rank int
	models.PlayerSummary
}

func rankPlayers(players []models.PlayerSummary) []rankedPlayer {
	ranked := make([]rankedPlayer, len(players))
	for i, p := range players {
		ranked[i] = rankedPlayer{Rank: i + 1, PlayerSummary: p}
	}
	return ranked
}

type leaderboardPageData struct {
	Rows   []rankedPlayer
	Level  string
	Levels []string
	Error  string
}

// Leaderboard показывает рейтинг с необязательным фильтром по уровню.
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	if level != "" && !models.ValidLevel(level) {
		level = ""
	}

	data := leaderboardPageData{Level: level, Levels: models.Levels}

	players, err := h.client.Leaderboard(r.Context(), backend.LeaderboardFilter{Level: level})
	if err != nil {
		data.Error = errText(err)
		render(w, r, "leaderboard.html", data)
		return
	}

	data.Rows = rankPlayers(players)
	render(w, r, "leaderboard.html", data)
}

type playersPageData struct {
	Players []models.PlayerSummary
	Query   string
	Level   string
	Levels  []string
	Error   string
}

// Directory показывает каталог игроков с поиском по имени.
func (h *PlayerHandler) Directory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	level := r.URL.Query().Get("level")
	if level != "" && !models.ValidLevel(level) {
		level = ""
	}

	data := playersPageData{Query: query, Level: level, Levels: models.Levels}

	players, err := h.client.Players(r.Context(), backend.PlayerFilter{Query: query, Level: level})
	if err != nil {
		data.Error = errText(err)
		render(w, r, "players.html", data)
		return
	}

	data.Players = players
	render(w, r, "players.html", data)
}
