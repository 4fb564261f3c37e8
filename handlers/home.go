package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/models"
)

const homeTopPlayers = 5

type HomeHandler struct {
	client *backend.Client
}

func NewHomeHandler(client *backend.Client) *HomeHandler {
	return &HomeHandler{client: client}
}

type homePageData struct {
	Tournaments []models.Tournament
	TopPlayers  []rankedPlayer
	Error       string
}

// Page — главная: ближайшие турниры и верхушка рейтинга, оба запроса
// идут к бэкенду параллельно.
func (h *HomeHandler) Page(w http.ResponseWriter, r *http.Request) {
	var (
		tournaments []models.Tournament
		players     []models.PlayerSummary
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		tournaments, err = h.client.ListTournaments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = h.client.Leaderboard(ctx, backend.LeaderboardFilter{Limit: homeTopPlayers})
		return err
	})

	data := homePageData{}
	if err := g.Wait(); err != nil {
		data.Error = errText(err)
		render(w, r, "home.html", data)
		return
	}

	data.Tournaments = tournaments
	data.TopPlayers = rankPlayers(players)
	render(w, r, "home.html", data)
}
