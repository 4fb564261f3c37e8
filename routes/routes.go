package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/gorilla/csrf"

	"github.com/tennisclub/clubweb/handlers"
	"github.com/tennisclub/clubweb/middleware"
	"github.com/tennisclub/clubweb/session"
)

// SetupRoutes собирает таблицу маршрутов и общие middleware.
// Все POST-формы защищены CSRF-токеном; сессия подгружается на каждый
// запрос, но ни один маршрут не закрыт — авторизацию записей решает
// бэкенд, фронт только прячет админскую ссылку в навигации.
func SetupRoutes(
	router *chi.Mux,
	sessions *session.Store,
	homeHandler *handlers.HomeHandler,
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	tournamentHandler *handlers.TournamentHandler,
	playerHandler *handlers.PlayerHandler,
	assistantHandler *handlers.AssistantHandler,
	adminHandler *handlers.AdminHandler,
	csrfKey []byte,
	secure bool,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(csrf.Protect(csrfKey, csrf.Secure(secure), csrf.Path("/")))
	router.Use(middleware.SessionLoader(sessions))

	router.Handle("/assets/*", handlers.Assets())

	router.Get("/", homeHandler.Page)

	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Post("/logout", authHandler.Logout)

	router.Route("/book", func(r chi.Router) {
		r.Get("/", bookingHandler.Page)
		r.Post("/", bookingHandler.Create)
	})

	router.Get("/tournaments", tournamentHandler.Page)
	router.Get("/leaderboard", playerHandler.Leaderboard)
	router.Get("/players", playerHandler.Directory)

	router.Route("/ai", func(r chi.Router) {
		r.Get("/", assistantHandler.Page)
		r.Post("/", assistantHandler.Ask)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Get("/", adminHandler.Page)
		r.Post("/courts", adminHandler.CreateCourt)
		r.Post("/tournaments", adminHandler.CreateTournament)
	})
}
