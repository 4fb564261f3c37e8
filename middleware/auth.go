package middleware

import (
	"context"
	"net/http"

	"github.com/tennisclub/clubweb/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionLoader восстанавливает сессию из cookie и кладёт её в контекст
// запроса. Запросы не блокируются: без валидной сессии страницы
// рендерятся анонимно, проверки доступа делает сам бэкенд.
func SessionLoader(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.FromRequest(r.Context(), r)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext возвращает сессию текущего запроса. Если загрузчик
// не отработал, возвращается анонимная сессия.
func SessionFromContext(ctx context.Context) session.Session {
	sess, ok := ctx.Value(sessionContextKey).(session.Session)
	if !ok {
		return session.Session{}
	}
	return sess
}

// ContextWithSession кладёт сессию в контекст напрямую. Нужен тестам.
func ContextWithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
