package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/tennisclub/clubweb/middleware"
	"github.com/tennisclub/clubweb/models"
)

//go:embed templates
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Assets отдаёт встроенные статические файлы (маршрут /assets/*).
func Assets() http.Handler {
	return http.FileServer(http.FS(assetsFS))
}

// mdRenderer настроен на безопасный вывод: сырой HTML в markdown
// экранируется, WithUnsafe не включён.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// render собирает layout с шаблоном страницы и пишет результат.
// FuncMap замыкается на запрос: сессия и CSRF-токен живут в нём.
func render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	sess := middleware.SessionFromContext(r.Context())

	name := ""
	role := ""
	if sess.Authenticated() {
		name = sess.Profile.Name
		role = sess.Profile.Role
	}

	funcMap := template.FuncMap{
		"isLoggedIn":  func() bool { return sess.Authenticated() },
		"isAdmin":     func() bool { return sess.IsAdmin() },
		"currentName": func() string { return name },
		"currentRole": func() string { return role },
		"csrfField":   func() template.HTML { return csrf.TemplateField(r) },
		"fmtDateTime": func(t time.Time) string { return t.Format("Mon, 2 Jan 2006 15:04") },
		"fmtDate":     func(d models.Date) string { return d.Format("2 Jan 2006") },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS,
		"templates/layout.html", "templates/"+page)
	if err != nil {
		internalError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// internalError логирует настоящую ошибку и отдаёт клиенту общий текст.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", slog.Any("error", err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// errText приводит ошибку к строке для показа на странице.
func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
