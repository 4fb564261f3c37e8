package handlers

import (
	"net/http"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/middleware"
	"github.com/tennisclub/clubweb/models"
)

const defaultQuestion = "What drills improve my backhand?"

type AssistantHandler struct {
	client *backend.Client
}

func NewAssistantHandler(client *backend.Client) *AssistantHandler {
	return &AssistantHandler{client: client}
}

type assistantPageData struct {
	Role    string
	Message string
	Answer  string
	Error   string
}

// Page показывает форму одного вопроса ассистенту.
func (h *AssistantHandler) Page(w http.ResponseWriter, r *http.Request) {
	render(w, r, "assistant.html", assistantPageData{
		Role:    models.AssistantCoach,
		Message: defaultQuestion,
	})
}

// Ask задаёт вопрос и показывает ответ. История разговора не хранится:
// каждый вопрос — отдельный обмен.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	role := r.PostFormValue("role")
	if !models.ValidAssistantRole(role) {
		role = models.AssistantCoach
	}
	message := r.PostFormValue("message")

	data := assistantPageData{Role: role, Message: message}

	if message == "" {
		data.Error = "message is required"
		render(w, r, "assistant.html", data)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	answer, err := h.client.AIChat(r.Context(), models.ChatInput{Role: role, Message: message}, sess.Token)
	if err != nil {
		data.Error = errText(err)
		render(w, r, "assistant.html", data)
		return
	}

	data.Answer = answer
	render(w, r, "assistant.html", data)
}
