package models

// Роли ИИ-ассистента, которые понимает бэкенд.
const (
	AssistantCoach = "coach"
	AssistantClub  = "club"
)

// ChatInput — тело запроса POST /ai/chat. Токен передаётся в теле,
// а не в query-параметре — так устроен этот эндпоинт бэкенда.
type ChatInput struct {
	Role    string `json:"role"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
	Token   string `json:"token,omitempty"`
}

// ChatAnswer — ответ ассистента на один вопрос.
type ChatAnswer struct {
	Answer string `json:"answer"`
}

func ValidAssistantRole(role string) bool {
	return role == AssistantCoach || role == AssistantClub
}
