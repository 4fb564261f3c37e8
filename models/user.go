package models

// Роли пользователей, которые выдаёт бэкенд.
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// UserProfile представляет профиль пользователя, полученный по токену.
type UserProfile struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginInput — тело запроса POST /auth/login.
type LoginInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func ValidRole(role string) bool {
	return role == RolePlayer || role == RoleAdmin
}
