package models

// Уровни игроков, используемые фильтрами рейтинга и каталога.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelPro          = "pro"
)

// Levels перечисляет уровни в порядке отображения в фильтрах.
var Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelPro}

// PlayerSummary — строка рейтинга и каталога игроков. Обе страницы
// используют одну и ту же форму ответа.
type PlayerSummary struct {
	ID     string  `json:"_id"`
	Name   string  `json:"name"`
	Level  string  `json:"level"`
	Rating float64 `json:"rating"`
}

func ValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}
