package models

// Покрытия кортов, соответствующие ENUM на бэкенде.
const (
	SurfaceHard   = "hard"
	SurfaceClay   = "clay"
	SurfaceGrass  = "grass"
	SurfaceCarpet = "carpet"
)

// Surfaces перечисляет допустимые покрытия в порядке отображения в формах.
var Surfaces = []string{SurfaceHard, SurfaceClay, SurfaceGrass, SurfaceCarpet}

// Court представляет корт клуба.
type Court struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Surface string `json:"surface"`
	Indoor  bool   `json:"indoor"`
}

// CourtInput — тело запроса POST /admin/courts.
type CourtInput struct {
	Name    string `json:"name"`
	Surface string `json:"surface"`
	Indoor  bool   `json:"indoor"`
}

func ValidSurface(surface string) bool {
	for _, s := range Surfaces {
		if s == surface {
			return true
		}
	}
	return false
}
