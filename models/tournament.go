package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date принимает обе формы дат бэкенда: полную RFC 3339 и короткую
// YYYY-MM-DD. Бэкенд отдаёт сохранённое значение как есть, поэтому
// после создания турнира из формы в списке приходит короткая форма.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported date format: %q", s)
}

// Tournament представляет турнир клуба.
type Tournament struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

// TournamentInput — тело запроса POST /admin/tournaments. Даты передаются
// строками в формате YYYY-MM-DD, как их отдаёт input type=date.
type TournamentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}
