package models

import "time"

// Booking представляет бронирование корта текущим пользователем.
type Booking struct {
	ID        string    `json:"_id"`
	CourtID   string    `json:"court_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// BookingInput — тело запроса POST /bookings. Время окончания вычисляется
// на клиенте: начало плюс выбранная длительность.
type BookingInput struct {
	CourtID   string    `json:"court_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
