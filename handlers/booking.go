package handlers

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/middleware"
	"github.com/tennisclub/clubweb/models"
)

// datetimeLocal — формат значения input type=datetime-local.
const datetimeLocal = "2006-01-02T15:04"

// durations — варианты длительности бронирования в минутах.
var durations = []int{60, 90, 120}

type BookingHandler struct {
	client *backend.Client
}

func NewBookingHandler(client *backend.Client) *BookingHandler {
	return &BookingHandler{client: client}
}

type bookingPageData struct {
	Courts    []models.Court
	Mine      []models.Booking
	When      string
	Durations []int
	Error     string
}

// Page показывает форму бронирования и список своих бронирований.
// Корты и бронирования запрашиваются параллельно; бронирования
// доступны только владельцу токена.
func (h *BookingHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

func (h *BookingHandler) renderPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	sess := middleware.SessionFromContext(r.Context())

	var (
		courts []models.Court
		mine   []models.Booking
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		courts, err = h.client.ListCourts(ctx)
		return err
	})
	if sess.Authenticated() {
		g.Go(func() error {
			var err error
			mine, err = h.client.MyBookings(ctx, sess.Token)
			return err
		})
	}

	data := bookingPageData{
		When:      time.Now().Format(datetimeLocal),
		Durations: durations,
		Error:     errMsg,
	}
	if err := g.Wait(); err != nil {
		if data.Error == "" {
			data.Error = errText(err)
		}
		render(w, r, "bookings.html", data)
		return
	}

	data.Courts = courts
	data.Mine = mine
	render(w, r, "bookings.html", data)
}

// Create бронирует корт и возвращает на страницу бронирований, где
// список перечитывается заново — никаких оптимистичных обновлений.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if !sess.Authenticated() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	start, err := time.ParseInLocation(datetimeLocal, r.PostFormValue("when"), time.Local)
	if err != nil {
		h.renderPage(w, r, "start time is required")
		return
	}

	minutes, err := strconv.Atoi(r.PostFormValue("duration"))
	if err != nil || !validDuration(minutes) {
		h.renderPage(w, r, "duration must be 60, 90 or 120 minutes")
		return
	}

	courtID := r.PostFormValue("court_id")
	if courtID == "" {
		// Корт не выбран — берём первый из списка, как делает форма.
		courts, err := h.client.ListCourts(r.Context())
		if err != nil {
			h.renderPage(w, r, errText(err))
			return
		}
		if len(courts) == 0 {
			h.renderPage(w, r, "no courts available")
			return
		}
		courtID = courts[0].ID
	}

	input := models.BookingInput{
		CourtID:   courtID,
		StartTime: start,
		EndTime:   bookingEnd(start, minutes),
	}
	if _, err := h.client.CreateBooking(r.Context(), input, sess.Token); err != nil {
		h.renderPage(w, r, errText(err))
		return
	}

	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

// bookingEnd возвращает ровно start + minutes.
func bookingEnd(start time.Time, minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}

func validDuration(minutes int) bool {
	for _, d := range durations {
		if d == minutes {
			return true
		}
	}
	return false
}
