package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tennisclub/clubweb/models"
)

// Client — единственная точка обращения к бэкенду клуба. Клиент не хранит
// состояния между вызовами: ни кэша, ни повторов. Авторизованные эндпоинты
// получают токен query-параметром token — это контракт бэкенда, менять
// его нельзя.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// LeaderboardFilter — необязательные параметры GET /leaderboard.
type LeaderboardFilter struct {
	Level string
	Limit int
}

// PlayerFilter — необязательные параметры GET /players.
type PlayerFilter struct {
	Query string
	Level string
	Limit int
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login обменивает email/имя/роль на токен.
func (c *Client) Login(ctx context.Context, input models.LoginInput) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, input, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me возвращает профиль пользователя по токену.
func (c *Client) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	query := url.Values{"token": {token}}
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/me", query, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListCourts(ctx context.Context) ([]models.Court, error) {
	var courts []models.Court
	if err := c.do(ctx, http.MethodGet, "/courts", nil, nil, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Client) CreateCourt(ctx context.Context, input models.CourtInput, token string) (*models.Court, error) {
	query := url.Values{"token": {token}}
	var court models.Court
	if err := c.do(ctx, http.MethodPost, "/admin/courts", query, input, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput, token string) (*models.Booking, error) {
	query := url.Values{"token": {token}}
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", query, input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings возвращает бронирования владельца токена.
func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	query := url.Values{"token": {token}}
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/my/bookings", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := c.do(ctx, http.MethodGet, "/tournaments", nil, nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (c *Client) CreateTournament(ctx context.Context, input models.TournamentInput, token string) (*models.Tournament, error) {
	query := url.Values{"token": {token}}
	var tournament models.Tournament
	if err := c.do(ctx, http.MethodPost, "/admin/tournaments", query, input, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// Leaderboard возвращает рейтинг игроков. Нулевые значения фильтра
// в query-строку не попадают.
func (c *Client) Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]models.PlayerSummary, error) {
	query := url.Values{}
	if filter.Level != "" {
		query.Set("level", filter.Level)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var players []models.PlayerSummary
	if err := c.do(ctx, http.MethodGet, "/leaderboard", query, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Players возвращает каталог игроков с поиском и фильтром по уровню.
func (c *Client) Players(ctx context.Context, filter PlayerFilter) ([]models.PlayerSummary, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.Level != "" {
		query.Set("level", filter.Level)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var players []models.PlayerSummary
	if err := c.do(ctx, http.MethodGet, "/players", query, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// AIChat задаёт ассистенту один вопрос. Токен уходит в теле запроса,
// а не в query-строке — единственный эндпоинт с таким соглашением.
func (c *Client) AIChat(ctx context.Context, input models.ChatInput, token string) (string, error) {
	input.Token = token
	var answer models.ChatAnswer
	if err := c.do(ctx, http.MethodPost, "/ai/chat", nil, input, &answer); err != nil {
		return "", err
	}
	return answer.Answer, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
