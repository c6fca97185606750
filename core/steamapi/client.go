package steamapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"progress-tracker/core/library"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotConfigured is returned when no API key or steam id is set.
	ErrNotConfigured = errors.New("steam web api not configured")
	// ErrNotFound is returned when the requested game is not in the owner's library.
	ErrNotFound = errors.New("game not found")
)

// Client reads the library owner's data from the Steam Web API.
type Client struct {
	cfg     Config
	base    string
	timeout time.Duration
	http    *fiber.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:     cfg,
		base:    strings.TrimRight(cfg.APIEndpoint, "/"),
		timeout: timeout,
		http: &fiber.Client{
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

// Configured reports whether remote lookups can be made.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int                 `json:"game_count"`
		Games     []library.OwnedGame `json:"games"`
	} `json:"response"`
}

// GetOwnedGames lists owned games. When appids are given the listing is filtered to them.
func (c *Client) GetOwnedGames(ctx context.Context, appids ...int) ([]library.OwnedGame, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("steamid", c.cfg.SteamID)
	q.Set("include_appinfo", "1")
	q.Set("include_played_free_games", "1")
	q.Set("format", "json")
	for i, id := range appids {
		q.Set(fmt.Sprintf("appids_filter[%d]", i), strconv.Itoa(id))
	}

	var resp ownedGamesResponse
	if err := c.get(ctx, "/IPlayerService/GetOwnedGames/v1/", q, &resp); err != nil {
		return nil, fmt.Errorf("failed to get owned games: %w", err)
	}
	return resp.Response.Games, nil
}

// GetOwnedGame returns one owned game.
func (c *Client) GetOwnedGame(ctx context.Context, appid int) (library.OwnedGame, error) {
	games, err := c.GetOwnedGames(ctx, appid)
	if err != nil {
		return library.OwnedGame{}, err
	}
	for _, g := range games {
		if g.AppID == appid {
			return g, nil
		}
	}
	return library.OwnedGame{}, ErrNotFound
}

// PlayerAchievement is one entry of GetPlayerAchievements.
type PlayerAchievement struct {
	APIName    string `json:"apiname"`
	Name       string `json:"name"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}

// PlayerStats is the body of GetPlayerAchievements.
type PlayerStats struct {
	SteamID      string              `json:"steamID"`
	GameName     string              `json:"gameName"`
	Achievements []PlayerAchievement `json:"achievements"`
	Success      bool                `json:"success"`
	Error        string              `json:"error"`
}

type playerStatsResponse struct {
	PlayerStats PlayerStats `json:"playerstats"`
}

// GetPlayerAchievements returns the owner's achievements for one game.
// Games without stats answer with Success=false rather than an error.
func (c *Client) GetPlayerAchievements(ctx context.Context, appid int) (PlayerStats, error) {
	if !c.Configured() {
		return PlayerStats{}, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("steamid", c.cfg.SteamID)
	q.Set("appid", strconv.Itoa(appid))
	q.Set("l", "english")

	var resp playerStatsResponse
	err := c.get(ctx, "/ISteamUserStats/GetPlayerAchievements/v1/", q, &resp)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == fiber.StatusBadRequest {
		// Steam answers 400 for games without stats.
		return PlayerStats{Success: false, Error: statusErr.Body}, nil
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("failed to get achievements for %d: %w", appid, err)
	}
	return resp.PlayerStats, nil
}

// Payload converts player stats into the achievement payload shape used by the host.
func (s PlayerStats) Payload() *library.AchievementPayload {
	if !s.Success {
		return &library.AchievementPayload{Result: 0}
	}
	items := make([]library.AchievementItem, 0, len(s.Achievements))
	for _, a := range s.Achievements {
		items = append(items, library.AchievementItem{APIName: a.APIName, Name: a.Name, Achieved: a.Achieved == 1})
	}
	return &library.AchievementPayload{Result: 1, Data: &library.AchievementBlock{Achievements: items}}
}

// StatusError describes a non-2xx answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

type result struct {
	code int
	body []byte
	err  error
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	agent := c.http.Get(c.base + path)
	agent.QueryString(q.Encode())
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(c.timeout)

	done := make(chan result, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- result{code: code, body: body, err: errors.Join(errs...)}
	}()

	var res result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		return res.err
	}
	if res.code < 200 || res.code > 299 {
		body := strings.TrimSpace(string(res.body))
		if len(body) > 512 {
			body = body[:512]
		}
		return &StatusError{Code: res.code, Body: body}
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
