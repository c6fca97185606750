package rpc

import (
	"bytes"
	"strconv"

	"progress-tracker/core/library"
	"progress-tracker/core/utils"

	"github.com/goccy/go-json"
)

// AppID is a game id that the backend may encode either as a JSON string or number.
type AppID string

// UnmarshalJSON accepts "730", 730 and null.
func (a *AppID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AppID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*a = AppID(strconv.FormatInt(i, 10))
		return nil
	}
	*a = AppID(n.String())
	return nil
}

// Ack is the minimal response shape shared by mutating commands.
type Ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Settings are the user's plugin settings.
type Settings struct {
	AutoTagEnabled      bool    `json:"auto_tag_enabled"`
	MasteredMultiplier  float64 `json:"mastered_multiplier"`
	InProgressThreshold int     `json:"in_progress_threshold"`
	CacheTTL            int     `json:"cache_ttl"`
	SourceInstalled     *bool   `json:"source_installed,omitempty"`
	SourceNonSteam      *bool   `json:"source_non_steam,omitempty"`
	SourceAllOwned      *bool   `json:"source_all_owned,omitempty"`
}

// UnmarshalJSON reads the boolean settings loosely. Older backends store them
// as 0/1 or "true"/"false".
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw struct {
		AutoTagEnabled      any     `json:"auto_tag_enabled"`
		MasteredMultiplier  float64 `json:"mastered_multiplier"`
		InProgressThreshold int     `json:"in_progress_threshold"`
		CacheTTL            int     `json:"cache_ttl"`
		SourceInstalled     any     `json:"source_installed"`
		SourceNonSteam      any     `json:"source_non_steam"`
		SourceAllOwned      any     `json:"source_all_owned"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Settings{
		AutoTagEnabled:      utils.ToBool(raw.AutoTagEnabled),
		MasteredMultiplier:  raw.MasteredMultiplier,
		InProgressThreshold: raw.InProgressThreshold,
		CacheTTL:            raw.CacheTTL,
		SourceInstalled:     flag(raw.SourceInstalled),
		SourceNonSteam:      flag(raw.SourceNonSteam),
		SourceAllOwned:      flag(raw.SourceAllOwned),
	}
	return nil
}

func flag(v any) *bool {
	if v == nil {
		return nil
	}
	b := utils.ToBool(v)
	return &b
}

// UseAllOwned reports whether discovery should cover the full owned library.
// An unset flag means yes.
func (s Settings) UseAllOwned() bool {
	if s.SourceAllOwned == nil {
		return true
	}
	return *s.SourceAllOwned
}

type settingsResponse struct {
	Settings *Settings `json:"settings"`
}

// GameRef is one entry of the backend's known game list.
type GameRef struct {
	AppID AppID  `json:"appid"`
	Name  string `json:"name,omitempty"`
}

// GameList is the response of get_all_games.
type GameList struct {
	Success bool      `json:"success"`
	Games   []GameRef `json:"games"`
	Error   string    `json:"error,omitempty"`
}

// SingleGameSync is the payload of sync_single_game_with_data.
type SingleGameSync struct {
	AppID           string                     `json:"appid"`
	GameData        library.PlaytimeRecord     `json:"game_data"`
	AchievementData *library.AchievementRecord `json:"achievement_data"`
	GameName        string                     `json:"game_name"`
	IsBulkSync      bool                       `json:"is_bulk_sync"`
	CurrentIndex    int                        `json:"current_index"`
	TotalCount      int                        `json:"total_count"`
}

// SingleGameResult is the response of sync_single_game_with_data.
type SingleGameResult struct {
	Success    bool   `json:"success"`
	TagChanged bool   `json:"tag_changed"`
	Tag        string `json:"tag,omitempty"`
	Error      string `json:"error,omitempty"`
}

// LibrarySync is the payload of sync_library_with_playtime. Games without valid
// achievement data are left out of AchievementData.
type LibrarySync struct {
	GameData        map[string]library.PlaytimeRecord    `json:"game_data"`
	AchievementData map[string]library.AchievementRecord `json:"achievement_data"`
	GameNames       map[string]string                    `json:"game_names"`
}

// ErrorDetail describes a per-game failure reported by the backend.
type ErrorDetail struct {
	AppID AppID  `json:"appid"`
	Error string `json:"error"`
}

// SyncResult is the response of sync_library_with_playtime.
type SyncResult struct {
	Success      bool          `json:"success"`
	Total        int           `json:"total"`
	Synced       int           `json:"synced"`
	NewTags      int           `json:"new_tags"`
	Errors       int           `json:"errors"`
	ErrorDetails []ErrorDetail `json:"error_details,omitempty"`
	Message      string        `json:"message,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// SyncProgress is the response of get_sync_progress.
type SyncProgress struct {
	Success bool `json:"success"`
	library.SyncProgressState
}

// TagStatistics counts games per tag.
type TagStatistics struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Mastered   int `json:"mastered"`
	Backlog    int `json:"backlog"`
	Dropped    int `json:"dropped"`
	Total      int `json:"total"`
}

type statisticsResponse struct {
	Success bool          `json:"success"`
	Stats   TagStatistics `json:"stats"`
	Error   string        `json:"error,omitempty"`
}

// TaggedGame is a game with its current tag.
type TaggedGame struct {
	AppID    AppID       `json:"appid"`
	GameName string      `json:"game_name"`
	Tag      library.Tag `json:"tag"`
	IsManual bool        `json:"is_manual"`
}

type gamesResponse struct {
	Success bool         `json:"success"`
	Games   []TaggedGame `json:"games"`
	Error   string       `json:"error,omitempty"`
}

// GameStats are the backend's stored stats for a game.
type GameStats struct {
	AppID                 AppID    `json:"appid"`
	GameName              string   `json:"game_name"`
	PlaytimeMinutes       int      `json:"playtime_minutes"`
	TotalAchievements     int      `json:"total_achievements"`
	UnlockedAchievements  int      `json:"unlocked_achievements"`
	AchievementPercentage *float64 `json:"achievement_percentage,omitempty"`
	LastSync              string   `json:"last_sync,omitempty"`
}

// GameTag is the stored tag of a game.
type GameTag struct {
	AppID       AppID       `json:"appid"`
	Tag         library.Tag `json:"tag"`
	IsManual    bool        `json:"is_manual"`
	LastUpdated string      `json:"last_updated"`
}

// HLTBData holds how-long-to-beat estimates in hours.
type HLTBData struct {
	GameName      string   `json:"game_name"`
	MatchedName   string   `json:"matched_name"`
	Similarity    float64  `json:"similarity"`
	MainStory     *float64 `json:"main_story,omitempty"`
	MainExtra     *float64 `json:"main_extra,omitempty"`
	Completionist *float64 `json:"completionist,omitempty"`
	AllStyles     *float64 `json:"all_styles,omitempty"`
	HLTBURL       string   `json:"hltb_url"`
}

// GameDetails is the response of get_game_details.
type GameDetails struct {
	Success  bool       `json:"success"`
	AppID    AppID      `json:"appid"`
	Stats    *GameStats `json:"stats"`
	Tag      *GameTag   `json:"tag"`
	HLTBData *HLTBData  `json:"hltb_data"`
	Error    string     `json:"error,omitempty"`
}
