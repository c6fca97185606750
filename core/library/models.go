package library

import (
	"fmt"
	"strconv"
	"time"
)

// PlaytimeRecord is a point-in-time snapshot of a game's playtime.
// A zero record means either "never played" or "overview unavailable"; the backend
// contract does not distinguish the two.
type PlaytimeRecord struct {
	// MinutesPlayed is the total playtime in minutes.
	MinutesPlayed int `json:"playtime_minutes"`
	// LastPlayed is the unix timestamp of the last session, nil when unknown.
	LastPlayed *int64 `json:"rt_last_time_played"`
}

// AchievementRecord summarises achievement progress for one game.
type AchievementRecord struct {
	Total       int     `json:"total"`
	Unlocked    int     `json:"unlocked"`
	Percentage  float64 `json:"percentage"`
	AllUnlocked bool    `json:"all_unlocked"`
}

// NewAchievementRecord derives percentage and completion from raw counts.
// Unlocked is clamped to [0, total].
func NewAchievementRecord(total, unlocked int) AchievementRecord {
	if total < 0 {
		total = 0
	}
	if unlocked < 0 {
		unlocked = 0
	}
	if unlocked > total {
		unlocked = total
	}

	rec := AchievementRecord{Total: total, Unlocked: unlocked}
	if total > 0 {
		rec.Percentage = float64(unlocked) / float64(total) * 100
		rec.AllUnlocked = unlocked == total
	}
	return rec
}

// Valid reports whether the record carries achievement data at all.
// Records with no achievements must never overwrite known data on the backend.
func (r AchievementRecord) Valid() bool {
	return r.Total > 0
}

// FallbackName is the label used when no display name could be found.
func FallbackName(appid string) string {
	return fmt.Sprintf("Game %s", appid)
}

// ParseAppID returns the canonical form of a positive numeric app id.
func ParseAppID(raw string) (string, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return "", false
	}
	return strconv.FormatInt(id, 10), true
}

// Outcome is the terminal state of one game within a sync run.
type Outcome string

const (
	OutcomeSynced     Outcome = "synced"
	OutcomeTagChanged Outcome = "tag_changed"
	OutcomeFailed     Outcome = "failed"
)

// SyncSummary aggregates the outcomes of a sync run.
type SyncSummary struct {
	Success bool   `json:"success"`
	Total   int    `json:"total"`
	Synced  int    `json:"synced"`
	NewTags int    `json:"new_tags"`
	Errors  int    `json:"errors"`
	Error   string `json:"error,omitempty"`
}

// Record folds one game outcome into the summary.
func (s *SyncSummary) Record(o Outcome) {
	switch o {
	case OutcomeSynced:
		s.Synced++
	case OutcomeTagChanged:
		s.Synced++
		s.NewTags++
	default:
		s.Errors++
	}
}

// Failed builds the summary of a run that could not process its game list.
func Failed(err error) SyncSummary {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return SyncSummary{Success: false, Error: msg}
}

// SyncProgressState is the backend's view of an ongoing sync.
type SyncProgressState struct {
	Syncing bool `json:"syncing"`
	Current int  `json:"current"`
	Total   int  `json:"total"`
}

// Tag is a progress category assigned by the backend.
type Tag string

const (
	TagCompleted  Tag = "completed"
	TagInProgress Tag = "in_progress"
	TagMastered   Tag = "mastered"
	TagDropped    Tag = "dropped"
	TagBacklog    Tag = "backlog"
)

// ManualTags are the tags a user may assign by hand.
var ManualTags = []Tag{TagCompleted, TagInProgress, TagMastered, TagDropped}

// ParseManualTag validates a user supplied tag.
func ParseManualTag(raw string) (Tag, error) {
	for _, t := range ManualTags {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid tag %q", raw)
}

// Label returns the human readable tag name.
func (t Tag) Label() string {
	switch t {
	case TagCompleted:
		return "Completed"
	case TagInProgress:
		return "In Progress"
	case TagMastered:
		return "Mastered"
	case TagDropped:
		return "Dropped"
	case TagBacklog:
		return "Backlog"
	default:
		return string(t)
	}
}

// SyncRun is one finished sync as recorded in the run history.
type SyncRun struct {
	ID         string      `json:"id"`
	Trigger    string      `json:"trigger"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Summary    SyncSummary `json:"summary"`
}

// Duration is the wall time of the run.
func (r SyncRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
