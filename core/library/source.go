package library

import "context"

// Overview is the host's per-game overview entry.
type Overview struct {
	AppID                  int    `json:"appid"`
	DisplayName            string `json:"display_name"`
	MinutesPlaytimeForever int    `json:"minutes_playtime_forever"`
	RTLastTimePlayed       *int64 `json:"rt_last_time_played"`
}

// Playtime converts the overview into a playtime record.
func (o Overview) Playtime() PlaytimeRecord {
	minutes := o.MinutesPlaytimeForever
	if minutes < 0 {
		minutes = 0
	}
	return PlaytimeRecord{MinutesPlayed: minutes, LastPlayed: o.RTLastTimePlayed}
}

// AchievementProgress is the host's achievement progress cache entry.
type AchievementProgress struct {
	Total       int     `json:"total"`
	Unlocked    int     `json:"unlocked"`
	Percentage  float64 `json:"percentage"`
	AllUnlocked bool    `json:"all_unlocked"`
}

// Record converts a cache entry. Counts are clamped and the derived fields
// recomputed.
func (p AchievementProgress) Record() AchievementRecord {
	return NewAchievementRecord(p.Total, p.Unlocked)
}

// AchievementPayload is the answer of an on-demand achievement fetch.
// It is well formed only when Result is 1 and Data lists achievements.
type AchievementPayload struct {
	Result int               `json:"result"`
	Data   *AchievementBlock `json:"data"`
}

// AchievementBlock wraps the per-achievement list.
type AchievementBlock struct {
	Achievements []AchievementItem `json:"rgAchievements"`
}

// AchievementItem is a single achievement.
type AchievementItem struct {
	APIName  string `json:"strID,omitempty"`
	Name     string `json:"strName,omitempty"`
	Achieved bool   `json:"bAchieved"`
}

// Record derives an achievement record from the payload.
// ok is false when the payload is malformed or lists no achievements.
func (p *AchievementPayload) Record() (AchievementRecord, bool) {
	if p == nil || p.Result != 1 || p.Data == nil || len(p.Data.Achievements) == 0 {
		return AchievementRecord{}, false
	}
	unlocked := 0
	for _, a := range p.Data.Achievements {
		if a.Achieved {
			unlocked++
		}
	}
	return NewAchievementRecord(len(p.Data.Achievements), unlocked), true
}

// OwnedGame is a remote owned-game entry.
type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	RTimeLastPlayed int64  `json:"rtime_last_played"`
}

// Playtime converts the entry into a playtime record. A zero timestamp means unknown.
func (g OwnedGame) Playtime() PlaytimeRecord {
	rec := PlaytimeRecord{MinutesPlayed: g.PlaytimeForever}
	if rec.MinutesPlayed < 0 {
		rec.MinutesPlayed = 0
	}
	if g.RTimeLastPlayed > 0 {
		ts := g.RTimeLastPlayed
		rec.LastPlayed = &ts
	}
	return rec
}

// DiscoveryStrategy is one way of enumerating owned games. Discover returns
// loosely typed entries that the caller parses and filters.
type DiscoveryStrategy struct {
	Name     string
	Discover func(ctx context.Context) ([]any, error)
}
