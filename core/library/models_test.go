package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAchievementRecord(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		unlocked int
		want     AchievementRecord
	}{
		{"Partial", 4, 1, AchievementRecord{Total: 4, Unlocked: 1, Percentage: 25}},
		{"All", 10, 10, AchievementRecord{Total: 10, Unlocked: 10, Percentage: 100, AllUnlocked: true}},
		{"None", 0, 0, AchievementRecord{}},
		{"ClampedHigh", 2, 5, AchievementRecord{Total: 2, Unlocked: 2, Percentage: 100, AllUnlocked: true}},
		{"ClampedNegative", 3, -1, AchievementRecord{Total: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAchievementRecord(tt.total, tt.unlocked))
		})
	}
}

func TestAchievementProgress_Record(t *testing.T) {
	rec := AchievementProgress{Total: 4, Unlocked: 9, Percentage: 225, AllUnlocked: false}.Record()
	assert.Equal(t, AchievementRecord{Total: 4, Unlocked: 4, Percentage: 100, AllUnlocked: true}, rec)

	rec = AchievementProgress{Total: -3, Unlocked: -1, Percentage: 50, AllUnlocked: true}.Record()
	assert.Equal(t, AchievementRecord{}, rec)

	rec = AchievementProgress{Total: 10, Unlocked: 5, Percentage: 49.9}.Record()
	assert.InDelta(t, 50.0, rec.Percentage, 0.001)
	assert.False(t, rec.AllUnlocked)
}

func TestAchievementRecord_Valid(t *testing.T) {
	assert.False(t, AchievementRecord{}.Valid())
	assert.True(t, AchievementRecord{Total: 1}.Valid())
}

func TestParseAppID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"730", "730", true},
		{"0730", "730", true},
		{"0", "", false},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAppID(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyncSummary_Record(t *testing.T) {
	var s SyncSummary
	s.Record(OutcomeSynced)
	s.Record(OutcomeTagChanged)
	s.Record(OutcomeFailed)

	assert.Equal(t, 2, s.Synced)
	assert.Equal(t, 1, s.NewTags)
	assert.Equal(t, 1, s.Errors)
}

func TestFailed(t *testing.T) {
	assert.Equal(t, SyncSummary{Error: "boom"}, Failed(errors.New("boom")))
	assert.Equal(t, SyncSummary{Error: "Unknown error"}, Failed(nil))
}

func TestParseManualTag(t *testing.T) {
	tag, err := ParseManualTag("mastered")
	assert.NoError(t, err)
	assert.Equal(t, TagMastered, tag)
	assert.Equal(t, "Mastered", tag.Label())

	_, err = ParseManualTag("backlog")
	assert.EqualError(t, err, `invalid tag "backlog"`)
}

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "Game 42", FallbackName("42"))
}
