package hostcache

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"progress-tracker/core/library"
	"progress-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleSnapshot = `{
	"captured_at": "2024-05-01T10:00:00Z",
	"apps": [{"appid": 10}, 20, "30"],
	"collections": [
		{"id": "favorite", "name": "Favorites", "appids": [10]},
		{"id": "type-games", "name": "All Games", "appids": [10, 20, 30, 40]}
	],
	"app_map_keys": [10, 20],
	"overviews": {"10": {"appid": 10, "display_name": "Counter-Strike", "minutes_playtime_forever": 90, "rt_last_time_played": 1700000000}},
	"achievements": {"10": {"total": 4, "unlocked": 2, "percentage": 50, "all_unlocked": false}}
}`

func TestDecode(t *testing.T) {
	snap, err := Decode(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	stats := snap.Stats()
	assert.True(t, stats.Loaded)
	assert.Equal(t, 3, stats.Apps)
	assert.Equal(t, 2, stats.Collections)
	assert.Equal(t, 1, stats.Overviews)

	_, err = Decode(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestDecode_Normalizes(t *testing.T) {
	snap, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, snap.Overviews)
	assert.NotNil(t, snap.Achievements)
	assert.False(t, snap.CapturedAt.IsZero())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o600))

	snap, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Stats().AppMapKeys)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	s := NewStore(zap.NewNop())
	assert.False(t, s.Stats().Loaded)

	_, err := s.apps(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, ok := s.Overview("10")
	assert.False(t, ok)

	snap, err := Decode(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)
	s.Replace(snap)

	o, ok := s.Overview("10")
	require.True(t, ok)
	assert.Equal(t, "Counter-Strike", o.DisplayName)

	col, err := s.allGamesCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, col, 4)

	s.PutAchievements("20", library.AchievementProgress{Total: 1, Unlocked: 1, Percentage: 100, AllUnlocked: true})
	p, ok := s.CachedAchievements("20")
	require.True(t, ok)
	assert.True(t, p.AllUnlocked)
}

func TestStore_PutWithoutSnapshot(t *testing.T) {
	s := NewStore(zap.NewNop())
	s.PutOverview("5", library.Overview{AppID: 5, DisplayName: "Five"})

	o, ok := s.Overview("5")
	require.True(t, ok)
	assert.Equal(t, "Five", o.DisplayName)

	apps, err := s.apps(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestStore_LoadObject(t *testing.T) {
	m := new(mocks.Client)
	m.On("GetObject", mock.Anything, "bucket", "snapshots/library.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(sampleSnapshot)), nil)

	s := NewStore(zap.NewNop()).WithObjectStore(m, "bucket", "snapshots/library.json")
	require.NoError(t, s.LoadObject(context.Background()))
	assert.Equal(t, 3, s.Stats().Apps)
	m.AssertExpectations(t)
}

func TestStore_LoadObjectErrors(t *testing.T) {
	assert.Error(t, NewStore(zap.NewNop()).LoadObject(context.Background()))

	m := new(mocks.Client)
	m.On("GetObject", mock.Anything, "bucket", "obj", minio.GetObjectOptions{}).Return(nil, assert.AnError)
	s := NewStore(zap.NewNop()).WithObjectStore(m, "bucket", "obj")
	assert.ErrorIs(t, s.LoadObject(context.Background()), assert.AnError)
}

func TestStore_Persist(t *testing.T) {
	assert.NoError(t, NewStore(zap.NewNop()).Persist(context.Background()))

	m := new(mocks.Client)
	s := NewStore(zap.NewNop()).WithObjectStore(m, "bucket", "obj")
	assert.ErrorIs(t, s.Persist(context.Background()), ErrNoSnapshot)

	snap, err := Decode(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)
	s.Replace(snap)

	var written []byte
	m.On("PutObject", mock.Anything, "bucket", "obj", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, s.Persist(context.Background()))
	restored, err := Decode(bytes.NewReader(written))
	require.NoError(t, err)
	assert.Equal(t, snap.Stats(), restored.Stats())
}
