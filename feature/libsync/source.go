package libsync

import (
	"context"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"
)

// DataSource is read-only access to the host caches and their slow remote tier.
type DataSource interface {
	// DiscoveryStrategies returns owned-game listings in preference order.
	DiscoveryStrategies() []library.DiscoveryStrategy
	// Overview is a synchronous cache read.
	Overview(appid string) (library.Overview, bool)
	// CachedAchievements is a synchronous cache read.
	CachedAchievements(appid string) (library.AchievementProgress, bool)
	// FetchOwnedGame is a slow remote lookup.
	FetchOwnedGame(ctx context.Context, appid string) (library.OwnedGame, error)
	// FetchAchievements is a slow remote lookup.
	FetchAchievements(ctx context.Context, appid string) (*library.AchievementPayload, error)
}

// Backend is the part of the backend command surface the sync pipeline drives.
type Backend interface {
	GetSettings(ctx context.Context) (rpc.Settings, error)
	GetAllGames(ctx context.Context) (rpc.GameList, error)
	SyncSingleGameWithData(ctx context.Context, req rpc.SingleGameSync) (rpc.SingleGameResult, error)
	SyncLibraryWithPlaytime(ctx context.Context, req rpc.LibrarySync) (rpc.SyncResult, error)
	GetSyncProgress(ctx context.Context) (rpc.SyncProgress, error)
}

// backendIDs converts a backend game list into canonical app ids.
func backendIDs(games []rpc.GameRef) []string {
	seen := make(map[string]struct{}, len(games))
	ids := make([]string, 0, len(games))
	for _, g := range games {
		id, ok := library.ParseAppID(string(g.AppID))
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
