package hostcache

import (
	"context"
	"fmt"
	"strconv"

	"progress-tracker/core/library"
	"progress-tracker/core/steamapi"
)

// Strategy names, in the order they are tried.
const (
	StrategyAppList         = "app_list"
	StrategySteamWebAPI     = "steam_web_api"
	StrategyCollectionStore = "collection_store"
	StrategyAppStoreMap     = "app_store_map"
)

// Remote is the slow remote tier behind the host caches.
type Remote interface {
	Configured() bool
	GetOwnedGames(ctx context.Context, appids ...int) ([]library.OwnedGame, error)
	GetOwnedGame(ctx context.Context, appid int) (library.OwnedGame, error)
	GetPlayerAchievements(ctx context.Context, appid int) (steamapi.PlayerStats, error)
}

// Source exposes the host caches and the remote tier as one data source.
type Source struct {
	store  *Store
	remote Remote
}

// NewSource combines a store with a remote tier. remote may be nil.
func NewSource(store *Store, remote Remote) *Source {
	return &Source{store: store, remote: remote}
}

// DiscoveryStrategies returns the owned-game listings in preference order.
func (s *Source) DiscoveryStrategies() []library.DiscoveryStrategy {
	return []library.DiscoveryStrategy{
		{Name: StrategyAppList, Discover: s.store.apps},
		{Name: StrategySteamWebAPI, Discover: s.ownedGames},
		{Name: StrategyCollectionStore, Discover: s.store.allGamesCollection},
		{Name: StrategyAppStoreMap, Discover: s.store.appMapKeys},
	}
}

func (s *Source) ownedGames(ctx context.Context) ([]any, error) {
	if s.remote == nil || !s.remote.Configured() {
		return nil, steamapi.ErrNotConfigured
	}
	games, err := s.remote.GetOwnedGames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(games))
	for _, g := range games {
		out = append(out, g.AppID)
	}
	return out, nil
}

// Overview returns the cached overview of a game.
func (s *Source) Overview(appid string) (library.Overview, bool) {
	return s.store.Overview(appid)
}

// CachedAchievements returns the cached achievement progress of a game.
func (s *Source) CachedAchievements(appid string) (library.AchievementProgress, bool) {
	return s.store.CachedAchievements(appid)
}

// FetchOwnedGame looks a game up on the remote tier.
func (s *Source) FetchOwnedGame(ctx context.Context, appid string) (library.OwnedGame, error) {
	if s.remote == nil || !s.remote.Configured() {
		return library.OwnedGame{}, steamapi.ErrNotConfigured
	}
	id, err := strconv.Atoi(appid)
	if err != nil {
		return library.OwnedGame{}, fmt.Errorf("invalid appid %q: %w", appid, err)
	}
	return s.remote.GetOwnedGame(ctx, id)
}

// FetchAchievements fetches achievement data for a game on demand.
func (s *Source) FetchAchievements(ctx context.Context, appid string) (*library.AchievementPayload, error) {
	if s.remote == nil || !s.remote.Configured() {
		return nil, steamapi.ErrNotConfigured
	}
	id, err := strconv.Atoi(appid)
	if err != nil {
		return nil, fmt.Errorf("invalid appid %q: %w", appid, err)
	}
	stats, err := s.remote.GetPlayerAchievements(ctx, id)
	if err != nil {
		return nil, err
	}
	return stats.Payload(), nil
}
