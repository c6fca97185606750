package rpc

import (
	"context"
	"fmt"

	"progress-tracker/core/library"
)

// Backend is the typed command surface of the plugin backend.
type Backend struct {
	caller Caller
}

// NewBackend wraps a Caller.
func NewBackend(caller Caller) *Backend {
	return &Backend{caller: caller}
}

// GetSettings returns the user's settings. A missing settings object yields defaults.
func (b *Backend) GetSettings(ctx context.Context) (Settings, error) {
	var resp settingsResponse
	if err := b.caller.Call(ctx, CmdGetSettings, nil, &resp); err != nil {
		return Settings{}, err
	}
	if resp.Settings == nil {
		return Settings{}, nil
	}
	return *resp.Settings, nil
}

// GetAllGames returns every game the backend knows about.
func (b *Backend) GetAllGames(ctx context.Context) (GameList, error) {
	var resp GameList
	if err := b.caller.Call(ctx, CmdGetAllGames, nil, &resp); err != nil {
		return GameList{}, err
	}
	return resp, nil
}

// SyncLibraryWithPlaytime submits a batch of per-game records.
func (b *Backend) SyncLibraryWithPlaytime(ctx context.Context, req LibrarySync) (SyncResult, error) {
	var resp SyncResult
	if err := b.caller.Call(ctx, CmdSyncLibraryWithPlaytime, req, &resp); err != nil {
		return SyncResult{}, err
	}
	return resp, nil
}

// SyncSingleGameWithData submits one game's records during a progressive sync.
func (b *Backend) SyncSingleGameWithData(ctx context.Context, req SingleGameSync) (SingleGameResult, error) {
	var resp SingleGameResult
	if err := b.caller.Call(ctx, CmdSyncSingleGameWithData, req, &resp); err != nil {
		return SingleGameResult{}, err
	}
	return resp, nil
}

// GetSyncProgress returns the backend's view of the current sync.
func (b *Backend) GetSyncProgress(ctx context.Context) (SyncProgress, error) {
	var resp SyncProgress
	if err := b.caller.Call(ctx, CmdGetSyncProgress, nil, &resp); err != nil {
		return SyncProgress{}, err
	}
	return resp, nil
}

// GetTagStatistics returns the number of games per tag.
func (b *Backend) GetTagStatistics(ctx context.Context) (TagStatistics, error) {
	var resp statisticsResponse
	if err := b.caller.Call(ctx, CmdGetTagStatistics, nil, &resp); err != nil {
		return TagStatistics{}, err
	}
	if !resp.Success {
		return TagStatistics{}, failure(CmdGetTagStatistics, resp.Error)
	}
	return resp.Stats, nil
}

// GetAllTagsWithNames lists every tagged game.
func (b *Backend) GetAllTagsWithNames(ctx context.Context) ([]TaggedGame, error) {
	return b.games(ctx, CmdGetAllTagsWithNames)
}

// GetBacklogGames lists games tagged as backlog.
func (b *Backend) GetBacklogGames(ctx context.Context) ([]TaggedGame, error) {
	return b.games(ctx, CmdGetBacklogGames)
}

func (b *Backend) games(ctx context.Context, command string) ([]TaggedGame, error) {
	var resp gamesResponse
	if err := b.caller.Call(ctx, command, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, failure(command, resp.Error)
	}
	return resp.Games, nil
}

// GetGameDetails returns stats, tag and time estimates for one game.
func (b *Backend) GetGameDetails(ctx context.Context, appid string) (GameDetails, error) {
	var resp GameDetails
	if err := b.caller.Call(ctx, CmdGetGameDetails, map[string]string{"appid": appid}, &resp); err != nil {
		return GameDetails{}, err
	}
	if !resp.Success {
		return GameDetails{}, failure(CmdGetGameDetails, resp.Error)
	}
	return resp, nil
}

// SetManualTag pins a tag on a game.
func (b *Backend) SetManualTag(ctx context.Context, appid string, tag library.Tag) error {
	return b.ack(ctx, CmdSetManualTag, map[string]string{"appid": appid, "tag": string(tag)})
}

// ResetToAutoTag drops a manual tag so the automatic rules apply again.
func (b *Backend) ResetToAutoTag(ctx context.Context, appid string) error {
	return b.ack(ctx, CmdResetToAutoTag, map[string]string{"appid": appid})
}

// RemoveTag removes any tag from a game.
func (b *Backend) RemoveTag(ctx context.Context, appid string) error {
	return b.ack(ctx, CmdRemoveTag, map[string]string{"appid": appid})
}

// LogFrontend forwards a log line to the backend log file.
func (b *Backend) LogFrontend(ctx context.Context, level, message string) error {
	return b.caller.Call(ctx, CmdLogFrontend, map[string]string{"level": level, "message": message}, nil)
}

func (b *Backend) ack(ctx context.Context, command string, args any) error {
	var resp Ack
	if err := b.caller.Call(ctx, command, args, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return failure(command, resp.Error)
	}
	return nil
}

func failure(command, msg string) error {
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("%s: %w: %s", command, ErrBackendFailure, msg)
}
