package tags

import (
	"context"
	"errors"
	"fmt"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"

	"go.uber.org/zap"
)

// ErrInvalidTag is returned for tags a user may not assign.
var ErrInvalidTag = errors.New("invalid tag")

// Backend is the subset of backend commands used for tags.
type Backend interface {
	GetTagStatistics(ctx context.Context) (rpc.TagStatistics, error)
	GetAllTagsWithNames(ctx context.Context) ([]rpc.TaggedGame, error)
	GetBacklogGames(ctx context.Context) ([]rpc.TaggedGame, error)
	GetGameDetails(ctx context.Context, appid string) (rpc.GameDetails, error)
	SetManualTag(ctx context.Context, appid string, tag library.Tag) error
	ResetToAutoTag(ctx context.Context, appid string) error
	RemoveTag(ctx context.Context, appid string) error
}

// Service exposes tag reads and manual tag operations.
type Service struct {
	backend Backend
	logger  *zap.Logger
}

// NewService creates a new tags service.
func NewService(backend Backend, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Stats returns the number of games per tag.
func (s *Service) Stats(ctx context.Context) (rpc.TagStatistics, error) {
	stats, err := s.backend.GetTagStatistics(ctx)
	if err != nil {
		return rpc.TagStatistics{}, fmt.Errorf("failed to get tag statistics: %w", err)
	}
	return stats, nil
}

// List returns every tagged game, optionally filtered to one tag.
func (s *Service) List(ctx context.Context, tag library.Tag) ([]rpc.TaggedGame, error) {
	games, err := s.backend.GetAllTagsWithNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tagged games: %w", err)
	}
	if tag == "" {
		return games, nil
	}
	filtered := make([]rpc.TaggedGame, 0, len(games))
	for _, g := range games {
		if g.Tag == tag {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// Backlog returns the games tagged as backlog.
func (s *Service) Backlog(ctx context.Context) ([]rpc.TaggedGame, error) {
	games, err := s.backend.GetBacklogGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list backlog games: %w", err)
	}
	return games, nil
}

// Details returns the stored stats, tag and completion estimates of a game.
func (s *Service) Details(ctx context.Context, appid string) (rpc.GameDetails, error) {
	details, err := s.backend.GetGameDetails(ctx, appid)
	if err != nil {
		return rpc.GameDetails{}, fmt.Errorf("failed to get game details for %s: %w", appid, err)
	}
	return details, nil
}

// Set assigns a manual tag.
func (s *Service) Set(ctx context.Context, appid, raw string) (library.Tag, error) {
	tag, err := library.ParseManualTag(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, raw)
	}
	if err := s.backend.SetManualTag(ctx, appid, tag); err != nil {
		return "", fmt.Errorf("failed to set tag for %s: %w", appid, err)
	}
	s.logger.Info("Manual tag set", zap.String("appid", appid), zap.String("tag", string(tag)))
	return tag, nil
}

// Reset returns a game to its automatically computed tag.
func (s *Service) Reset(ctx context.Context, appid string) error {
	if err := s.backend.ResetToAutoTag(ctx, appid); err != nil {
		return fmt.Errorf("failed to reset tag for %s: %w", appid, err)
	}
	s.logger.Info("Tag reset to automatic", zap.String("appid", appid))
	return nil
}

// Remove clears the tag of a game.
func (s *Service) Remove(ctx context.Context, appid string) error {
	if err := s.backend.RemoveTag(ctx, appid); err != nil {
		return fmt.Errorf("failed to remove tag for %s: %w", appid, err)
	}
	s.logger.Info("Tag removed", zap.String("appid", appid))
	return nil
}
