package libsync

import (
	"context"
	"errors"
	"time"

	"progress-tracker/core/metrics"
	"progress-tracker/core/utils"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var errNothingDiscovered = errors.New("no games discovered")

// Discovery is the outcome of retry-gated discovery.
type Discovery struct {
	IDs []string
	// Degraded is set when the host never produced a listing and the backend's
	// own game list was used instead.
	Degraded bool
	// Retries is the number of discovery re-runs after an empty result.
	Retries int
}

// Discoverer enumerates owned games.
type Discoverer struct {
	source   DataSource
	backend  Backend
	delays   []time.Duration
	logger   *zap.Logger
	recorder *metrics.Recorder
}

// NewDiscoverer creates a discoverer that waits on delays between empty attempts.
func NewDiscoverer(source DataSource, backend Backend, delays []time.Duration, logger *zap.Logger, recorder *metrics.Recorder) *Discoverer {
	return &Discoverer{
		source:   source,
		backend:  backend,
		delays:   delays,
		logger:   logger,
		recorder: recorder,
	}
}

// DiscoverAll tries each strategy in order and returns the first non-empty
// listing. An empty result means the host is not ready yet.
func (d *Discoverer) DiscoverAll(ctx context.Context) []string {
	for _, strategy := range d.source.DiscoveryStrategies() {
		if strategy.Discover == nil {
			continue
		}
		raw, err := strategy.Discover(ctx)
		if err != nil {
			d.logger.Debug("Discovery strategy skipped", zap.String("strategy", strategy.Name), zap.Error(err))
			continue
		}
		ids := utils.AppIDs(raw)
		if len(ids) == 0 {
			continue
		}
		d.logger.Debug("Discovery strategy succeeded", zap.String("strategy", strategy.Name), zap.Int("count", len(ids)))
		return ids
	}
	return []string{}
}

// DiscoverWithRetry re-runs DiscoverAll on the fixed delay schedule while it
// comes back empty. When the schedule is exhausted the backend game list is
// queried once. Only context cancellation produces an error.
func (d *Discoverer) DiscoverWithRetry(ctx context.Context) (Discovery, error) {
	var result Discovery

	op := func() ([]string, error) {
		ids := d.DiscoverAll(ctx)
		if len(ids) == 0 {
			return nil, errNothingDiscovered
		}
		return ids, nil
	}
	notify := func(_ error, delay time.Duration) {
		result.Retries++
		d.recorder.RecordDiscoveryRetry()
		d.logger.Info("No games discovered yet, retrying",
			zap.Int("attempt", result.Retries),
			zap.Duration("delay", delay),
		)
	}

	ids, err := backoff.RetryNotifyWithData(op, backoff.WithContext(newSchedule(d.delays), ctx), notify)
	if err == nil {
		result.IDs = ids
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	result.Degraded = true
	d.recorder.RecordDegraded()
	result.IDs = []string{}

	list, err := d.backend.GetAllGames(ctx)
	switch {
	case err != nil:
		d.logger.Warn("Discovery degraded: backend game list unavailable", zap.Error(err))
	case !list.Success:
		d.logger.Warn("Discovery degraded: backend game list failed", zap.String("error", list.Error))
	default:
		result.IDs = backendIDs(list.Games)
		d.logger.Warn("Discovery degraded: using backend game list", zap.Int("count", len(result.IDs)))
	}
	return result, nil
}

// schedule is a fixed, finite delay sequence.
type schedule struct {
	delays []time.Duration
	next   int
}

func newSchedule(delays []time.Duration) *schedule {
	return &schedule{delays: delays}
}

// NextBackOff implements backoff.BackOff.
func (s *schedule) NextBackOff() time.Duration {
	if s.next >= len(s.delays) {
		return backoff.Stop
	}
	d := s.delays[s.next]
	s.next++
	return d
}

// Reset implements backoff.BackOff.
func (s *schedule) Reset() {
	s.next = 0
}
