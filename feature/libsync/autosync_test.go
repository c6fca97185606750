package libsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"progress-tracker/core/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedRunner struct {
	mu       sync.Mutex
	results  []library.SyncSummary
	triggers []string
}

func (r *scriptedRunner) Sync(_ context.Context, trigger string, onProgress ProgressFunc) library.SyncSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.triggers = append(r.triggers, trigger)
	if onProgress != nil {
		onProgress(1, 1, "Game 1")
	}
	res := r.results[0]
	if len(r.results) > 1 {
		r.results = r.results[1:]
	}
	return res
}

type recordingNotifier struct {
	toasts []Toast
}

func (n *recordingNotifier) Notify(t Toast) {
	n.toasts = append(n.toasts, t)
}

func (n *recordingNotifier) messages() []string {
	out := make([]string, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, t.Message)
	}
	return out
}

func quickAutoSync(runner Runner, notifier Notifier) *AutoSync {
	return NewAutoSync(runner, notifier, AutoSyncConfig{Delay: time.Millisecond, RetryDelay: time.Millisecond}, zap.NewNop())
}

func TestAutoSync_Success(t *testing.T) {
	tests := []struct {
		name    string
		summary library.SyncSummary
		want    []string
	}{
		{"NewTags", library.SyncSummary{Success: true, Total: 3, Synced: 3, NewTags: 2}, []string{"Synced 3 games. 2 new tags added!"}},
		{"OneNewTag", library.SyncSummary{Success: true, Total: 3, Synced: 3, NewTags: 1}, []string{"Synced 3 games. 1 new tag added!"}},
		{"NoNewTags", library.SyncSummary{Success: true, Total: 2, Synced: 2}, []string{"Synced 2 games. Open plugin to see your library."}},
		{"NothingSynced", library.SyncSummary{Success: true}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &scriptedRunner{results: []library.SyncSummary{tt.summary}}
			notifier := &recordingNotifier{}

			got := quickAutoSync(runner, notifier).Run(context.Background())
			assert.Equal(t, tt.summary, got)
			assert.Equal(t, []string{TriggerStartup}, runner.triggers)
			assert.Equal(t, tt.want, notifier.messages())
		})
	}
}

func TestAutoSync_RetriesOnce(t *testing.T) {
	runner := &scriptedRunner{results: []library.SyncSummary{
		library.Failed(nil),
		{Success: true, Total: 4, Synced: 4},
	}}
	notifier := &recordingNotifier{}

	got := quickAutoSync(runner, notifier).Run(context.Background())
	assert.True(t, got.Success)
	assert.Equal(t, []string{TriggerStartup, TriggerStartupRetry}, runner.triggers)
	assert.Equal(t, []string{
		"Initial sync failed: Unknown error. Will retry...",
		"Library synced: 4 games processed",
	}, notifier.messages())
}

func TestAutoSync_RetryFails(t *testing.T) {
	runner := &scriptedRunner{results: []library.SyncSummary{
		{Success: false, Error: "backend offline"},
	}}
	notifier := &recordingNotifier{}

	got := quickAutoSync(runner, notifier).Run(context.Background())
	assert.False(t, got.Success)
	assert.Len(t, runner.triggers, 2)
	require.Len(t, notifier.toasts, 2)
	assert.Equal(t, "Initial sync failed: backend offline. Will retry...", notifier.toasts[0].Message)
	assert.Equal(t, "Auto-sync failed. Please sync manually from settings.", notifier.toasts[1].Message)
	assert.Equal(t, 8*time.Second, notifier.toasts[1].Duration)
}

func TestAutoSync_Cancelled(t *testing.T) {
	runner := &scriptedRunner{results: []library.SyncSummary{{Success: true}}}
	a := NewAutoSync(runner, nil, AutoSyncConfig{Delay: time.Hour}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := a.Run(ctx)
	assert.False(t, got.Success)
	assert.Empty(t, runner.triggers)
}

func TestToastBoard(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewToastBoard()
	b.now = func() time.Time { return now }

	_, ok := b.Latest()
	assert.False(t, ok)

	b.Notify(Toast{Message: "hi", Duration: 5 * time.Second})
	toast, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, "hi", toast.Message)
	assert.Equal(t, now.Add(5*time.Second), toast.ExpiresAt)

	now = now.Add(6 * time.Second)
	_, ok = b.Latest()
	assert.False(t, ok)
}

func TestNotifiers_FanOut(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	Notifiers{a, LogNotifier{Logger: zap.NewNop()}, b}.Notify(Toast{Message: "Library synced: 3 games processed"})

	assert.Equal(t, []string{"Library synced: 3 games processed"}, a.messages())
	assert.Equal(t, a.messages(), b.messages())
}
