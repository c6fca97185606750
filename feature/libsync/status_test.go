package libsync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReconciler_AdoptsRemoteSyncAndCompletes(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 2, 5), progress(false, 5, 5), progress(false, 0, 0)}}
	r := NewReconciler(backend, ReconcilerConfig{MessageTTL: time.Hour}, zap.NewNop())

	var completions int
	r.OnComplete(func() { completions++ })
	ctx := context.Background()

	require.NoError(t, r.Poll(ctx))
	st := r.Status()
	assert.True(t, st.Syncing)
	assert.Equal(t, "Syncing: 2/5 games", st.Message)
	assert.Equal(t, defaultActiveInterval, r.Interval())

	require.NoError(t, r.Poll(ctx))
	st = r.Status()
	assert.False(t, st.Syncing)
	assert.Equal(t, MessageComplete, st.Message)
	assert.Equal(t, defaultIdleInterval, r.Interval())

	require.NoError(t, r.Poll(ctx))
	assert.Equal(t, 1, completions)
	assert.Equal(t, MessageComplete, r.Status().Message)
}

func TestReconciler_NoMessageWithoutTotal(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 0, 0), progress(false, 0, 0)}}
	r := NewReconciler(backend, ReconcilerConfig{}, zap.NewNop())

	require.NoError(t, r.Poll(context.Background()))
	require.NoError(t, r.Poll(context.Background()))
	st := r.Status()
	assert.False(t, st.Syncing)
	assert.Equal(t, "Syncing: 0/0 games", st.Message)
}

func TestReconciler_WaitingForBackend(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 1, 3), progress(false, 0, 3)}}
	r := NewReconciler(backend, ReconcilerConfig{}, zap.NewNop())

	require.NoError(t, r.Poll(context.Background()))
	r.SetWaitingForBackend(true)
	require.NoError(t, r.Poll(context.Background()))
	assert.True(t, r.Status().Syncing)
	assert.Equal(t, "Syncing: 1/3 games", r.Status().Message)

	r.SetWaitingForBackend(false)
	require.NoError(t, r.Poll(context.Background()))
	assert.False(t, r.Status().Syncing)
	assert.Equal(t, MessageComplete, r.Status().Message)
}

func TestReconciler_PollKeepsLocalRunSyncing(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(false, 0, 5)}}
	r := NewReconciler(backend, ReconcilerConfig{MessageTTL: time.Hour}, zap.NewNop())

	r.BeginLocal()
	r.SetWaitingForBackend(true)
	require.NoError(t, r.Poll(context.Background()))
	st := r.Status()
	assert.True(t, st.Syncing)
	assert.True(t, st.WaitingForBackend)
	assert.Equal(t, MessageStarting, st.Message)

	r.Progress(1, 5, "Portal")
	assert.False(t, r.Status().WaitingForBackend)
	require.NoError(t, r.Poll(context.Background()))
	st = r.Status()
	assert.True(t, st.Syncing)
	assert.Equal(t, "Syncing 1/5: Portal", st.Message)

	r.EndLocal(library.SyncSummary{Success: true, Total: 5, Synced: 5})
	require.NoError(t, r.Poll(context.Background()))
	st = r.Status()
	assert.False(t, st.Syncing)
	assert.Equal(t, "Sync complete! 5 games updated.", st.Message)
}

func TestReconciler_RemoteSyncClearsWaiting(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 1, 3)}}
	r := NewReconciler(backend, ReconcilerConfig{}, zap.NewNop())

	r.SetWaitingForBackend(true)
	require.NoError(t, r.Poll(context.Background()))
	assert.False(t, r.Status().WaitingForBackend)
}

func TestReconciler_IgnoresFailedPolls(t *testing.T) {
	backend := &fakeBackend{progressErr: errors.New("unreachable")}
	r := NewReconciler(backend, ReconcilerConfig{}, zap.NewNop())
	r.BeginLocal()

	assert.Error(t, r.Poll(context.Background()))
	st := r.Status()
	assert.True(t, st.Syncing)
	assert.Equal(t, "unreachable", st.LastError)

	backend = &fakeBackend{progress: []rpc.SyncProgress{{Success: false}}}
	r = NewReconciler(backend, ReconcilerConfig{}, zap.NewNop())
	r.BeginLocal()
	require.NoError(t, r.Poll(context.Background()))
	assert.True(t, r.Status().Syncing)
}

func TestReconciler_MessageExpires(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 1, 1), progress(false, 1, 1)}}
	r := NewReconciler(backend, ReconcilerConfig{MessageTTL: 20 * time.Millisecond}, zap.NewNop())

	require.NoError(t, r.Poll(context.Background()))
	require.NoError(t, r.Poll(context.Background()))
	assert.Equal(t, MessageComplete, r.Status().Message)

	assert.Eventually(t, func() bool { return r.Status().Message == "" }, time.Second, 5*time.Millisecond)
}

func TestReconciler_NewerMessageSurvivesExpiry(t *testing.T) {
	backend := &fakeBackend{progress: []rpc.SyncProgress{progress(true, 1, 1), progress(false, 1, 1)}}
	r := NewReconciler(backend, ReconcilerConfig{MessageTTL: 20 * time.Millisecond}, zap.NewNop())

	require.NoError(t, r.Poll(context.Background()))
	require.NoError(t, r.Poll(context.Background()))
	r.BeginLocal()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, MessageStarting, r.Status().Message)
}

func TestReconciler_LocalLifecycle(t *testing.T) {
	r := NewReconciler(&fakeBackend{}, ReconcilerConfig{MessageTTL: time.Hour}, zap.NewNop())

	r.BeginLocal()
	assert.True(t, r.Status().Syncing)

	r.Progress(2, 4, "Portal")
	st := r.Status()
	assert.Equal(t, "Syncing 2/4: Portal", st.Message)
	assert.Equal(t, 2, st.Current)

	r.Progress(3, 4, "")
	assert.Equal(t, "Syncing 3/4 games...", r.Status().Message)

	r.EndLocal(library.SyncSummary{Success: true, Total: 4, Synced: 4, NewTags: 2})
	st = r.Status()
	assert.False(t, st.Syncing)
	assert.Equal(t, "Sync complete! 4 games updated, 2 new tags.", st.Message)
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "Sync complete! 3 games updated.", ResultMessage(library.SyncSummary{Success: true, Synced: 3}))
	assert.Equal(t, "Sync error: boom", ResultMessage(library.SyncSummary{Error: "boom"}))
}

type countingSource struct {
	calls atomic.Int32
}

func (c *countingSource) GetSyncProgress(context.Context) (rpc.SyncProgress, error) {
	c.calls.Add(1)
	return rpc.SyncProgress{Success: true}, nil
}

func TestReconciler_StartStop(t *testing.T) {
	src := &countingSource{}
	r := NewReconciler(src, ReconcilerConfig{ActiveInterval: time.Millisecond, IdleInterval: 5 * time.Millisecond}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)
	r.Start(ctx)
	assert.Eventually(t, func() bool { return src.calls.Load() >= 3 }, time.Second, time.Millisecond)

	r.Stop()
	r.Stop()
	time.Sleep(20 * time.Millisecond)
	after := src.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, src.calls.Load())
}
