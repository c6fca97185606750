package cmd

import (
	"context"

	"progress-tracker/core/config"
	"progress-tracker/core/database"
	"progress-tracker/core/logger"
	"progress-tracker/core/metrics"
	"progress-tracker/core/rpc"
	"progress-tracker/core/steamapi"
	"progress-tracker/core/storage"
	"progress-tracker/feature/history"
	"progress-tracker/feature/hostcache"
	"progress-tracker/feature/libsync"

	"go.uber.org/zap"
)

// components is the object graph shared by the server and the CLI.
type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder

	backend *rpc.Backend
	steam   *steamapi.Client
	objects storage.Client
	cache   *hostcache.Store

	reconciler *libsync.Reconciler
	toasts     *libsync.ToastBoard
	service    *libsync.Service
	history    *history.Store
}

// buildComponents wires the sync pipeline. Optional dependencies (object
// storage, database, snapshot file) are skipped with a warning when they are
// unavailable.
func buildComponents(ctx context.Context, cfg *config.Config, logg *zap.Logger) *components {
	c := &components{
		cfg:     cfg,
		logger:  logg,
		backend: rpc.NewBackend(rpc.NewHTTPCaller(cfg.RPC)),
		steam:   steamapi.NewClient(cfg.Steam),
		cache:   hostcache.NewStore(logger.Component(logg, "hostcache")),
		toasts:  libsync.NewToastBoard(),
	}
	if cfg.Metrics.Enabled {
		c.recorder = metrics.NewRecorder()
	}

	c.connectStorage(ctx)
	c.loadSnapshotFile()
	c.connectHistory(ctx)

	source := hostcache.NewSource(c.cache, c.steam)
	discoverer := libsync.NewDiscoverer(source, c.backend, cfg.Sync.DiscoveryDelays(), logger.Component(logg, "discovery"), c.recorder)
	collector := libsync.NewCollector(source, cfg.Sync.RemoteTimeout(), logger.Component(logg, "collector"), c.recorder)
	orchestrator := libsync.NewOrchestrator(c.backend, discoverer, collector, logger.Component(logg, "sync"), c.recorder)

	c.reconciler = libsync.NewReconciler(c.backend, libsync.ReconcilerConfig{
		ActiveInterval: cfg.Sync.PollActive(),
		IdleInterval:   cfg.Sync.PollIdle(),
		MessageTTL:     cfg.Sync.MessageTTL(),
	}, logger.Component(logg, "reconciler"))

	c.service = libsync.NewService(orchestrator, c.reconciler, c.toasts, c.journal(), logger.Component(logg, "sync"))
	return c
}

func (c *components) connectStorage(ctx context.Context) {
	if !c.cfg.Storage.Enabled {
		return
	}

	client, err := storage.NewClient(c.cfg.Storage)
	if err != nil {
		c.logger.Warn("Object storage unavailable", zap.Error(err))
		return
	}
	if err := storage.EnsureBucket(ctx, client, c.cfg.Storage.Bucket); err != nil {
		c.logger.Warn("Object storage unavailable", zap.Error(err))
		return
	}
	c.objects = client

	c.cache.WithObjectStore(client, c.cfg.Storage.Bucket, c.cfg.Storage.SnapshotObject)
	if err := c.cache.LoadObject(ctx); err != nil {
		c.logger.Info("No stored host snapshot", zap.String("object", c.cfg.Storage.SnapshotObject), zap.Error(err))
		return
	}
	c.logger.Info("Loaded host snapshot from object storage", zap.Int("apps", c.cache.Stats().Apps))
}

func (c *components) loadSnapshotFile() {
	path := c.cfg.Sync.SnapshotPath
	if path == "" {
		return
	}
	snap, err := hostcache.LoadFile(path)
	if err != nil {
		c.logger.Warn("Failed to load host snapshot file", zap.String("path", path), zap.Error(err))
		return
	}
	c.cache.Replace(snap)
	c.logger.Info("Loaded host snapshot file", zap.String("path", path), zap.Int("apps", snap.Stats().Apps))
}

func (c *components) connectHistory(ctx context.Context) {
	if !c.cfg.Database.Enabled {
		return
	}
	db, err := database.Connect(c.cfg.Database)
	if err != nil {
		c.logger.Warn("Run history disabled", zap.Error(err))
		return
	}
	store := history.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		c.logger.Warn("Run history disabled", zap.Error(err))
		return
	}
	c.history = store
}

// journal returns nil when neither the database nor object storage is available.
func (c *components) journal() libsync.Journal {
	var exporter *history.Exporter
	if c.objects != nil {
		exporter = history.NewExporter(c.objects, c.cfg.Storage.Bucket, c.cfg.Storage.ReportPrefix, c.cfg.Storage.ReportRetention, logger.Component(c.logger, "history"))
	}
	if c.history == nil && exporter == nil {
		return nil
	}
	return history.NewJournal(c.history, exporter, logger.Component(c.logger, "history"))
}
