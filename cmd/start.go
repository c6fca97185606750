package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"progress-tracker/core/config"
	"progress-tracker/core/loader"
	"progress-tracker/core/logger"
	"progress-tracker/core/middleware/auth"
	"progress-tracker/core/middleware/rayid"

	"progress-tracker/feature/history"
	"progress-tracker/feature/hostcache"
	"progress-tracker/feature/libsync"
	"progress-tracker/feature/tags"
	"progress-tracker/feature/watcher"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "progress-tracker/docs/swagger"
)

// @title Progress Tracker API
// @version 1.0
// @description Local bridge between the host UI and the progress tracker backend.
// @host localhost:8787
// @BasePath /

const shutdownTimeout = 5 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bridge server",
	Long: `Starts the HTTP bridge, the sync status reconciler and the page-view
watcher, and schedules the startup sync when auto_sync is enabled.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx := cmd.Context()

		// 3. Wire the sync pipeline
		comps := buildComponents(ctx, cfg, logg)

		pageWatcher := watcher.New(comps.cache, func(ctx context.Context, appid string) error {
			res := comps.service.SyncGame(ctx, appid, libsync.TriggerPageView)
			if !res.Success {
				return fmt.Errorf("failed to sync %s: %s", appid, res.Error)
			}
			return nil
		}, watcher.Config{}, logger.Component(logg, "watcher"))

		comps.reconciler.OnComplete(func() {
			logg.Info("Backend reported sync complete")
		})

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             16 * 1024 * 1024, // host snapshots of large libraries
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(libsync.NewFeature(comps.service))
		mgr.Register(hostcache.NewFeature(comps.cache, logger.Component(logg, "hostcache")))
		mgr.Register(watcher.NewFeature(pageWatcher, true))
		mgr.Register(tags.NewFeature(tags.NewService(comps.backend, logger.Component(logg, "tags"))))
		mgr.Register(history.NewFeature(comps.history, logger.Component(logg, "history")))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id attached
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if comps.recorder != nil {
			app.Get("/metrics", comps.recorder.Handler())
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Run server and background jobs until a signal arrives
		g, gctx := errgroup.WithContext(ctx)

		comps.reconciler.Start(gctx)
		defer comps.reconciler.Stop()
		pageWatcher.Start(gctx)
		defer pageWatcher.Stop()

		g.Go(func() error {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			return app.Listen(cfg.Server.Address())
		})

		g.Go(func() error {
			<-gctx.Done()
			logg.Info("Shutting down server...")
			return app.ShutdownWithTimeout(shutdownTimeout)
		})

		if cfg.Server.AutoSync {
			auto := libsync.NewAutoSync(comps.service, libsync.Notifiers{
				comps.toasts,
				libsync.LogNotifier{Logger: logger.Component(logg, "toast")},
			}, libsync.AutoSyncConfig{
				Delay:      cfg.Sync.StartupDelay(),
				RetryDelay: cfg.Sync.StartupRetryDelay(),
			}, logger.Component(logg, "autosync"))

			g.Go(func() error {
				auto.Run(gctx)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			logg.Error("Server stopped with error", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
