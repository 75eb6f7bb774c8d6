package daemon

import (
	"context"
	"fmt"
	"slices"

	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/archive"
	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/config"
	"github.com/matheus3301/chatters/internal/engine"
	"github.com/matheus3301/chatters/internal/export"
	"github.com/matheus3301/chatters/internal/hooks"
	"github.com/matheus3301/chatters/internal/httpdebug"
	"github.com/matheus3301/chatters/internal/lock"
	"github.com/matheus3301/chatters/internal/logging"
	"github.com/matheus3301/chatters/internal/profile"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile passed to the fx module.
type Params struct {
	Profile    string
	SocketPath string         // optional override for testing; empty = use default
	Config     *config.Config // optional; nil = load the profile's config.toml
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideLock,
			provideBus,
			provideArchive,
			provideStore,
			provideEngine,
			provideHooks,
			provideExporter,
			provideService,
			provideHTTP,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	cfg := p.Config
	if cfg == nil {
		var err error
		if cfg, err = config.LoadOrDefault(profile.ConfigPath(p.Profile)); err != nil {
			return nil, err
		}
	}
	for _, b := range cfg.Backends {
		if err := profile.ValidateName(b.ID); err != nil {
			return nil, fmt.Errorf("backend id: %w", err)
		}
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(profile.LogPath(p.Profile), p.Profile, cfg.LogLevel)
}

func provideLock(lc fx.Lifecycle, p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(profile.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	// Appended first, so released last.
	lc.Append(fx.StopHook(func() {
		if err := l.Release(); err != nil {
			logger.Warn("error releasing lock", zap.Error(err))
		}
	}))
	return l, nil
}

func provideBus() *bus.Bus {
	return bus.New()
}

// provideArchive opens the message archive. It returns nil when the archive
// is disabled.
func provideArchive(p Params, cfg *config.Config, _ *lock.Lock, logger *zap.Logger) (*archive.DB, error) {
	if !cfg.Archive.Enabled {
		logger.Info("archive disabled")
		return nil, nil
	}
	path := cfg.Archive.Path
	if path == "" {
		path = profile.ArchivePath(p.Profile)
	}
	db, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	schema, err := db.UpgradeSchema(logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if schema.Upgraded() {
		logger.Info("archive schema upgraded", zap.Uint("from", schema.From), zap.Uint("to", schema.To))
	}
	logger.Info("archive opened", zap.String("path", db.Path()), zap.Uint("schema", schema.To))
	return db, nil
}

// provideStore builds the conversation store and, with an archive, restores
// it and journals every change back.
func provideStore(lc fx.Lifecycle, cfg *config.Config, db *archive.DB, logger *zap.Logger) (*store.Store, error) {
	if db == nil {
		return store.New(logger), nil
	}
	convs, err := db.Restore(context.Background(), cfg.Archive.RestoreMessages)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore archive: %w", err)
	}
	enabled := make(map[chat.BackendID]bool)
	for _, b := range cfg.Enabled() {
		enabled[chat.BackendID(b.ID)] = true
	}
	convs = slices.DeleteFunc(convs, func(c chat.Conversation) bool { return !enabled[c.ID.Backend] })

	// Receipt times continue after the archived ones even if the wall clock
	// went back while the daemon was down.
	last, err := db.LastReceived(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	journal := archive.NewJournal(db, logger)
	st := store.New(logger, store.WithJournal(journal), store.WithClock(chat.ClockAfter(last)))
	st.Load(convs)
	logger.Info("store restored", zap.Int("conversations", len(convs)))

	lc.Append(fx.StopHook(func() error {
		jerr := journal.Close()
		if err := db.Close(); err != nil && jerr == nil {
			return err
		}
		return jerr
	}))
	return st, nil
}

func provideEngine(p Params, cfg *config.Config, st *store.Store, b *bus.Bus, logger *zap.Logger) (*engine.Engine, error) {
	eng, err := engine.New(st, b, cfg.Engine.Policy(), logger)
	if err != nil {
		return nil, err
	}
	for _, bc := range cfg.Enabled() {
		be, n, err := newBackend(p.Profile, bc, logger)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", bc.ID, err)
		}
		if err := eng.Add(be, n); err != nil {
			return nil, err
		}
		logger.Info("backend registered", zap.String("backend", bc.ID), zap.String("kind", bc.Kind))
	}
	return eng, nil
}

func provideHooks(cfg *config.Config, b *bus.Bus, logger *zap.Logger) *hooks.Runner {
	return hooks.New(cfg.Hooks, b, logger)
}

// provideExporter connects to NATS. It returns nil when no url is configured.
func provideExporter(cfg *config.Config, logger *zap.Logger) (*export.Exporter, error) {
	if cfg.Export.URL == "" {
		return nil, nil
	}
	return export.Connect(cfg.Export, logger)
}

func provideService(p Params, eng *engine.Engine, st *store.Store, db *archive.DB, logger *zap.Logger) *api.Service {
	var search api.Searcher
	if db != nil {
		search = db
	}
	return api.NewService(p.Profile, eng, st, search, logger)
}

// provideHTTP binds the debug listener. It returns nil when no address is configured.
func provideHTTP(cfg *config.Config, eng *engine.Engine, st *store.Store, logger *zap.Logger) (*httpdebug.Server, error) {
	if cfg.HTTP.Addr == "" {
		return nil, nil
	}
	return httpdebug.Listen(cfg.HTTP.Addr, httpdebug.NewRouter(eng, st, logger), logger)
}

type lifecycleDeps struct {
	fx.In

	Server   *Server
	Engine   *engine.Engine
	Store    *store.Store
	Hooks    *hooks.Runner
	Exporter *export.Exporter
	HTTP     *httpdebug.Server
	Logger   *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleDeps) {
	var cancel context.CancelFunc
	var exported chan struct{}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			d.Hooks.Start(ctx)
			if d.Exporter != nil {
				exported = make(chan struct{})
				go func() {
					defer close(exported)
					d.Exporter.Run(ctx, d.Store)
				}()
			}

			// Backends connect in the background; their progress shows up
			// as state changes.
			d.Engine.Start(ctx)

			go func() {
				if err := d.Server.Start(); err != nil {
					d.Logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			if d.HTTP != nil {
				d.HTTP.Serve()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Server.Stop(ctx)
			if d.HTTP != nil {
				if err := d.HTTP.Shutdown(ctx); err != nil {
					d.Logger.Warn("debug listener shutdown", zap.Error(err))
				}
			}
			d.Engine.Stop()
			d.Hooks.Stop()
			if cancel != nil {
				cancel()
			}
			if exported != nil {
				<-exported
				d.Exporter.Close()
			}
			d.Logger.Info("daemon stopped")
			return nil
		},
	})
}
