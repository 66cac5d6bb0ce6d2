package cmd

import (
	"fmt"

	"proxyctl/config"
	"proxyctl/core"
	"proxyctl/database"
	"proxyctl/logger"
	"proxyctl/sysproxy"
	"proxyctl/ui"
)

// session holds what a single invocation runs against: the configured store,
// the optional journal database and the configurator built on top of them.
type session struct {
	db           *database.DB
	backend      string
	configurator *core.Configurator
}

func (s *session) open(opts *rootOptions) error {
	if err := config.Init(opts.cfgFile, config.Overrides{
		StoreBackend: opts.store,
		DBPath:       opts.dbPath,
		LogPath:      opts.logPath,
		LogLevel:     opts.logLevel,
	}); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig

	if err := logger.InitGlobalLoggers(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if config.ConfigFileUsed != "" {
		logger.Debug("Using config file: %s", config.ConfigFileUsed)
	}

	s.backend = cfg.Store.Backend
	if s.backend == config.BackendSQLite || cfg.History.Enabled {
		db, err := database.Open(cfg.Database.Path)
		switch {
		case err == nil:
			s.db = db
			logger.Debug("Database opened at %s", cfg.Database.Path)
		case s.backend == config.BackendSQLite:
			return err
		default:
			logger.Warn("History journal disabled, database unavailable: %v", err)
		}
	}

	var store core.SettingsStore
	switch s.backend {
	case config.BackendRegistry:
		registryStore, err := sysproxy.NewRegistryStore()
		if err != nil {
			return err
		}
		store = registryStore
	case config.BackendSQLite:
		store = s.db
	}

	if cfg.History.Enabled && s.db != nil {
		store = database.NewJournaledStore(store, s.db, s.backend)
	}

	var notifier core.Notifier = sysproxy.NopNotifier{}
	if cfg.Notify.Enabled {
		notifier = sysproxy.NewNotifier()
	}

	s.configurator = core.NewConfigurator(store, notifier)
	logger.Info("Session ready: backend=%s history=%t notify=%t", s.backend, s.db != nil && cfg.History.Enabled, cfg.Notify.Enabled)
	return nil
}

func (s *session) close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Error("Failed to close database: %v", err)
		}
		s.db = nil
	}
}

// report prints an operation error and decides whether it fails the process.
// Warnings and informational outcomes exit normally.
func report(p *ui.Printer, err error) error {
	if err == nil {
		return nil
	}
	logger.Debug("Operation returned: %v", err)
	if p.Failure(err) == ui.SeverityError {
		return reportedError{err: err}
	}
	return nil
}
