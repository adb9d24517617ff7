// Package wire provides dependency injection for the htscan application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/htscan/internal/adapters/cli"
	"github.com/example/htscan/internal/adapters/httpapi"
	"github.com/example/htscan/internal/adapters/logging"
	"github.com/example/htscan/internal/adapters/sqlite"
	"github.com/example/htscan/internal/app"
	"github.com/example/htscan/internal/config"
	"github.com/example/htscan/internal/db"
	"github.com/example/htscan/internal/ports/primary"
	"github.com/example/htscan/internal/ports/secondary"
)

var (
	cfg           config.Config
	queueService  primary.QueueService
	syncService   primary.SyncService
	masterService primary.MasterService
	auditWriter   secondary.AuditWriter
	clock         secondary.Clock
	once          sync.Once
)

// Cfg returns the loaded configuration.
func Cfg() config.Config {
	once.Do(initServices)
	return cfg
}

// QueueService returns the singleton QueueService instance.
func QueueService() primary.QueueService {
	once.Do(initServices)
	return queueService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// MasterService returns the singleton MasterService instance.
func MasterService() primary.MasterService {
	once.Do(initServices)
	return masterService
}

// AuditWriter returns the singleton audit sink.
func AuditWriter() secondary.AuditWriter {
	once.Do(initServices)
	return auditWriter
}

// Clock returns the application clock.
func Clock() secondary.Clock {
	once.Do(initServices)
	return clock
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	auditWriter = logging.NewAuditWriter(auditOutput(), cfg.Audit.Level)
	clock = secondary.SystemClock{}

	// Secondary adapters
	store := sqlite.NewStateStore(database)
	collector := httpapi.NewCollectorClient(
		cfg.Collector.BaseURL,
		cfg.Collector.ScannedDataPath,
		cfg.Collector.CheckMasterPath,
		time.Duration(cfg.Collector.ProbeTimeoutSeconds)*time.Second,
	)
	signal := httpapi.InterfaceSignal{}

	// Services (primary ports implementation)
	queueService = app.NewQueueService(store, auditWriter, clock)
	syncService = app.NewSyncService(collector, signal, store, auditWriter, clock)
	masterService = app.NewMasterService(store, auditWriter, clock)
}

// auditOutput opens the configured audit sink, falling back to stderr.
func auditOutput() io.Writer {
	if cfg.Audit.Path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(cfg.Audit.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// DataAdapter returns a new DataAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DataAdapter() *cliadapter.DataAdapter {
	return DataAdapterWithOutput(os.Stdout)
}

// DataAdapterWithOutput returns a new DataAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func DataAdapterWithOutput(out io.Writer) *cliadapter.DataAdapter {
	once.Do(initServices)
	return cliadapter.NewDataAdapter(queueService, out)
}

// SyncAdapter returns a new SyncAdapter writing to stdout.
func SyncAdapter() *cliadapter.SyncAdapter {
	return SyncAdapterWithOutput(os.Stdout)
}

// SyncAdapterWithOutput returns a new SyncAdapter writing to the given
// output.
func SyncAdapterWithOutput(out io.Writer) *cliadapter.SyncAdapter {
	once.Do(initServices)
	return cliadapter.NewSyncAdapter(syncService, queueService, out)
}
