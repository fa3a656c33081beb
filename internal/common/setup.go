package common

import (
	"log"
	"strings"

	"demobank-go/internal/ledger"
	"demobank-go/internal/metrics"
	"demobank-go/internal/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Try to load .env file - if it doesn't exist, that's okay
	// Environment variables can be set via other means (shell export, docker, etc.)
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	}
}

type Services struct {
	Ledger  *ledger.Service
	Metrics *metrics.Collector
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeServices builds the ledger and metrics collector and applies
// the configured seeding (built-in demo set and/or a YAML seed file).
func InitializeServices(cfg *models.Config) (*Services, error) {
	svc := ledger.NewService(cfg.Ledger)
	collector := metrics.NewCollector()

	if cfg.Seed.LoadDemoData {
		zap.L().Info("Loading built-in demo data")
		if err := svc.AddDemoData(); err != nil {
			return nil, err
		}
	}

	if cfg.Seed.SeedFile != "" {
		zap.L().Info("Loading seed file", zap.String("file", cfg.Seed.SeedFile))
		seed, err := LoadSeedConfig(cfg.Seed.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := ApplySeed(svc, seed); err != nil {
			return nil, err
		}
	}

	users, accounts := svc.Stats()
	collector.SetEntityCounts(users, accounts)
	zap.L().Info("Ledger initialized",
		zap.Int("users", users),
		zap.Int("accounts", accounts))

	return &Services{
		Ledger:  svc,
		Metrics: collector,
	}, nil
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
