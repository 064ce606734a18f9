package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	eshopapp "github.com/euroweb/backoffice/internal/application/eshop"
	"github.com/euroweb/backoffice/internal/infrastructure/config"
	"github.com/euroweb/backoffice/internal/infrastructure/importfile"
	"github.com/euroweb/backoffice/internal/infrastructure/logger"
	"github.com/euroweb/backoffice/internal/infrastructure/persistence"
	"github.com/euroweb/backoffice/internal/infrastructure/series"
	"go.uber.org/zap"
)

func main() {
	var (
		batchPath   string
		countryCode string
		logLevel    string
	)

	flag.StringVar(&batchPath, "file", "", "Path to the JSON order batch file")
	flag.StringVar(&countryCode, "country", "", "ISO country code of the batch (defaults to import.country_code)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if batchPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: import -file <batch.json> [-country SK]")
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if countryCode == "" {
		countryCode = cfg.Import.CountryCode
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	models, err := importfile.NewLoader().Load(batchPath)
	if err != nil {
		log.Fatal("Failed to load batch file", zap.String("file", batchPath), zap.Error(err))
	}

	resolver := series.NewPrefixResolver(
		persistence.NewGormProductSeriesRepository(db.DB),
		cfg.Import.SeriesPrefixes,
	)
	importer := eshopapp.NewOrderImporter(
		persistence.NewGormImportTransactionScope(db.DB),
		resolver,
		log,
	)

	if err := importer.Import(context.Background(), models, countryCode); err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	log.Info("Import completed",
		zap.Int("orders", len(models)),
		zap.String("country", countryCode),
	)
}
