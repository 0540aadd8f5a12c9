package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/tempo/internal/cli"
	"github.com/alexanderramin/tempo/internal/config"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	segmentRepo := repository.NewSQLiteSegmentRepo(database)
	mappingRepo := repository.NewSQLiteMappingRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	labelRepo := repository.NewSQLiteLabelRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.Observer
	if os.Getenv("TEMPO_LOG") != "" {
		observers = append(observers, service.NewLogObserver(os.Stderr))
	}

	taxonomy := service.NewTaxonomyService(projectRepo, categoryRepo, labelRepo, prefRepo)
	if err := seedDayStart(context.Background(), prefRepo, taxonomy, cfg); err != nil {
		return err
	}

	loc := time.Local
	app := &cli.App{
		Entries:   service.NewEntryService(entryRepo, uow),
		DayView:   service.NewDayViewService(entryRepo, taxonomy, loc),
		Reconcile: service.NewReconcileService(entryRepo, segmentRepo, mappingRepo, taxonomy, uow, loc, observers...),
		Activity:  service.NewActivityService(segmentRepo, uow, observers...),
		Mappings:  service.NewMappingService(mappingRepo, segmentRepo, entryRepo, taxonomy, uow, loc),
		Taxonomy:  taxonomy,
		Reports:   service.NewReportService(entryRepo, taxonomy, loc),
		Export:    service.NewExportService(entryRepo),

		UserID:      cfg.User,
		ActivityLog: cfg.ActivityLog,
		Loc:         loc,
	}

	return cli.NewRootCmd(app).Execute()
}

// seedDayStart copies the configured day-start hour into the preference
// store the first time the binary runs for this user. After that the stored
// preference wins, so edits go through the preference rather than the file.
func seedDayStart(ctx context.Context, prefs repository.PreferenceRepo, taxonomy service.TaxonomyService, cfg *config.Config) error {
	_, err := prefs.Get(ctx, cfg.User, domain.PrefDayStartHour)
	if errors.Is(err, repository.ErrNotFound) {
		return taxonomy.SetDayStartHour(ctx, cfg.User, cfg.DayStartHour)
	}
	return err
}
