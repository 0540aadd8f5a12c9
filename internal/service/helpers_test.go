package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/alexanderramin/tempo/internal/testutil"
)

// testEnv wires every service against one shared in-memory database.
type testEnv struct {
	db       *sql.DB
	entries  service.EntryService
	dayView  service.DayViewService
	recon    service.ReconcileService
	activity service.ActivityService
	mappings service.MappingService
	taxonomy service.TaxonomyService
	reports  service.ReportService
	export   service.ExportService

	entryRepo   repository.EntryRepo
	segmentRepo repository.SegmentRepo
	mappingRepo repository.MappingRepo
	projectRepo repository.ProjectRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	entryRepo := repository.NewSQLiteEntryRepo(database)
	segmentRepo := repository.NewSQLiteSegmentRepo(database)
	mappingRepo := repository.NewSQLiteMappingRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	labelRepo := repository.NewSQLiteLabelRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)

	taxonomy := service.NewTaxonomyService(projectRepo, categoryRepo, labelRepo, prefRepo)

	return &testEnv{
		db:       database,
		entries:  service.NewEntryService(entryRepo, uow),
		dayView:  service.NewDayViewService(entryRepo, taxonomy, time.UTC),
		recon:    service.NewReconcileService(entryRepo, segmentRepo, mappingRepo, taxonomy, uow, time.UTC),
		activity: service.NewActivityService(segmentRepo, uow),
		mappings: service.NewMappingService(mappingRepo, segmentRepo, entryRepo, taxonomy, uow, time.UTC),
		taxonomy: taxonomy,
		reports:  service.NewReportService(entryRepo, taxonomy, time.UTC),
		export:   service.NewExportService(entryRepo),

		entryRepo:   entryRepo,
		segmentRepo: segmentRepo,
		mappingRepo: mappingRepo,
		projectRepo: projectRepo,
	}
}

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}
