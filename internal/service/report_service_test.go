package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestReport_ProjectsSumActualTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p1, err := env.taxonomy.CreateProject(ctx, "Compiler")
	require.NoError(t, err)
	p2, err := env.taxonomy.CreateProject(ctx, "Ops")
	require.NoError(t, err)

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("a", day(9, 0), day(11, 0),
		testutil.WithKind(domain.KindActual), testutil.WithProject(p1.ID))))
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("b", day(11, 0), day(12, 0),
		testutil.WithKind(domain.KindActual), testutil.WithProject(p2.ID))))
	// Plans never count toward actual usage.
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("plan", day(9, 0), day(17, 0),
		testutil.WithProject(p1.ID))))

	rows, err := env.reports.Usage(ctx, testutil.TestUserID, day(0, 0), day(23, 59), service.ReportByProject)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Compiler", rows[0].Name)
	assert.Equal(t, 2*time.Hour, rows[0].Duration)
	assert.Equal(t, "Ops", rows[1].Name)
	assert.Equal(t, time.Hour, rows[1].Duration)
}

func TestReport_LabelsFanOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l1, err := env.taxonomy.CreateLabel(ctx, "deep")
	require.NoError(t, err)
	l2, err := env.taxonomy.CreateLabel(ctx, "solo")
	require.NoError(t, err)

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("focus", day(9, 0), day(10, 0),
		testutil.WithKind(domain.KindActual), testutil.WithLabels(l1.ID, l2.ID))))

	rows, err := env.reports.Usage(ctx, testutil.TestUserID, day(0, 0), day(23, 59), service.ReportByLabel)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, time.Hour, rows[0].Duration)
	assert.Equal(t, time.Hour, rows[1].Duration)
}

func TestReport_ClipsToWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.taxonomy.CreateProject(ctx, "P")
	require.NoError(t, err)
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("spill", day(9, 0), day(11, 0),
		testutil.WithKind(domain.KindActual), testutil.WithProject(p.ID))))

	rows, err := env.reports.Usage(ctx, testutil.TestUserID, day(10, 0), day(23, 59), service.ReportByProject)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Hour, rows[0].Duration)
}

func TestReport_UnknownDimensionFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.Usage(context.Background(), testutil.TestUserID,
		day(0, 0), day(23, 59), service.ReportDimension("weeks"))
	assert.Error(t, err)
}

func TestExportCSV_WritesHeaderAndRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("Standup", day(9, 0), day(9, 30))))

	var buf bytes.Buffer
	n, err := env.export.ExportCSV(ctx, &buf, testutil.TestUserID, day(0, 0), day(23, 59))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "id,kind,start,end,summary")
	assert.Contains(t, lines[1], "Standup")
	assert.Contains(t, lines[1], "2026-03-14T09:00:00Z")
}

func TestExportCSV_EmptyRangeStillWritesHeader(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	n, err := env.export.ExportCSV(context.Background(), &buf, testutil.TestUserID, day(0, 0), day(23, 59))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), "id,kind,start,end")
}

func TestReport_EmptyWindow(t *testing.T) {
	env := newTestEnv(t)

	rows, err := env.reports.Usage(context.Background(), testutil.TestUserID,
		day(0, 0), day(23, 59), service.ReportByCategory)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
