package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type exportService struct {
	entries repository.EntryRepo
}

func NewExportService(entries repository.EntryRepo) ExportService {
	return &exportService{entries: entries}
}

var csvHeader = []string{
	"id", "kind", "start", "end", "summary",
	"project_id", "category_id", "label_ids", "provisional",
}

func (s *exportService) ExportCSV(ctx context.Context, w io.Writer, userID string, from, to time.Time) (int, error) {
	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			string(e.Kind),
			formatEntryTime(e.Start),
			formatEntryTime(e.End),
			e.Summary,
			e.ProjectID,
			e.CategoryID,
			strings.Join(e.LabelIDs, ";"),
			strconv.FormatBool(e.Provisional),
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}
	return len(entries), nil
}

func formatEntryTime(et domain.EntryTime) string {
	if et.DateTime != nil {
		return et.DateTime.UTC().Format(time.RFC3339)
	}
	return et.Date
}
