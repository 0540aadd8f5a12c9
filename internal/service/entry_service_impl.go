package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type entryService struct {
	entries repository.EntryRepo
	uow     db.UnitOfWork
}

func NewEntryService(entries repository.EntryRepo, uow db.UnitOfWork) EntryService {
	return &entryService{entries: entries, uow: uow}
}

func (s *entryService) Create(ctx context.Context, e *domain.Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Kind == "" {
		e.Kind = domain.KindPlan
	}
	if err := validateEntry(e); err != nil {
		return err
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEntryRepo(tx).Create(ctx, e)
	})
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Entry, error) {
	return s.entries.ListRange(ctx, userID, from, to)
}

func (s *entryService) ListProvisional(ctx context.Context, userID string) ([]*domain.Entry, error) {
	return s.entries.ListProvisional(ctx, userID)
}

func (s *entryService) Update(ctx context.Context, e *domain.Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEntryRepo(tx).Update(ctx, e)
	})
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	return s.entries.SoftDelete(ctx, id, time.Now().UTC())
}

func (s *entryService) Confirm(ctx context.Context, id string) error {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !e.Provisional {
		return fmt.Errorf("entry %s is not provisional", id)
	}
	e.Provisional = false
	e.UpdatedAt = time.Now().UTC()
	return s.entries.Update(ctx, e)
}

func validateEntry(e *domain.Entry) error {
	if e.UserID == "" {
		return fmt.Errorf("entry requires a user")
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("entry requires start and end: %w", domain.ErrMissingTimeValue)
	}
	switch e.Kind {
	case domain.KindPlan, domain.KindActual, domain.KindShared:
	default:
		return fmt.Errorf("entry kind %q: %w", e.Kind, domain.ErrUnexpectedEntryKind)
	}
	return nil
}
