package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/events"
	"github.com/spec-kit/staff-briefing/internal/repository"
	"github.com/spec-kit/staff-briefing/internal/roster"
	apperrors "github.com/spec-kit/staff-briefing/pkg/util/errorutil"
)

// RosterService imports attendance exports into the roster store.
type RosterService struct {
	repo       repository.AttendanceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// RosterDependencies bundles collaborators.
type RosterDependencies struct {
	AttendanceRepo repository.AttendanceRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	BatchID        string   `json:"batch_id"`
	Records        int64    `json:"records"`
	Dates          []string `json:"dates"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// NewRosterService creates the service.
func NewRosterService(deps RosterDependencies) *RosterService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{repo: deps.AttendanceRepo, dispatcher: deps.Dispatcher, logger: logger}
}

// Import parses text and replaces the stored roster with it. Missing
// columns are reported, not rejected; their fields stay empty.
func (s *RosterService) Import(ctx context.Context, text string) (*ImportResult, error) {
	if s.repo == nil {
		return nil, apperrors.NewUnavailable("roster store not configured", nil)
	}

	rows := roster.ParseRows(text)
	records, err := roster.ToRecords(rows)
	if err != nil {
		if errors.Is(err, roster.ErrEmptyInput) {
			return nil, apperrors.NewValidationError("roster is empty", nil)
		}
		return nil, apperrors.MapError(err)
	}
	missing := roster.MissingColumns(rows[0])
	if len(missing) > 0 {
		s.logger.Warn("roster header incomplete", zap.Strings("missing", missing))
	}

	batchID := uuid.NewString()
	count, err := s.repo.Replace(ctx, batchID, records)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	result := &ImportResult{
		BatchID:        batchID,
		Records:        count,
		Dates:          roster.AvailableDates(records),
		MissingColumns: missing,
	}
	s.logger.Info("roster imported", zap.String("batch_id", batchID), zap.Int64("records", count))

	if s.dispatcher != nil {
		err := s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRosterImported,
			Timestamp: time.Now(),
			Payload: events.RosterImportedPayload{
				BatchID: batchID,
				Records: count,
				Dates:   result.Dates,
				Missing: missing,
			},
		})
		if err != nil {
			s.logger.Warn("event handler failed", zap.String("event", string(events.EventRosterImported)), zap.Error(err))
		}
	}
	return result, nil
}

// DayRecords returns the stored rows for date in import order.
func (s *RosterService) DayRecords(ctx context.Context, date string) ([]domain.StoredAttendance, error) {
	if s.repo == nil {
		return nil, apperrors.NewUnavailable("roster store not configured", nil)
	}
	if date == "" {
		return nil, apperrors.NewValidationError("date required", nil)
	}
	records, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFound("date", map[string]any{"date": date})
	}
	return records, nil
}

// RepositoryLoader serves imported records to the briefing service.
type RepositoryLoader struct {
	Repo repository.AttendanceRepository
}

// LoadRecords implements roster.Loader.
func (l RepositoryLoader) LoadRecords(ctx context.Context) ([]domain.AttendanceRecord, error) {
	return l.Repo.List(ctx)
}
