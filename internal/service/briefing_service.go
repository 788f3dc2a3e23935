package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/domain"
	"github.com/spec-kit/staff-briefing/internal/events"
	"github.com/spec-kit/staff-briefing/internal/observability"
	"github.com/spec-kit/staff-briefing/internal/render"
	"github.com/spec-kit/staff-briefing/internal/roster"
	"github.com/spec-kit/staff-briefing/internal/rules"
	apperrors "github.com/spec-kit/staff-briefing/pkg/util/errorutil"
)

// BriefingService loads the roster and runs the rule engine for a date.
// Every call reloads the roster; nothing is kept between dates.
type BriefingService struct {
	loader     roster.Loader
	classifier *roster.Classifier
	engine     *rules.Engine
	renderer   *render.TextRenderer
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// BriefingDependencies bundles collaborators.
type BriefingDependencies struct {
	Loader     roster.Loader
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewBriefingService creates the service from the site rules.
func NewBriefingService(rulesCfg config.Rules, deps BriefingDependencies) *BriefingService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BriefingService{
		loader:     deps.Loader,
		classifier: roster.NewClassifier(rulesCfg.Managers, rulesCfg.OffMarkers),
		engine:     rules.NewEngine(rulesCfg),
		renderer:   render.NewTextRenderer(rulesCfg.Placeholder),
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// Dates lists the dates present in the roster.
func (s *BriefingService) Dates(ctx context.Context) ([]string, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return roster.AvailableDates(records), nil
}

// Assignments returns the per-area task lists for date.
func (s *BriefingService) Assignments(ctx context.Context, date string) (domain.DayAssignments, error) {
	groups, err := s.groupsFor(ctx, date)
	if err != nil {
		return domain.DayAssignments{}, err
	}
	result := s.engine.Assign(date, groups)
	s.publishGenerated(ctx, date, "assignments", groups, countUnresolved(result.Sala)+countUnresolved(result.Bar))
	return result, nil
}

// Briefing returns the structured briefing document for date.
func (s *BriefingService) Briefing(ctx context.Context, date string) (domain.Briefing, error) {
	groups, err := s.groupsFor(ctx, date)
	if err != nil {
		return domain.Briefing{}, err
	}
	b := s.engine.Build(date, groups)
	s.publishGenerated(ctx, date, "json", groups, countUnresolvedLines(b))
	return b, nil
}

// RenderBriefing returns the briefing for date as narrative text.
func (s *BriefingService) RenderBriefing(ctx context.Context, date string) (string, error) {
	groups, err := s.groupsFor(ctx, date)
	if err != nil {
		return "", err
	}
	b := s.engine.Build(date, groups)
	s.publishGenerated(ctx, date, "text", groups, countUnresolvedLines(b))
	return s.renderer.Render(b), nil
}

func (s *BriefingService) load(ctx context.Context) ([]domain.AttendanceRecord, error) {
	if s.loader == nil {
		return nil, apperrors.NewUnavailable("roster source not configured", roster.ErrSourceNotConfigured)
	}
	start := time.Now()
	records, err := s.loader.LoadRecords(ctx)
	s.metrics.RecordFetch(time.Since(start))
	if err != nil {
		s.logger.Error("load roster", zap.Error(err))
		return nil, apperrors.NewUnavailable("roster unavailable", err)
	}
	return records, nil
}

func (s *BriefingService) groupsFor(ctx context.Context, date string) (domain.AreaGroups, error) {
	if date == "" {
		return domain.AreaGroups{}, apperrors.NewValidationError("date required", nil)
	}
	records, err := s.load(ctx)
	if err != nil {
		return domain.AreaGroups{}, err
	}
	if !hasDate(records, date) {
		return domain.AreaGroups{}, apperrors.NewNotFound("date", map[string]any{"date": date})
	}

	working := s.classifier.WorkingOn(records, date)
	groups := roster.PartitionByArea(working)
	s.logger.Debug("classified roster",
		zap.String("date", date),
		zap.Int("records", len(records)),
		zap.Int("working", len(working)),
		zap.Int("sala", len(groups.Sala)),
		zap.Int("bar", len(groups.Bar)),
	)
	for _, f := range groups.Flagged {
		s.logger.Warn("record left out of area groups",
			zap.String("date", date),
			zap.String("name", f.Record.Name),
			zap.String("area", f.Record.Area),
			zap.String("reason", string(f.Reason)),
		)
		s.publish(ctx, events.EventRecordFlagged, date, events.RecordFlaggedPayload{Record: f.Record, Reason: f.Reason})
	}
	return groups, nil
}

func hasDate(records []domain.AttendanceRecord, date string) bool {
	for _, r := range records {
		if r.Date == date {
			return true
		}
	}
	return false
}

func countUnresolved(tasks []domain.TaskAssignment) int {
	n := 0
	for _, t := range tasks {
		if !t.Resolved() {
			n++
		}
	}
	return n
}

func countUnresolvedLines(b domain.Briefing) int {
	n := 0
	for _, section := range b.Sections {
		for _, line := range section.Lines {
			if line.Assignee == "" {
				n++
			}
		}
	}
	return n
}

func (s *BriefingService) publishGenerated(ctx context.Context, date, format string, groups domain.AreaGroups, unresolved int) {
	s.metrics.RecordBriefing(format, len(groups.Flagged))
	s.publish(ctx, events.EventBriefingGenerated, date, events.BriefingGeneratedPayload{
		Format:     format,
		SalaCount:  len(groups.Sala),
		BarCount:   len(groups.Bar),
		Unresolved: unresolved,
	})
}

func (s *BriefingService) publish(ctx context.Context, eventType events.EventType, date string, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Date:      date,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}
