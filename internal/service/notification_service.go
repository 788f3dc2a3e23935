package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRosterImported, n.handleRosterImported)
	n.dispatcher.Subscribe(events.EventBriefingGenerated, n.handleBriefingGenerated)
	n.dispatcher.Subscribe(events.EventRecordFlagged, n.handleRecordFlagged)
}

func (n *NotificationService) handleRosterImported(ctx context.Context, event events.Event) error {
	n.logger.Info("RosterImported", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBriefingGenerated(ctx context.Context, event events.Event) error {
	n.logger.Info("BriefingGenerated", zap.String("date", event.Date), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleRecordFlagged(ctx context.Context, event events.Event) error {
	n.logger.Warn("RecordFlagged", zap.String("date", event.Date), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("date", event.Date),
		zap.String("event_type", string(event.Type)))
}
