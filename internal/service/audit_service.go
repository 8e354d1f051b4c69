package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
)

// AuditService persists audit events emitted by the business services.
// Writes are best-effort: a failed append is logged and dropped, never
// surfaced to the operation that produced it.
type AuditService struct {
	entries    repository.AuditRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(entries repository.AuditRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{entries: entries, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the audit sink to the dispatcher.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventAuditRecord, s.handleAuditRecord)
}

func (s *AuditService) handleAuditRecord(ctx context.Context, event events.Event) error {
	entry := &domain.LogEntry{
		ActorID:    event.ActorID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Details:    event.Details,
		Origin:     event.Origin,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", string(event.Action)),
			zap.String("entity_type", event.EntityType),
			zap.String("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
	return nil
}

// Recent returns the newest audit entries for admin oversight.
func (s *AuditService) Recent(ctx context.Context, limit, offset int) ([]domain.LogEntry, error) {
	return s.entries.List(ctx, limit, offset)
}

// ForEntity returns the audit trail of a single entity.
func (s *AuditService) ForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.LogEntry, error) {
	return s.entries.ListByEntity(ctx, entityType, entityID, limit, offset)
}
