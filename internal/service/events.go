package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
)

// publishAudit emits one audit record after a primary effect committed.
func publishAudit(ctx context.Context, dispatcher events.Dispatcher, actorID *string, action domain.LogAction, entityType, entityID, origin string, details map[string]any) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventAuditRecord,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Origin:     origin,
		Timestamp:  time.Now(),
	})
}
