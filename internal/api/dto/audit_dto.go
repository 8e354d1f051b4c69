package dto

import (
	"time"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// AuditEntryResponse is the externally visible audit record.
type AuditEntryResponse struct {
	ID         string           `json:"id"`
	ActorID    *string          `json:"actor_id,omitempty"`
	Action     domain.LogAction `json:"action"`
	EntityType string           `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Details    map[string]any   `json:"details,omitempty"`
	Origin     string           `json:"origin,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewAuditEntryResponse maps a domain log entry.
func NewAuditEntryResponse(entry *domain.LogEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		Origin:     entry.Origin,
		CreatedAt:  entry.CreatedAt,
	}
}
