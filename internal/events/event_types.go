package events

import (
	"time"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAuditRecord EventType = "audit_record"
)

// Event represents a state change emitted by services after its primary
// effect committed.
type Event struct {
	ID         string           `json:"id"`
	Type       EventType        `json:"type"`
	ActorID    *string          `json:"actor_id,omitempty"`
	Action     domain.LogAction `json:"action"`
	EntityType string           `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Details    map[string]any   `json:"details,omitempty"`
	Origin     string           `json:"origin,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}
