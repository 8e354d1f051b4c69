package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
)

func TestAuditRecordPersisted(t *testing.T) {
	entries := new(MockAuditRepository)
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(entries, dispatcher, zap.NewNop()).RegisterHandlers()

	actor := "user-1"
	entries.On("Create", mock.Anything, mock.AnythingOfType("*domain.LogEntry")).Return(nil)

	publishAudit(context.Background(), dispatcher, &actor, domain.ActionClaimCreated,
		"warranty_claim", "claim-1", "127.0.0.1", map[string]any{"product_id": "product-1"})

	entries.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(entry *domain.LogEntry) bool {
		return entry.Action == domain.ActionClaimCreated &&
			entry.EntityType == "warranty_claim" &&
			entry.EntityID == "claim-1" &&
			entry.ActorID != nil && *entry.ActorID == "user-1"
	}))
}

func TestAuditWriteFailureIsSwallowed(t *testing.T) {
	entries := new(MockAuditRepository)
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(entries, dispatcher, zap.NewNop()).RegisterHandlers()

	entries.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:       events.EventAuditRecord,
		Action:     domain.ActionUserLoggedIn,
		EntityType: "user",
		EntityID:   "user-1",
	})

	require.NoError(t, err)
	entries.AssertExpectations(t)
}

func TestPublishAuditNilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() {
		publishAudit(context.Background(), nil, nil, domain.ActionUserLoggedIn, "user", "user-1", "", nil)
	})
}
