package domain

import "time"

// LogAction enumerates audited action types.
type LogAction string

const (
	ActionUserRegistered    LogAction = "USER_REGISTERED"
	ActionUserLoggedIn      LogAction = "USER_LOGGED_IN"
	ActionUserLoggedOut     LogAction = "USER_LOGGED_OUT"
	ActionUserUpdated       LogAction = "USER_UPDATED"
	ActionUserActivationSet LogAction = "USER_ACTIVATION_SET"
	ActionSellerProvisioned LogAction = "SELLER_PROVISIONED"
	ActionSellerUpdated     LogAction = "SELLER_UPDATED"
	ActionContractStatusSet LogAction = "CONTRACT_STATUS_SET"
	ActionProductRegistered LogAction = "PRODUCT_REGISTERED"
	ActionClaimCreated      LogAction = "CLAIM_CREATED"
	ActionClaimTransitioned LogAction = "CLAIM_TRANSITIONED"
)

// LogEntry is an append-only audit record. ActorID is nil when no
// authenticated actor exists for the action.
type LogEntry struct {
	ID         string
	ActorID    *string
	Action     LogAction
	EntityType string
	EntityID   string
	Details    map[string]any
	Origin     string
	CreatedAt  time.Time
}
