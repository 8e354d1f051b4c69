package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimStatusTerminal(t *testing.T) {
	assert.True(t, ClaimStatusResolved.Terminal())
	assert.True(t, ClaimStatusDenied.Terminal())
	assert.False(t, ClaimStatusRequested.Terminal())
	assert.False(t, ClaimStatusAccepted.Terminal())
	assert.False(t, ClaimStatusInProgress.Terminal())
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to ClaimStatus }{
		{ClaimStatusRequested, ClaimStatusAccepted},
		{ClaimStatusRequested, ClaimStatusDenied},
		{ClaimStatusRequested, ClaimStatusInProgress},
		{ClaimStatusAccepted, ClaimStatusInProgress},
		{ClaimStatusAccepted, ClaimStatusResolved},
		{ClaimStatusAccepted, ClaimStatusDenied},
		{ClaimStatusInProgress, ClaimStatusResolved},
		{ClaimStatusInProgress, ClaimStatusDenied},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to ClaimStatus }{
		{ClaimStatusResolved, ClaimStatusRequested},
		{ClaimStatusResolved, ClaimStatusInProgress},
		{ClaimStatusDenied, ClaimStatusRequested},
		{ClaimStatusDenied, ClaimStatusAccepted},
		{ClaimStatusInProgress, ClaimStatusRequested},
		{ClaimStatusRequested, ClaimStatusResolved},
		{ClaimStatusRequested, ClaimStatusRequested},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestClaimStatusValid(t *testing.T) {
	assert.True(t, ClaimStatusRequested.Valid())
	assert.False(t, ClaimStatus("CLOSED").Valid())
}
