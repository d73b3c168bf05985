package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConversationStage(t *testing.T) {
	stage, err := NewConversationStage("KYC_VERIFICATION")

	assert.NoError(t, err)
	assert.True(t, stage.Equal(StageKYCVerification))
	assert.Equal(t, "KYC_VERIFICATION", stage.String())
}

func TestNewConversationStage_Invalid(t *testing.T) {
	_, err := NewConversationStage("LIMBO")

	assert.Error(t, err)
}

func TestConversationStage_IsTerminal(t *testing.T) {
	assert.True(t, StageCompleted.IsTerminal())
	assert.True(t, StageRejected.IsTerminal())
	assert.True(t, StageError.IsTerminal())

	assert.False(t, StageGreeting.IsTerminal())
	assert.False(t, StageSanctionLetter.IsTerminal())
	assert.False(t, StageRateNegotiation.IsTerminal())
}

func TestConversationStage_IsZero(t *testing.T) {
	var zero ConversationStage

	assert.True(t, zero.IsZero())
	assert.False(t, StageGreeting.IsZero())
}

func TestNewUnderwritingDecision(t *testing.T) {
	for _, raw := range []string{"APPROVED", "REJECTED", "MANUAL_REVIEW"} {
		d, err := NewUnderwritingDecision(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, d.String())
	}

	_, err := NewUnderwritingDecision("MAYBE")
	assert.Error(t, err)
}
