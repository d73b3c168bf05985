package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

func TestNewSession_StartsAtGreeting(t *testing.T) {
	s := NewSession("conv-1")

	assert.Equal(t, "conv-1", s.ConversationID)
	assert.True(t, s.Stage.Equal(valueobject.StageGreeting))
	assert.False(t, s.Stage.IsTerminal())
	assert.Empty(t, s.Transcript)
	assert.Nil(t, s.LoanAmount)
	assert.Nil(t, s.CreditScore)
}

func TestSession_Transcript(t *testing.T) {
	s := NewSession("conv-1")

	s.AppendUserTurn("hi, I need a loan")
	s.AppendAssistantTurn("happy to help")
	s.AppendUserTurn("5 lakhs please")

	assert.Len(t, s.Transcript, 3)
	assert.Equal(t, RoleUser, s.Transcript[0].Role)
	assert.Equal(t, RoleAssistant, s.Transcript[1].Role)
	assert.Equal(t, "5 lakhs please", s.LastUserMessage())
}

func TestSession_LastUserMessage_Empty(t *testing.T) {
	s := NewSession("conv-1")

	assert.Equal(t, "", s.LastUserMessage())

	s.AppendAssistantTurn("hello")
	assert.Equal(t, "", s.LastUserMessage())
}

func TestSession_FailWith(t *testing.T) {
	s := NewSession("conv-1")
	s.Stage = valueobject.StageUnderwriting

	s.FailWith("engine panic: boom")

	assert.True(t, s.Stage.Equal(valueobject.StageError))
	assert.True(t, s.Stage.IsTerminal())
	assert.Equal(t, "engine panic: boom", s.ErrorMessage)
	assert.Equal(t, 1, s.RetryCount)
}

func TestSession_EffectiveRate(t *testing.T) {
	s := NewSession("conv-1")
	assert.Zero(t, s.EffectiveRate())

	underwritten := 12.5
	s.InterestRate = &underwritten
	assert.Equal(t, 12.5, s.EffectiveRate())

	negotiated := 11.75
	s.FinalInterestRate = &negotiated
	assert.Equal(t, 11.75, s.EffectiveRate())
}
