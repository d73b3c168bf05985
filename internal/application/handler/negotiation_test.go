package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

func negotiationSession(message string) *model.Session {
	s := model.NewSession("conv-1")
	s.Stage = valueobject.StageRateNegotiation
	s.Decision = valueobject.DecisionApproved
	amount := int64(500_000)
	s.ApprovedAmount = &amount
	tenure := 36
	s.TenureMonths = &tenure
	score := 780
	s.CreditScore = &score
	rate := 12.0
	s.FinalInterestRate = &rate
	emi := int64(16_607)
	s.EMI = &emi
	s.AppendUserTurn(message)
	return s
}

func TestNegotiationHandlerAccept(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("accept")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Stage.Equal(valueobject.StageSanctionLetter))
	require.NotNil(t, s.FinalInterestRate)
	assert.InDelta(t, 12.0, *s.FinalInterestRate, 0.001)
	assert.Contains(t, resp, "Offer Accepted")
	assert.Contains(t, resp, "₹5,00,000")

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "loanflow.offer.accepted", s.Events()[0].EventType())
}

func TestNegotiationHandlerNegotiateReducesRate(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("can you give me a lower rate?")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Stage.Equal(valueobject.StageRateNegotiation))
	assert.Equal(t, 1, s.NegotiationAttempts)
	require.NotNil(t, s.FinalInterestRate)
	assert.InDelta(t, 11.5, *s.FinalInterestRate, 0.001) // 780 earns a 0.5 cut
	require.NotNil(t, s.EMI)
	assert.Contains(t, resp, "reduced your rate")
	assert.Contains(t, resp, "1** more negotiation attempt")

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "loanflow.rate.negotiated", s.Events()[0].EventType())
}

func TestNegotiationHandlerSecondCutReachesBestOffer(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("negotiate")
	s.NegotiationAttempts = 1
	rate := 11.5
	s.FinalInterestRate = &rate

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 2, s.NegotiationAttempts)
	assert.InDelta(t, 11.0, *s.FinalInterestRate, 0.001)
	assert.Contains(t, resp, "best offer")
}

func TestNegotiationHandlerMaxAttemptsExhausted(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("negotiate")
	s.NegotiationAttempts = 2

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 2, s.NegotiationAttempts)
	assert.InDelta(t, 12.0, *s.FinalInterestRate, 0.001)
	assert.True(t, s.Stage.Equal(valueobject.StageRateNegotiation))
	assert.Contains(t, resp, "Maximum Negotiation Attempts Reached")
	assert.Empty(t, s.Events())
}

func TestNegotiationHandlerAcceptWinsOverNegotiate(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("ok, but could it be lower?")

	_, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	// Accept keywords take precedence over negotiation keywords.
	assert.True(t, s.Stage.Equal(valueobject.StageSanctionLetter))
}

func TestNegotiationHandlerUnknownInputReprompts(t *testing.T) {
	h := NewNegotiationHandler()
	s := negotiationSession("what is the weather today")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 0, s.NegotiationAttempts)
	assert.True(t, s.Stage.Equal(valueobject.StageRateNegotiation))
	assert.Contains(t, resp, "didn't quite understand")
	assert.Empty(t, s.Events())
}
