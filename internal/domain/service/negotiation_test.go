package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNegotiationIntent_Accept(t *testing.T) {
	for _, msg := range []string{"accept", "Yes please", "ok fine", "I agree", "Proceed with this"} {
		assert.Equal(t, IntentAccept, ClassifyNegotiationIntent(msg), "message %q", msg)
	}
}

func TestClassifyNegotiationIntent_Negotiate(t *testing.T) {
	for _, msg := range []string{"can you do better?", "lower the rate", "negotiate", "something cheaper"} {
		assert.Equal(t, IntentNegotiate, ClassifyNegotiationIntent(msg), "message %q", msg)
	}
}

func TestClassifyNegotiationIntent_AcceptWinsOverNegotiate(t *testing.T) {
	// Both keyword sets match; accept takes precedence.
	assert.Equal(t, IntentAccept, ClassifyNegotiationIntent("ok, but could be lower"))
}

func TestClassifyNegotiationIntent_Unknown(t *testing.T) {
	assert.Equal(t, IntentUnknown, ClassifyNegotiationIntent("what about my tenure?"))
}

func TestRateReductionForScore_Tiers(t *testing.T) {
	assert.Equal(t, 0.5, RateReductionForScore(810))
	assert.Equal(t, 0.5, RateReductionForScore(800))
	assert.Equal(t, 0.35, RateReductionForScore(760))
	assert.Equal(t, 0.25, RateReductionForScore(710))
}

func TestNegotiatedRate_TieredReduction(t *testing.T) {
	assert.Equal(t, 11.5, NegotiatedRate(12.0, 810))
	assert.Equal(t, 11.65, NegotiatedRate(12.0, 760))
	assert.Equal(t, 11.75, NegotiatedRate(12.0, 710))
}

func TestNegotiatedRate_SuccessiveReductions(t *testing.T) {
	// Score 810: 12.0 -> 11.5 -> 11.0.
	first := NegotiatedRate(12.0, 810)
	second := NegotiatedRate(first, 810)

	assert.Equal(t, 11.5, first)
	assert.Equal(t, 11.0, second)
}

func TestNegotiatedRate_Floor(t *testing.T) {
	assert.Equal(t, 8.0, NegotiatedRate(8.1, 810))
	assert.Equal(t, 8.0, NegotiatedRate(8.0, 710))
}
