package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// NegotiationEngine – rate haggling over an approved offer
// ---------------------------------------------------------------------------

// MaxNegotiationAttempts caps how many rate reductions a customer may
// request.
const MaxNegotiationAttempts = 2

// MinNegotiatedRate is the floor no negotiation can go below.
const MinNegotiatedRate = 8.0

// NegotiationIntent classifies a customer message during negotiation.
type NegotiationIntent int

const (
	IntentUnknown NegotiationIntent = iota
	IntentAccept
	IntentNegotiate
)

var acceptKeywords = []string{
	"accept", "agree", "ok", "okay", "yes", "proceed", "confirm", "fine", "good",
}

var negotiateKeywords = []string{
	"better", "lower", "reduce", "discount", "negotiate", "less", "cheaper",
}

// ClassifyNegotiationIntent matches the message against the accept and
// negotiate keyword sets. Accept keywords take precedence; anything else is
// unknown and should re-prompt without mutating negotiation state.
func ClassifyNegotiationIntent(message string) NegotiationIntent {
	lower := strings.ToLower(message)

	for _, kw := range acceptKeywords {
		if strings.Contains(lower, kw) {
			return IntentAccept
		}
	}
	for _, kw := range negotiateKeywords {
		if strings.Contains(lower, kw) {
			return IntentNegotiate
		}
	}
	return IntentUnknown
}

// RateReductionForScore returns the per-attempt reduction in percentage
// points the customer's credit tier earns.
func RateReductionForScore(creditScore int) float64 {
	switch {
	case creditScore >= 800:
		return 0.5
	case creditScore >= 750:
		return 0.35
	default:
		return 0.25
	}
}

// NegotiatedRate applies the tiered reduction to the current rate, rounded to
// two decimals and floored at MinNegotiatedRate.
func NegotiatedRate(currentRate float64, creditScore int) float64 {
	reduced := decimal.NewFromFloat(currentRate).
		Sub(decimal.NewFromFloat(RateReductionForScore(creditScore))).
		Round(2)

	floor := decimal.NewFromFloat(MinNegotiatedRate)
	if reduced.LessThan(floor) {
		reduced = floor
	}

	f, _ := reduced.Float64()
	return f
}
