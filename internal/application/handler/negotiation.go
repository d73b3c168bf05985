package handler

import (
	"context"
	"fmt"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// NegotiationHandler – accept or haggle on the selected offer
// ---------------------------------------------------------------------------

// NegotiationHandler owns RATE_NEGOTIATION. The customer gets up to two rate
// reductions sized by credit tier; anything unrecognized re-prompts without
// touching negotiation state.
type NegotiationHandler struct{}

// NewNegotiationHandler returns a negotiation handler.
func NewNegotiationHandler() *NegotiationHandler {
	return &NegotiationHandler{}
}

func (h *NegotiationHandler) Handle(_ context.Context, s *model.Session) (string, error) {
	switch service.ClassifyNegotiationIntent(s.LastUserMessage()) {
	case service.IntentAccept:
		return h.accept(s), nil
	case service.IntentNegotiate:
		if s.NegotiationAttempts < service.MaxNegotiationAttempts {
			return h.negotiate(s), nil
		}
		return h.maxAttemptsReached(s), nil
	default:
		return h.reprompt(s), nil
	}
}

func (h *NegotiationHandler) accept(s *model.Session) string {
	finalRate := currentRate(s)
	s.FinalInterestRate = &finalRate
	s.Stage = valueobject.StageSanctionLetter

	amount := derefInt64(s.ApprovedAmount)
	emi := derefInt64(s.EMI)
	s.Record(event.NewOfferAccepted(s.ConversationID, finalRate, amount, emi))

	return fmt.Sprintf(
		"✅ **Offer Accepted!**\n\n"+
			"**Final Loan Terms:**\n"+
			"• Amount: %s\n"+
			"• Interest Rate: %v%% p.a.\n"+
			"• EMI: %s/month\n"+
			"• Tenure: %d months\n\n"+
			"📄 Generating your sanction letter now...",
		service.FormatINR(amount), finalRate, service.FormatINR(emi), tenureOrDefault(s),
	)
}

func (h *NegotiationHandler) negotiate(s *model.Session) string {
	oldRate := currentRate(s)
	creditScore := 700
	if s.CreditScore != nil {
		creditScore = *s.CreditScore
	}

	newRate := service.NegotiatedRate(oldRate, creditScore)
	tenure := tenureOrDefault(s)
	amount := derefInt64(s.ApprovedAmount)

	oldEMI := derefInt64(s.EMI)
	newEMI := service.EMI(amount, newRate, tenure)
	if oldEMI == 0 {
		oldEMI = newEMI
	}

	s.FinalInterestRate = &newRate
	s.EMI = &newEMI
	s.NegotiationAttempts++
	s.Stage = valueobject.StageRateNegotiation

	s.Record(event.NewRateNegotiated(s.ConversationID, oldRate, newRate, s.NegotiationAttempts))

	remaining := service.MaxNegotiationAttempts - s.NegotiationAttempts

	response := fmt.Sprintf(
		"🤝 **Great news! We've reduced your rate!**\n\n"+
			"**Updated Offer:**\n"+
			"• Interest Rate: ~~%v%%~~ → **%v%% p.a.**\n"+
			"• New EMI: %s/month\n"+
			"• Savings: %s over the loan term\n\n",
		oldRate, newRate, service.FormatINR(newEMI), service.FormatINR((oldEMI-newEMI)*int64(tenure)),
	)

	if remaining > 0 {
		response += fmt.Sprintf(
			"💡 You have **%d** more negotiation attempt(s).\n\n"+
				"Would you like to:\n"+
				"• **Accept** this rate\n"+
				"• **Negotiate** further\n",
			remaining,
		)
	} else {
		response += "ℹ️ This is our **best offer** based on your profile.\n\n" +
			"Reply with **'accept'** to proceed with sanction letter."
	}
	return response
}

func (h *NegotiationHandler) maxAttemptsReached(s *model.Session) string {
	s.Stage = valueobject.StageRateNegotiation
	return fmt.Sprintf(
		"ℹ️ **Maximum Negotiation Attempts Reached**\n\n"+
			"You've used all %d negotiation attempts.\n"+
			"Your current rate of **%v%%** is our best offer.\n\n"+
			"Please reply with **'accept'** to proceed with the sanction letter.",
		service.MaxNegotiationAttempts, currentRate(s),
	)
}

func (h *NegotiationHandler) reprompt(s *model.Session) string {
	s.Stage = valueobject.StageRateNegotiation
	response := fmt.Sprintf(
		"I didn't quite understand. Your current offer is at **%v%% p.a.**\n\n"+
			"Please choose:\n"+
			"• Reply **'accept'** to proceed\n",
		currentRate(s),
	)

	if remaining := service.MaxNegotiationAttempts - s.NegotiationAttempts; remaining > 0 {
		response += fmt.Sprintf("• Reply **'negotiate'** to request a better rate (%d attempt(s) left)\n", remaining)
	}
	return response
}

// currentRate mirrors the negotiated-then-underwritten fallback, defaulting
// to 12.0 when neither exists.
func currentRate(s *model.Session) float64 {
	if rate := s.EffectiveRate(); rate != 0 {
		return rate
	}
	return 12.0
}
