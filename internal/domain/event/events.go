package event

import (
	"github.com/veritasfin/loanflow/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateConversation = "Conversation"

// ---------------------------------------------------------------------------
// Conversation Events
// ---------------------------------------------------------------------------

// ConversationStarted is raised when a new conversation session is created.
type ConversationStarted struct {
	events.BaseEvent
	Channel string `json:"channel"`
}

func NewConversationStarted(conversationID, channel string) ConversationStarted {
	return ConversationStarted{
		BaseEvent: events.NewBaseEvent("loanflow.conversation.started", conversationID, aggregateConversation),
		Channel:   channel,
	}
}

// ApplicationSubmitted is raised once the sales flow has collected enough
// details to open a loan application.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicationID string `json:"application_id"`
	CustomerName  string `json:"customer_name"`
	LoanAmount    int64  `json:"loan_amount"`
	TenureMonths  int    `json:"tenure_months"`
	LoanPurpose   string `json:"loan_purpose"`
}

func NewApplicationSubmitted(conversationID, applicationID, customerName string, amount int64, tenureMonths int, purpose string) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:     events.NewBaseEvent("loanflow.application.submitted", conversationID, aggregateConversation),
		ApplicationID: applicationID,
		CustomerName:  customerName,
		LoanAmount:    amount,
		TenureMonths:  tenureMonths,
		LoanPurpose:   purpose,
	}
}

// KYCVerified is raised when identity and one-time-code checks both pass.
type KYCVerified struct {
	events.BaseEvent
	CustomerID string `json:"customer_id"`
	PANMasked  string `json:"pan_masked"`
}

func NewKYCVerified(conversationID, customerID, panMasked string) KYCVerified {
	return KYCVerified{
		BaseEvent:  events.NewBaseEvent("loanflow.kyc.verified", conversationID, aggregateConversation),
		CustomerID: customerID,
		PANMasked:  panMasked,
	}
}

// UnderwritingDecided is raised when the rule engine produces a decision.
type UnderwritingDecided struct {
	events.BaseEvent
	ApplicationID  string   `json:"application_id"`
	Decision       string   `json:"decision"`
	Reason         string   `json:"reason"`
	ApprovedAmount int64    `json:"approved_amount,omitempty"`
	InterestRate   float64  `json:"interest_rate,omitempty"`
	RiskScore      float64  `json:"risk_score"`
	RiskFlags      []string `json:"risk_flags,omitempty"`
}

func NewUnderwritingDecided(conversationID, applicationID, decision, reason string, approvedAmount int64, interestRate, riskScore float64, riskFlags []string) UnderwritingDecided {
	return UnderwritingDecided{
		BaseEvent:      events.NewBaseEvent("loanflow.underwriting.decided", conversationID, aggregateConversation),
		ApplicationID:  applicationID,
		Decision:       decision,
		Reason:         reason,
		ApprovedAmount: approvedAmount,
		InterestRate:   interestRate,
		RiskScore:      riskScore,
		RiskFlags:      riskFlags,
	}
}

// SchemeSelected is raised when the customer picks one of the recommended
// offers.
type SchemeSelected struct {
	events.BaseEvent
	SchemeID     string  `json:"scheme_id"`
	BankName     string  `json:"bank_name"`
	InterestRate float64 `json:"interest_rate"`
	EMI          int64   `json:"emi"`
}

func NewSchemeSelected(conversationID, schemeID, bankName string, interestRate float64, emi int64) SchemeSelected {
	return SchemeSelected{
		BaseEvent:    events.NewBaseEvent("loanflow.scheme.selected", conversationID, aggregateConversation),
		SchemeID:     schemeID,
		BankName:     bankName,
		InterestRate: interestRate,
		EMI:          emi,
	}
}

// RateNegotiated is raised on each successful negotiation attempt.
type RateNegotiated struct {
	events.BaseEvent
	OldRate float64 `json:"old_rate"`
	NewRate float64 `json:"new_rate"`
	Attempt int     `json:"attempt"`
}

func NewRateNegotiated(conversationID string, oldRate, newRate float64, attempt int) RateNegotiated {
	return RateNegotiated{
		BaseEvent: events.NewBaseEvent("loanflow.rate.negotiated", conversationID, aggregateConversation),
		OldRate:   oldRate,
		NewRate:   newRate,
		Attempt:   attempt,
	}
}

// OfferAccepted is raised when the customer locks in the final rate.
type OfferAccepted struct {
	events.BaseEvent
	FinalRate float64 `json:"final_rate"`
	Amount    int64   `json:"amount"`
	EMI       int64   `json:"emi"`
}

func NewOfferAccepted(conversationID string, finalRate float64, amount, emi int64) OfferAccepted {
	return OfferAccepted{
		BaseEvent: events.NewBaseEvent("loanflow.offer.accepted", conversationID, aggregateConversation),
		FinalRate: finalRate,
		Amount:    amount,
		EMI:       emi,
	}
}

// SanctionIssued is raised when a sanction letter has been rendered.
type SanctionIssued struct {
	events.BaseEvent
	SanctionID string `json:"sanction_id"`
	Locator    string `json:"locator"`
}

func NewSanctionIssued(conversationID, sanctionID, locator string) SanctionIssued {
	return SanctionIssued{
		BaseEvent:  events.NewBaseEvent("loanflow.sanction.issued", conversationID, aggregateConversation),
		SanctionID: sanctionID,
		Locator:    locator,
	}
}

// ConversationRejected is raised when the flow terminates with a rejection.
type ConversationRejected struct {
	events.BaseEvent
	Reason    string   `json:"reason"`
	RiskFlags []string `json:"risk_flags,omitempty"`
}

func NewConversationRejected(conversationID, reason string, riskFlags []string) ConversationRejected {
	return ConversationRejected{
		BaseEvent: events.NewBaseEvent("loanflow.conversation.rejected", conversationID, aggregateConversation),
		Reason:    reason,
		RiskFlags: riskFlags,
	}
}
