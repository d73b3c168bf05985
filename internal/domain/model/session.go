package model

import (
	"time"

	"github.com/veritasfin/loanflow/internal/domain/valueobject"
	"github.com/veritasfin/loanflow/pkg/events"
)

// ---------------------------------------------------------------------------
// Session – conversational loan-origination state
// ---------------------------------------------------------------------------

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in the conversation transcript.
type Turn struct {
	Role    string
	Content string
	At      time.Time
}

// SchemeOffer is the stored projection of a ranked scheme recommendation.
type SchemeOffer struct {
	SchemeID     string
	BankName     string
	SchemeName   string
	Score        float64
	InterestRate float64
	EMI          int64
	TotalCost    int64
}

// Session holds the full state of one loan-origination conversation. It is
// a mutable document: stage handlers read and write fields directly, and the
// orchestrator persists the whole session once per turn. Pointer fields
// distinguish "not yet captured" from a genuine zero.
type Session struct {
	events.EventCollector

	ConversationID string
	Stage          valueobject.ConversationStage

	// Customer identity.
	CustomerID    string
	CustomerPhone string
	CustomerName  string
	CustomerPAN   string
	CustomerEmail string

	// Loan request.
	ApplicationID string
	LoanAmount    *int64
	TenureMonths  *int
	LoanPurpose   string

	// KYC and one-time-code verification.
	KYCVerified bool
	OTPCode     string
	OTPVerified bool

	// Credit profile.
	CreditScore      *int
	PreApprovedLimit *int64

	// Income verification.
	SalaryVerified bool
	MonthlySalary  *int64

	// Underwriting outcome.
	Decision       valueobject.UnderwritingDecision
	DecisionReason string
	ApprovedAmount *int64
	EMI            *int64
	InterestRate   *float64
	RiskScore      *float64
	RiskFlags      []string

	// Rate negotiation.
	NegotiationAttempts int
	FinalInterestRate   *float64

	// Scheme recommendation.
	SchemeRecommendations []SchemeOffer
	SelectedScheme        *SchemeOffer

	// Sanction letter.
	SanctionID         string
	SanctionLetterPath string

	// Error tracking.
	ErrorMessage string
	RetryCount   int

	Transcript []Turn
	UpdatedAt  time.Time
}

// NewSession creates a fresh session at the greeting stage.
func NewSession(conversationID string) *Session {
	return &Session{
		ConversationID: conversationID,
		Stage:          valueobject.StageGreeting,
		UpdatedAt:      time.Now().UTC(),
	}
}

// AppendUserTurn records an incoming customer message in the transcript.
func (s *Session) AppendUserTurn(content string) {
	s.Transcript = append(s.Transcript, Turn{Role: RoleUser, Content: content, At: time.Now().UTC()})
}

// AppendAssistantTurn records an outgoing response in the transcript.
func (s *Session) AppendAssistantTurn(content string) {
	s.Transcript = append(s.Transcript, Turn{Role: RoleAssistant, Content: content, At: time.Now().UTC()})
}

// LastUserMessage returns the most recent customer message, or "" when the
// transcript holds none.
func (s *Session) LastUserMessage() string {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == RoleUser {
			return s.Transcript[i].Content
		}
	}
	return ""
}

// Touch refreshes the session's update timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// FailWith forces the session into the error stage, preserving a short
// diagnostic and the stage the failure happened in.
func (s *Session) FailWith(diagnostic string) {
	s.ErrorMessage = diagnostic
	s.RetryCount++
	s.Stage = valueobject.StageError
}

// EffectiveRate returns the negotiated rate when one exists, otherwise the
// underwritten rate, otherwise zero.
func (s *Session) EffectiveRate() float64 {
	if s.FinalInterestRate != nil {
		return *s.FinalInterestRate
	}
	if s.InterestRate != nil {
		return *s.InterestRate
	}
	return 0
}
