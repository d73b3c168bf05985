package dto

import "time"

// ---------------------------------------------------------------------------
// Request / response DTOs crossing the application boundary
// ---------------------------------------------------------------------------

// TurnRequest is one inbound customer message.
type TurnRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// TurnResponse is the single reply produced for a turn, plus flow metadata.
type TurnResponse struct {
	ConversationID string   `json:"conversation_id"`
	Response       string   `json:"response"`
	Stage          string   `json:"stage"`
	Decision       string   `json:"decision,omitempty"`
	ApplicationID  string   `json:"application_id,omitempty"`
	SanctionID     string   `json:"sanction_id,omitempty"`
	RiskFlags      []string `json:"risk_flags,omitempty"`
}

// TranscriptEntry is one message in the conversation history.
type TranscriptEntry struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ConversationView is a read-only projection of a session.
type ConversationView struct {
	ConversationID string            `json:"conversation_id"`
	Stage          string            `json:"stage"`
	CustomerName   string            `json:"customer_name,omitempty"`
	CustomerPhone  string            `json:"customer_phone,omitempty"`
	ApplicationID  string            `json:"application_id,omitempty"`
	LoanAmount     *int64            `json:"loan_amount,omitempty"`
	TenureMonths   *int              `json:"tenure_months,omitempty"`
	LoanPurpose    string            `json:"loan_purpose,omitempty"`
	KYCVerified    bool              `json:"kyc_verified"`
	Decision       string            `json:"decision,omitempty"`
	ApprovedAmount *int64            `json:"approved_amount,omitempty"`
	InterestRate   *float64          `json:"interest_rate,omitempty"`
	EMI            *int64            `json:"emi,omitempty"`
	SanctionID     string            `json:"sanction_id,omitempty"`
	Transcript     []TranscriptEntry `json:"transcript"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
