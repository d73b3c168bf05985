package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
	pg "github.com/veritasfin/loanflow/pkg/postgres"
)

// SessionRepo implements port.SessionRepository on top of PostgreSQL. Each
// conversation is stored as one JSONB document keyed by its conversation ID;
// a session is rewritten in full on every turn, so a document column is a
// better fit than a wide relational row.
type SessionRepo struct {
	db pg.Querier
}

// NewSessionRepo creates a new repository backed by PostgreSQL.
func NewSessionRepo(db pg.Querier) *SessionRepo {
	return &SessionRepo{db: db}
}

// Save upserts the full session document.
func (r *SessionRepo) Save(ctx context.Context, s *model.Session) error {
	doc, err := json.Marshal(toDocument(s))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	query := `
		INSERT INTO conversation_sessions (conversation_id, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (conversation_id) DO UPDATE SET
			state      = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query, s.ConversationID, doc, s.UpdatedAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// FindByID loads a session document and rebuilds the domain model.
func (r *SessionRepo) FindByID(ctx context.Context, conversationID string) (*model.Session, error) {
	query := `
		SELECT state FROM conversation_sessions
		WHERE conversation_id = $1
	`
	var raw []byte
	err := r.db.QueryRow(ctx, query, conversationID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return fromDocument(doc)
}

// Delete removes a session. Deleting an absent conversation is a no-op.
func (r *SessionRepo) Delete(ctx context.Context, conversationID string) error {
	query := `DELETE FROM conversation_sessions WHERE conversation_id = $1`
	if _, err := r.db.Exec(ctx, query, conversationID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// persistence document
// ---------------------------------------------------------------------------

type turnDocument struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type schemeOfferDocument struct {
	SchemeID     string  `json:"scheme_id"`
	BankName     string  `json:"bank_name"`
	SchemeName   string  `json:"scheme_name"`
	Score        float64 `json:"score"`
	InterestRate float64 `json:"interest_rate"`
	EMI          int64   `json:"emi"`
	TotalCost    int64   `json:"total_cost"`
}

type sessionDocument struct {
	ConversationID string `json:"conversation_id"`
	Stage          string `json:"stage"`

	CustomerID    string `json:"customer_id,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPAN   string `json:"customer_pan,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	ApplicationID string `json:"application_id,omitempty"`
	LoanAmount    *int64 `json:"loan_amount,omitempty"`
	TenureMonths  *int   `json:"tenure_months,omitempty"`
	LoanPurpose   string `json:"loan_purpose,omitempty"`

	KYCVerified bool   `json:"kyc_verified"`
	OTPCode     string `json:"otp_code,omitempty"`
	OTPVerified bool   `json:"otp_verified"`

	CreditScore      *int   `json:"credit_score,omitempty"`
	PreApprovedLimit *int64 `json:"pre_approved_limit,omitempty"`

	SalaryVerified bool   `json:"salary_verified"`
	MonthlySalary  *int64 `json:"monthly_salary,omitempty"`

	Decision       string   `json:"decision,omitempty"`
	DecisionReason string   `json:"decision_reason,omitempty"`
	ApprovedAmount *int64   `json:"approved_amount,omitempty"`
	EMI            *int64   `json:"emi,omitempty"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
	RiskScore      *float64 `json:"risk_score,omitempty"`
	RiskFlags      []string `json:"risk_flags,omitempty"`

	NegotiationAttempts int      `json:"negotiation_attempts"`
	FinalInterestRate   *float64 `json:"final_interest_rate,omitempty"`

	SchemeRecommendations []schemeOfferDocument `json:"scheme_recommendations,omitempty"`
	SelectedScheme        *schemeOfferDocument  `json:"selected_scheme,omitempty"`

	SanctionID         string `json:"sanction_id,omitempty"`
	SanctionLetterPath string `json:"sanction_letter_path,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
	RetryCount   int    `json:"retry_count"`

	Transcript []turnDocument `json:"transcript,omitempty"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func toDocument(s *model.Session) sessionDocument {
	doc := sessionDocument{
		ConversationID:      s.ConversationID,
		Stage:               s.Stage.String(),
		CustomerID:          s.CustomerID,
		CustomerPhone:       s.CustomerPhone,
		CustomerName:        s.CustomerName,
		CustomerPAN:         s.CustomerPAN,
		CustomerEmail:       s.CustomerEmail,
		ApplicationID:       s.ApplicationID,
		LoanAmount:          s.LoanAmount,
		TenureMonths:        s.TenureMonths,
		LoanPurpose:         s.LoanPurpose,
		KYCVerified:         s.KYCVerified,
		OTPCode:             s.OTPCode,
		OTPVerified:         s.OTPVerified,
		CreditScore:         s.CreditScore,
		PreApprovedLimit:    s.PreApprovedLimit,
		SalaryVerified:      s.SalaryVerified,
		MonthlySalary:       s.MonthlySalary,
		Decision:            s.Decision.String(),
		DecisionReason:      s.DecisionReason,
		ApprovedAmount:      s.ApprovedAmount,
		EMI:                 s.EMI,
		InterestRate:        s.InterestRate,
		RiskScore:           s.RiskScore,
		RiskFlags:           s.RiskFlags,
		NegotiationAttempts: s.NegotiationAttempts,
		FinalInterestRate:   s.FinalInterestRate,
		SanctionID:          s.SanctionID,
		SanctionLetterPath:  s.SanctionLetterPath,
		ErrorMessage:        s.ErrorMessage,
		RetryCount:          s.RetryCount,
		UpdatedAt:           s.UpdatedAt,
	}

	for _, offer := range s.SchemeRecommendations {
		doc.SchemeRecommendations = append(doc.SchemeRecommendations, toOfferDocument(offer))
	}
	if s.SelectedScheme != nil {
		selected := toOfferDocument(*s.SelectedScheme)
		doc.SelectedScheme = &selected
	}
	for _, turn := range s.Transcript {
		doc.Transcript = append(doc.Transcript, turnDocument(turn))
	}
	return doc
}

func fromDocument(doc sessionDocument) (*model.Session, error) {
	stage, err := valueobject.NewConversationStage(doc.Stage)
	if err != nil {
		return nil, fmt.Errorf("parse stage: %w", err)
	}

	var decision valueobject.UnderwritingDecision
	if doc.Decision != "" {
		decision, err = valueobject.NewUnderwritingDecision(doc.Decision)
		if err != nil {
			return nil, fmt.Errorf("parse decision: %w", err)
		}
	}

	s := &model.Session{
		ConversationID:      doc.ConversationID,
		Stage:               stage,
		CustomerID:          doc.CustomerID,
		CustomerPhone:       doc.CustomerPhone,
		CustomerName:        doc.CustomerName,
		CustomerPAN:         doc.CustomerPAN,
		CustomerEmail:       doc.CustomerEmail,
		ApplicationID:       doc.ApplicationID,
		LoanAmount:          doc.LoanAmount,
		TenureMonths:        doc.TenureMonths,
		LoanPurpose:         doc.LoanPurpose,
		KYCVerified:         doc.KYCVerified,
		OTPCode:             doc.OTPCode,
		OTPVerified:         doc.OTPVerified,
		CreditScore:         doc.CreditScore,
		PreApprovedLimit:    doc.PreApprovedLimit,
		SalaryVerified:      doc.SalaryVerified,
		MonthlySalary:       doc.MonthlySalary,
		Decision:            decision,
		DecisionReason:      doc.DecisionReason,
		ApprovedAmount:      doc.ApprovedAmount,
		EMI:                 doc.EMI,
		InterestRate:        doc.InterestRate,
		RiskScore:           doc.RiskScore,
		RiskFlags:           doc.RiskFlags,
		NegotiationAttempts: doc.NegotiationAttempts,
		FinalInterestRate:   doc.FinalInterestRate,
		SanctionID:          doc.SanctionID,
		SanctionLetterPath:  doc.SanctionLetterPath,
		ErrorMessage:        doc.ErrorMessage,
		RetryCount:          doc.RetryCount,
		UpdatedAt:           doc.UpdatedAt,
	}

	for _, offer := range doc.SchemeRecommendations {
		s.SchemeRecommendations = append(s.SchemeRecommendations, model.SchemeOffer(offer))
	}
	if doc.SelectedScheme != nil {
		selected := model.SchemeOffer(*doc.SelectedScheme)
		s.SelectedScheme = &selected
	}
	for _, turn := range doc.Transcript {
		s.Transcript = append(s.Transcript, model.Turn(turn))
	}
	return s, nil
}

func toOfferDocument(o model.SchemeOffer) schemeOfferDocument {
	return schemeOfferDocument(o)
}
