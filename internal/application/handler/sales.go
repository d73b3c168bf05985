package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SalesHandler – greeting, need analysis and detail collection
// ---------------------------------------------------------------------------

// SalesHandler owns the GREETING, NEED_ANALYSIS and COLLECTING_DETAILS
// stages: it detects loan interest, extracts details turn by turn and opens
// the application once name, phone and amount are all on file.
type SalesHandler struct {
	now func() time.Time
}

// NewSalesHandler returns a sales handler using the wall clock.
func NewSalesHandler() *SalesHandler {
	return &SalesHandler{now: time.Now}
}

const welcomeMessage = "Hello! Welcome to our Personal Loan service. 👋\n\n" +
	"I'm your assistant and I can help you:\n" +
	"• Apply for a personal loan (₹50,000 - ₹50,00,000)\n" +
	"• Check your pre-approved limit\n" +
	"• Calculate your EMI\n\n" +
	"How can I assist you today?"

func (h *SalesHandler) Handle(_ context.Context, s *model.Session) (string, error) {
	message := s.LastUserMessage()

	if s.Stage.Equal(valueobject.StageGreeting) && !IsLoanInquiry(message) {
		// Plain greeting, no loan interest yet.
		return welcomeMessage, nil
	}

	h.applyExtraction(s, ExtractLoanInfo(message, s.CustomerName != ""))

	next := h.nextStage(s)
	if next.Equal(valueobject.StageKYCVerification) && s.ApplicationID == "" {
		s.ApplicationID = h.newApplicationID()
		s.Record(event.NewApplicationSubmitted(
			s.ConversationID, s.ApplicationID, s.CustomerName,
			derefInt64(s.LoanAmount), derefInt(s.TenureMonths), s.LoanPurpose,
		))
	}
	s.Stage = next

	return h.response(s), nil
}

func (h *SalesHandler) applyExtraction(s *model.Session, ex Extracted) {
	if ex.Name != "" {
		s.CustomerName = ex.Name
	}
	if ex.Phone != "" {
		s.CustomerPhone = ex.Phone
	}
	if ex.Amount != 0 {
		amount := ex.Amount
		s.LoanAmount = &amount
	}
	if ex.Tenure != 0 {
		tenure := ex.Tenure
		s.TenureMonths = &tenure
	}
	if ex.Purpose != "" {
		s.LoanPurpose = ex.Purpose
	}
}

// nextStage advances once name, phone and amount are all collected; an
// amount alone moves the conversation into detail collection.
func (h *SalesHandler) nextStage(s *model.Session) valueobject.ConversationStage {
	if s.CustomerName != "" && s.CustomerPhone != "" && s.LoanAmount != nil {
		return valueobject.StageKYCVerification
	}
	if s.LoanAmount != nil {
		return valueobject.StageCollectingDetails
	}
	return valueobject.StageNeedAnalysis
}

// newApplicationID builds a reference like LOAN-20260829-3F2A9C1B.
func (h *SalesHandler) newApplicationID() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("LOAN-%s-%s", h.now().Format("20060102"), suffix)
}

func (h *SalesHandler) response(s *model.Session) string {
	switch {
	case s.CustomerName != "" && s.CustomerPhone != "" && s.LoanAmount != nil:
		tenure := 12
		if s.TenureMonths != nil {
			tenure = *s.TenureMonths
		}
		purpose := s.LoanPurpose
		if purpose == "" {
			purpose = "Personal"
		}
		return fmt.Sprintf(
			"Excellent! Here's your loan summary:\n"+
				"👤 Name: %s\n"+
				"📱 Mobile: %s\n"+
				"💰 Amount: %s\n"+
				"📅 Tenure: %d months\n"+
				"📋 Purpose: %s\n\n"+
				"Shall I proceed with KYC verification? Please confirm with 'yes' or share your PAN card number.",
			s.CustomerName, s.CustomerPhone, service.FormatINR(*s.LoanAmount), tenure, purpose,
		)

	case s.CustomerName != "" && s.LoanAmount != nil && s.CustomerPhone == "":
		return fmt.Sprintf("Thank you, %s! 🙏 Could you share your 10-digit mobile number?", s.CustomerName)

	case s.LoanAmount != nil && s.CustomerName == "" && s.TenureMonths != nil:
		return fmt.Sprintf("Perfect! %s for %d months. May I know your full name as per PAN card?",
			service.FormatINR(*s.LoanAmount), *s.TenureMonths)

	case s.LoanAmount != nil:
		return fmt.Sprintf("Great! You're looking for %s. What tenure would you prefer (6-84 months)?",
			service.FormatINR(*s.LoanAmount))

	default:
		return "I'd be happy to help you with a personal loan! 💰\n\n" +
			"Could you please tell me:\n" +
			"1. How much would you like to borrow?\n" +
			"2. For what purpose?\n" +
			"3. What tenure would you prefer (6-84 months)?"
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
