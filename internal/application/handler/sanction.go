package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SanctionHandler – letter issuance and completion
// ---------------------------------------------------------------------------

// SanctionHandler owns SANCTION_LETTER. It renders the letter for an
// approved loan and closes the conversation.
type SanctionHandler struct {
	renderer port.SanctionRenderer
	now      func() time.Time
}

// NewSanctionHandler wires the document renderer.
func NewSanctionHandler(renderer port.SanctionRenderer) *SanctionHandler {
	return &SanctionHandler{renderer: renderer, now: time.Now}
}

func (h *SanctionHandler) Handle(ctx context.Context, s *model.Session) (string, error) {
	if !s.Decision.Equal(valueobject.DecisionApproved) {
		s.Stage = valueobject.StageError
		s.ErrorMessage = "Cannot generate sanction letter for non-approved loan"
		return "❌ Unable to generate sanction letter. Loan must be approved first.", nil
	}

	letter, err := h.renderer.Render(ctx, s)
	if err != nil {
		return "", fmt.Errorf("sanction: render letter: %w", err)
	}

	s.SanctionID = letter.SanctionID
	s.SanctionLetterPath = letter.Locator
	s.Stage = valueobject.StageCompleted
	s.Record(event.NewSanctionIssued(s.ConversationID, letter.SanctionID, letter.Locator))

	return fmt.Sprintf(
		"📄 **Sanction Letter Generated!**\n\n"+
			"**Sanction ID:** %s\n"+
			"**Date:** %s\n\n"+
			"**Loan Summary:**\n"+
			"• Borrower: %s\n"+
			"• Sanctioned Amount: %s\n"+
			"• Interest Rate: %v%% p.a.\n"+
			"• EMI: %s/month\n"+
			"• Tenure: %d months\n\n"+
			"📥 [Download Sanction Letter](%s)\n\n"+
			"---\n\n"+
			"✅ **Next Steps:**\n"+
			"1. Review and sign the sanction letter\n"+
			"2. Submit any pending documents\n"+
			"3. Complete e-Mandate for EMI deduction\n"+
			"4. Receive disbursement within 24-48 hours\n\n"+
			"A loan officer will contact you shortly to complete the process.\n"+
			"Thank you for choosing us! 🙏",
		letter.SanctionID, h.now().Format("02 January 2006"),
		s.CustomerName, service.FormatINR(derefInt64(s.ApprovedAmount)),
		s.EffectiveRate(), service.FormatINR(derefInt64(s.EMI)), tenureOrDefault(s),
		letter.Locator,
	), nil
}
