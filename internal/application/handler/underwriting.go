package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// UnderwritingHandler – credit check, salary capture and rule evaluation
// ---------------------------------------------------------------------------

// UnderwritingHandler owns CREDIT_CHECK, SALARY_UPLOAD, UNDERWRITING and the
// non-approved side of DECISION. On SALARY_UPLOAD it first captures the
// customer's stated monthly salary, then re-runs the rule engine.
type UnderwritingHandler struct {
	engine *service.UnderwritingEngine
}

// NewUnderwritingHandler wires the rule engine.
func NewUnderwritingHandler(engine *service.UnderwritingEngine) *UnderwritingHandler {
	return &UnderwritingHandler{engine: engine}
}

func (h *UnderwritingHandler) Handle(_ context.Context, s *model.Session) (string, error) {
	if s.Stage.Equal(valueobject.StageSalaryUpload) {
		salary := ExtractMonthlySalary(s.LastUserMessage())
		if salary == 0 {
			// Cannot make progress without a figure; re-ask.
			return "To continue, please share your monthly take-home salary " +
				"(for example: \"my salary is 45,000 per month\").", nil
		}
		s.MonthlySalary = &salary
		s.SalaryVerified = true
	}

	result := h.engine.Evaluate(service.UnderwritingInput{
		RequestedAmount:  derefInt64(s.LoanAmount),
		TenureMonths:     tenureOrDefault(s),
		CreditScore:      derefInt(s.CreditScore),
		PreApprovedLimit: derefInt64(s.PreApprovedLimit),
		MonthlyIncome:    derefInt64(s.MonthlySalary),
		IncomeVerified:   s.SalaryVerified,
	})

	s.Decision = result.Decision
	s.DecisionReason = result.Reason
	risk := result.RiskScore
	s.RiskScore = &risk
	s.RiskFlags = result.RiskFlags

	s.Record(event.NewUnderwritingDecided(
		s.ConversationID, s.ApplicationID, result.Decision.String(), result.Reason,
		result.ApprovedAmount, result.InterestRate, result.RiskScore, result.RiskFlags,
	))

	switch {
	case result.Decision.Equal(valueobject.DecisionApproved):
		amount := result.ApprovedAmount
		rate := result.InterestRate
		emi := result.EMI
		s.ApprovedAmount = &amount
		s.InterestRate = &rate
		s.EMI = &emi
		s.Stage = valueobject.StageDecision
		return h.approvedResponse(s, result), nil

	case result.Decision.Equal(valueobject.DecisionRejected):
		s.Stage = valueobject.StageRejected
		s.Record(event.NewConversationRejected(s.ConversationID, result.Reason, result.RiskFlags))
		return h.rejectedResponse(result), nil

	default: // MANUAL_REVIEW
		if hasFlag(result.RiskFlags, service.FlagSalaryNotVerified) {
			// Salary is the blocker and can be captured in chat.
			s.Stage = valueobject.StageSalaryUpload
			return "📊 **Underwriting In Progress**\n\n" +
				"Your requested amount is above your pre-approved limit, so we need " +
				"to confirm your income before deciding.\n\n" +
				"Please share your monthly take-home salary to continue.", nil
		}
		s.Stage = valueobject.StageUnderwriting
		return "📊 **Underwriting In Progress**\n\n" +
			"⏳ **Decision: Requires Manual Review**\n\n" +
			"Your application needs additional review by our credit team.\n" +
			"This typically takes 2-4 business hours.\n\n" +
			"We'll notify you via SMS once a decision is made.", nil
	}
}

func (h *UnderwritingHandler) approvedResponse(s *model.Session, result service.UnderwritingResult) string {
	tenure := tenureOrDefault(s)
	return fmt.Sprintf(
		"📊 **Underwriting Complete**\n\n"+
			"✅ **Decision: APPROVED**\n\n"+
			"**Loan Details:**\n"+
			"• Approved Amount: %s\n"+
			"• Interest Rate: %v%% p.a.\n"+
			"• Monthly EMI: %s\n"+
			"• Tenure: %d months\n"+
			"• Total Repayment: %s\n\n"+
			"🎉 Congratulations! Your loan is approved. "+
			"Let me find the best schemes for you.",
		service.FormatINR(result.ApprovedAmount), result.InterestRate,
		service.FormatINR(result.EMI), tenure,
		service.FormatINR(result.EMI*int64(tenure)),
	)
}

func (h *UnderwritingHandler) rejectedResponse(result service.UnderwritingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Underwriting Complete**\n\n❌ **Decision: REJECTED**\n\n**Reason:** %s\n\n", result.Reason)

	if len(result.RiskFlags) > 0 {
		b.WriteString("**Risk Flags:**\n")
		for _, flag := range result.RiskFlags {
			fmt.Fprintf(&b, "• %s\n", flag)
		}
		b.WriteString("\n")
	}

	b.WriteString("We recommend addressing these concerns and reapplying after 3-6 months.\n" +
		"You can also try with a lower loan amount.")
	return b.String()
}

func tenureOrDefault(s *model.Session) int {
	if s.TenureMonths != nil {
		return *s.TenureMonths
	}
	return 12
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
