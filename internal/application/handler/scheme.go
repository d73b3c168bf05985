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
// SchemeHandler – offer matching and ordinal selection
// ---------------------------------------------------------------------------

// SchemeHandler owns the approved side of DECISION and the
// SCHEME_RECOMMENDATION stage: it ranks catalog offers for the customer,
// presents the top three and records the customer's pick.
type SchemeHandler struct {
	engine *service.RecommendationEngine
}

// NewSchemeHandler wires the recommendation engine.
func NewSchemeHandler(engine *service.RecommendationEngine) *SchemeHandler {
	return &SchemeHandler{engine: engine}
}

func (h *SchemeHandler) Handle(_ context.Context, s *model.Session) (string, error) {
	if s.Stage.Equal(valueobject.StageSchemeRecommendation) {
		if idx, ok := parseSchemeSelection(s.LastUserMessage(), len(s.SchemeRecommendations)); ok {
			return h.selectScheme(s, idx), nil
		}
		if len(s.SchemeRecommendations) > 0 {
			// Invalid ordinal: re-prompt without mutating state.
			return "Please select one of the schemes above:\n" +
				"• Reply **'1'** for the best match\n" +
				"• Reply **'2'** or **'3'** for alternatives\n", nil
		}
	}

	return h.recommend(s), nil
}

func (h *SchemeHandler) recommend(s *model.Session) string {
	profile := profileFromSession(s)
	recs := h.engine.Recommend(profile)

	if len(recs) == 0 {
		s.Stage = valueobject.StageRejected
		s.Record(event.NewConversationRejected(s.ConversationID, "No eligible schemes found", nil))
		return noSchemesResponse(profile)
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}

	offers := make([]model.SchemeOffer, 0, len(recs))
	for _, r := range recs {
		offers = append(offers, model.SchemeOffer{
			SchemeID:     r.Scheme.SchemeID,
			BankName:     r.Scheme.BankName,
			SchemeName:   r.Scheme.SchemeName,
			Score:        r.Score,
			InterestRate: r.InterestRate,
			EMI:          r.EMI,
			TotalCost:    r.TotalCost,
		})
	}
	s.SchemeRecommendations = offers
	s.Stage = valueobject.StageSchemeRecommendation

	return recommendationsResponse(recs, profile)
}

func (h *SchemeHandler) selectScheme(s *model.Session, idx int) string {
	selected := s.SchemeRecommendations[idx]
	s.SelectedScheme = &selected

	rate := selected.InterestRate
	emi := selected.EMI
	s.FinalInterestRate = &rate
	s.EMI = &emi
	s.Stage = valueobject.StageRateNegotiation

	s.Record(event.NewSchemeSelected(s.ConversationID, selected.SchemeID, selected.BankName, rate, emi))

	return fmt.Sprintf(
		"✅ **Excellent Choice!**\n\n"+
			"You've selected **%s - %s**\n\n"+
			"**Final Terms:**\n"+
			"• Interest Rate: %v%% p.a.\n"+
			"• Monthly EMI: %s\n\n"+
			"Would you like to proceed with this rate, or would you like to **negotiate** for a better deal?\n\n"+
			"Reply **'accept'** to proceed or **'negotiate'** to request a better rate.",
		selected.BankName, selected.SchemeName, rate, service.FormatINR(emi),
	)
}

// profileFromSession applies the same fallbacks the flow has always used for
// profile fields the conversation never captured.
func profileFromSession(s *model.Session) service.CustomerProfile {
	profile := service.CustomerProfile{
		LoanAmount:     500_000,
		TenureMonths:   36,
		CreditScore:    700,
		MonthlyIncome:  50_000,
		LoanPurpose:    model.PurposePersonal,
		EmploymentType: model.EmploymentSalaried,
		Age:            30,
	}

	if s.LoanAmount != nil {
		profile.LoanAmount = *s.LoanAmount
	}
	if s.TenureMonths != nil {
		profile.TenureMonths = *s.TenureMonths
	}
	if s.CreditScore != nil {
		profile.CreditScore = *s.CreditScore
	}
	if s.MonthlySalary != nil {
		profile.MonthlyIncome = *s.MonthlySalary
	}
	if s.LoanPurpose != "" {
		profile.LoanPurpose = s.LoanPurpose
	}
	return profile
}

// parseSchemeSelection maps an ordinal reply onto a stored recommendation
// index.
func parseSchemeSelection(message string, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}

	switch strings.ToLower(strings.TrimSpace(message)) {
	case "1", "one", "first", "best":
		return 0, true
	case "2", "two", "second":
		if count > 1 {
			return 1, true
		}
	case "3", "three", "third":
		if count > 2 {
			return 2, true
		}
	}
	return 0, false
}

func recommendationsResponse(recs []service.SchemeRecommendation, profile service.CustomerProfile) string {
	best := recs[0]

	var b strings.Builder
	fmt.Fprintf(&b,
		"🏦 **Loan Scheme Analysis Complete!**\n\n"+
			"Based on your profile (Credit Score: %d, Loan: %s), I've analyzed eligible schemes.\n\n---\n\n",
		profile.CreditScore, service.FormatINR(profile.LoanAmount),
	)

	fmt.Fprintf(&b,
		"🏆 **Best Match: %s - %s**\n\n"+
			"| Parameter | Value |\n"+
			"|-----------|-------|\n"+
			"| Interest Rate | %v%% p.a. |\n"+
			"| Monthly EMI | %s |\n"+
			"| Total Cost | %s |\n"+
			"| Match Score | %v/100 |\n\n",
		best.Scheme.BankName, best.Scheme.SchemeName,
		best.InterestRate, service.FormatINR(best.EMI), service.FormatINR(best.TotalCost), best.Score,
	)

	b.WriteString("**Why this scheme:**\n")
	for i, exp := range best.Explanation {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "• %s\n", exp)
	}
	b.WriteString("\n")

	if len(best.Pros) > 0 {
		b.WriteString("✅ **Pros:** " + strings.Join(best.Pros, ", ") + "\n\n")
	}

	if len(recs) > 1 {
		b.WriteString("---\n\n**📋 Alternatives:**\n\n")
		for i, alt := range recs[1:] {
			fmt.Fprintf(&b,
				"**%d. %s - %s**\n   • Rate: %v%% | EMI: %s | Score: %v/100\n\n",
				i+1, alt.Scheme.BankName, alt.Scheme.SchemeName,
				alt.InterestRate, service.FormatINR(alt.EMI), alt.Score,
			)
		}
	}

	b.WriteString("---\n\n" +
		"💬 **Your Decision:**\n" +
		"• Reply **'1'** to proceed with the best match\n" +
		"• Reply **'2'** or **'3'** to select an alternative\n")

	return b.String()
}

func noSchemesResponse(profile service.CustomerProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"❌ **No Eligible Schemes Found**\n\n"+
			"Unfortunately, we couldn't find any schemes matching your requirements.\n\n"+
			"**Your Profile:**\n"+
			"• Credit Score: %d\n"+
			"• Requested Amount: %s\n\n"+
			"**Suggestions:**\n",
		profile.CreditScore, service.FormatINR(profile.LoanAmount),
	)

	if profile.CreditScore < 650 {
		b.WriteString("• Improve your credit score to 650+ for more options\n")
	}
	if profile.LoanAmount > 2_000_000 {
		b.WriteString("• Consider a lower loan amount\n")
	}

	b.WriteString("• Check back after 3-6 months\n" +
		"• Contact our support for personalized assistance\n")
	return b.String()
}
