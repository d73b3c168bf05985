package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/veritasfin/loanflow/internal/domain/model"
)

// ---------------------------------------------------------------------------
// RecommendationEngine – weighted scheme scoring and ranking
// ---------------------------------------------------------------------------

// Weights of the scoring factors. They sum to 1.0.
const (
	weightInterestRate     = 0.30
	weightEMIAffordability = 0.25
	weightCreditMatch      = 0.15
	weightProcessingFee    = 0.10
	weightPurposeMatch     = 0.10
	weightSpecialOffers    = 0.10
)

// CustomerProfile is the input to scheme matching.
type CustomerProfile struct {
	LoanAmount     int64
	TenureMonths   int
	CreditScore    int
	MonthlyIncome  int64
	LoanPurpose    string
	EmploymentType string
	Age            int
}

// SchemeRecommendation is a scored and explained scheme for one customer.
type SchemeRecommendation struct {
	Scheme       model.LoanScheme
	Score        float64
	InterestRate float64
	EMI          int64
	TotalCost    int64 // principal + interest + processing fee
	Explanation  []string
	Pros         []string
	Cons         []string
}

// RecommendationEngine ranks catalog schemes for a customer profile. Scoring
// is deterministic: a fixed profile always yields the same ordering and
// scores.
type RecommendationEngine struct{}

// NewRecommendationEngine returns a new engine instance.
func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{}
}

// Recommend filters the active catalog by eligibility, scores every eligible
// scheme and returns them sorted by score descending. Ties keep catalog
// order.
func (e *RecommendationEngine) Recommend(profile CustomerProfile) []SchemeRecommendation {
	var recs []SchemeRecommendation

	for _, scheme := range model.ActiveSchemes() {
		if eligible, _ := e.CheckEligibility(scheme, profile); !eligible {
			continue
		}

		rate := e.PersonalizedRate(scheme, profile.CreditScore)
		emi := EMI(profile.LoanAmount, rate, profile.TenureMonths)
		fee := scheme.ProcessingFee(profile.LoanAmount)
		totalInterest := emi*int64(profile.TenureMonths) - profile.LoanAmount
		totalCost := profile.LoanAmount + totalInterest + fee

		score, explanations := e.scoreScheme(scheme, profile, rate, emi, fee)
		pros, cons := e.prosAndCons(scheme, rate, fee)

		recs = append(recs, SchemeRecommendation{
			Scheme:       scheme,
			Score:        score,
			InterestRate: rate,
			EMI:          emi,
			TotalCost:    totalCost,
			Explanation:  explanations,
			Pros:         pros,
			Cons:         cons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	return recs
}

// CheckEligibility evaluates every catalog bound for the profile and returns
// whether the scheme qualifies, together with the violation reasons.
func (e *RecommendationEngine) CheckEligibility(scheme model.LoanScheme, p CustomerProfile) (bool, []string) {
	var reasons []string

	if p.CreditScore < scheme.MinCreditScore {
		reasons = append(reasons, fmt.Sprintf("Credit score %d below minimum %d", p.CreditScore, scheme.MinCreditScore))
	}
	if p.LoanAmount < scheme.MinLoanAmount {
		reasons = append(reasons, fmt.Sprintf("Amount below minimum %s", FormatINR(scheme.MinLoanAmount)))
	}
	if p.LoanAmount > scheme.MaxLoanAmount {
		reasons = append(reasons, fmt.Sprintf("Amount exceeds maximum %s", FormatINR(scheme.MaxLoanAmount)))
	}
	if p.TenureMonths < scheme.MinTenureMonths {
		reasons = append(reasons, fmt.Sprintf("Tenure below minimum %d months", scheme.MinTenureMonths))
	}
	if p.TenureMonths > scheme.MaxTenureMonths {
		reasons = append(reasons, fmt.Sprintf("Tenure exceeds maximum %d months", scheme.MaxTenureMonths))
	}
	if p.MonthlyIncome < scheme.MinMonthlyIncome {
		reasons = append(reasons, fmt.Sprintf("Income below minimum %s", FormatINR(scheme.MinMonthlyIncome)))
	}
	if p.Age < scheme.MinAge || p.Age > scheme.MaxAge {
		reasons = append(reasons, fmt.Sprintf("Age not in range %d-%d", scheme.MinAge, scheme.MaxAge))
	}
	if !scheme.AcceptsEmployment(p.EmploymentType) {
		reasons = append(reasons, fmt.Sprintf("Employment type %q not eligible", p.EmploymentType))
	}

	return len(reasons) == 0, reasons
}

// PersonalizedRate interpolates the scheme's rate band by credit score:
// 850 and above earns the minimum rate, 650 and below the maximum, with a
// linear slide in between rounded to two decimals.
func (e *RecommendationEngine) PersonalizedRate(scheme model.LoanScheme, creditScore int) float64 {
	switch {
	case creditScore >= 850:
		return scheme.InterestRateMin
	case creditScore <= 650:
		return scheme.InterestRateMax
	}

	scoreFactor := float64(850-creditScore) / 200
	rate := scheme.InterestRateMin + (scheme.InterestRateMax-scheme.InterestRateMin)*scoreFactor
	f, _ := decimal.NewFromFloat(rate).Round(2).Float64()
	return f
}

func (e *RecommendationEngine) scoreScheme(
	scheme model.LoanScheme,
	p CustomerProfile,
	rate float64,
	emi int64,
	fee int64,
) (float64, []string) {
	var explanations []string

	// Interest rate: 10% maps to 100, 24% to 0.
	rateScore := (24 - rate) / 14 * 100
	if rateScore < 0 {
		rateScore = 0
	}
	if rateScore > 100 {
		rateScore = 100
	}
	if rateScore >= 70 {
		explanations = append(explanations, fmt.Sprintf("Competitive interest rate at %v%%", rate))
	}

	// EMI affordability against income.
	emiRatio := float64(emi) / float64(p.MonthlyIncome)
	var emiScore float64
	switch {
	case emiRatio <= 0.3:
		emiScore = 100
		explanations = append(explanations, "EMI is very affordable (under 30% of income)")
	case emiRatio <= 0.4:
		emiScore = 80
		explanations = append(explanations, "EMI is affordable (under 40% of income)")
	case emiRatio <= 0.5:
		emiScore = 60
	default:
		emiScore = 100 - emiRatio*100
		if emiScore < 0 {
			emiScore = 0
		}
	}

	// Credit buffer above the scheme minimum.
	creditBuffer := p.CreditScore - scheme.MinCreditScore
	creditScore := float64(50 + creditBuffer)
	if creditScore > 100 {
		creditScore = 100
	}
	if creditBuffer >= 50 {
		explanations = append(explanations, "Your credit score qualifies for best rates")
	}

	// Processing fee as a percentage of principal.
	feePercent := float64(fee) / float64(p.LoanAmount) * 100
	var feeScore float64
	switch {
	case feePercent == 0:
		feeScore = 100
		explanations = append(explanations, "Zero processing fee!")
	case feePercent <= 1:
		feeScore = 80
	case feePercent <= 2:
		feeScore = 60
	default:
		feeScore = 100 - feePercent*20
		if feeScore < 0 {
			feeScore = 0
		}
	}

	// Purpose match is binary.
	purpose := strings.ToLower(p.LoanPurpose)
	if purpose == "" {
		purpose = model.PurposePersonal
	}
	purposeScore := 50.0
	if scheme.TargetsPurpose(purpose) {
		purposeScore = 100
		explanations = append(explanations, fmt.Sprintf("Specialized for %s loans", purpose))
	}

	// Promotional offers, capped at 100.
	offerCount := len(scheme.SpecialOffers)
	offerScore := float64(offerCount * 25)
	if offerScore > 100 {
		offerScore = 100
	}
	if offerCount >= 2 {
		explanations = append(explanations, fmt.Sprintf("Includes %d special benefits", offerCount))
	}

	total := rateScore*weightInterestRate +
		emiScore*weightEMIAffordability +
		creditScore*weightCreditMatch +
		feeScore*weightProcessingFee +
		purposeScore*weightPurposeMatch +
		offerScore*weightSpecialOffers

	rounded, _ := decimal.NewFromFloat(total).Round(1).Float64()
	return rounded, explanations
}

// prosAndCons derives a short pros/cons list from rate, fee and catalog risk
// notes, capped at 3 pros and 2 cons.
func (e *RecommendationEngine) prosAndCons(scheme model.LoanScheme, rate float64, fee int64) ([]string, []string) {
	var pros, cons []string

	if rate <= 11 {
		pros = append(pros, "Low interest rate")
	} else if rate >= 15 {
		cons = append(cons, "Higher interest rate")
	}

	if fee == 0 {
		pros = append(pros, "Zero processing fee")
	} else if fee >= 5000 {
		cons = append(cons, "High processing fee")
	}

	for i, offer := range scheme.SpecialOffers {
		if i == 2 {
			break
		}
		pros = append(pros, offer)
	}

	for i, note := range scheme.RiskNotes {
		if i == 2 {
			break
		}
		cons = append(cons, note)
	}

	if scheme.BankType == "bank" {
		pros = append(pros, "Backed by RBI-regulated bank")
	}

	if len(pros) > 3 {
		pros = pros[:3]
	}
	if len(cons) > 2 {
		cons = cons[:2]
	}
	return pros, cons
}
