package service

import (
	"fmt"

	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// UnderwritingEngine – rule-based credit decisioning
// ---------------------------------------------------------------------------

// Risk flags attached to underwriting outcomes.
const (
	FlagLowCreditScore    = "LOW_CREDIT_SCORE"
	FlagExceedsMaxLimit   = "EXCEEDS_MAX_LIMIT"
	FlagSalaryNotVerified = "SALARY_NOT_VERIFIED"
	FlagHighEMIRatio      = "HIGH_EMI_RATIO"
)

// UnderwritingInput carries everything the engine needs for one evaluation.
// Callers validate tenure and amount positivity before invoking the engine.
type UnderwritingInput struct {
	RequestedAmount  int64
	TenureMonths     int
	CreditScore      int
	PreApprovedLimit int64
	MonthlyIncome    int64
	IncomeVerified   bool
	ExistingEMI      int64
}

// RuleResult records one rule invocation for the audit trail.
type RuleResult struct {
	RuleName  string
	Passed    bool
	Message   string
	Value     float64
	Threshold float64
}

// UnderwritingResult holds the outcome of the underwriting evaluation.
// ApprovedAmount, InterestRate and EMI are meaningful only when the decision
// is APPROVED.
type UnderwritingResult struct {
	Decision       valueobject.UnderwritingDecision
	Reason         string
	ApprovedAmount int64
	InterestRate   float64
	EMI            int64
	RiskScore      float64
	RiskFlags      []string
	Rules          []RuleResult
}

// UnderwritingEngine encapsulates the rule-based decision procedure. The
// engine is pure: identical inputs and thresholds always produce identical
// results.
type UnderwritingEngine struct {
	creditScoreThreshold int
	maxEMIRatio          float64
	baseRate             float64
}

// NewUnderwritingEngine returns an engine configured with the given
// thresholds.
func NewUnderwritingEngine(creditScoreThreshold int, maxEMIRatio, baseRate float64) *UnderwritingEngine {
	return &UnderwritingEngine{
		creditScoreThreshold: creditScoreThreshold,
		maxEMIRatio:          maxEMIRatio,
		baseRate:             baseRate,
	}
}

// Evaluate applies the underwriting rules in strict order; the first decisive
// rule wins.
//
//  1. Credit score below threshold        -> REJECTED
//  2. Amount within pre-approved limit    -> APPROVED at full amount
//  3. Amount above twice the limit        -> REJECTED
//  4. Income unverified or zero           -> MANUAL_REVIEW
//  5. EMI ratio above maximum             -> reduced approval or REJECTED
//  6. Otherwise                           -> APPROVED at full amount
func (e *UnderwritingEngine) Evaluate(in UnderwritingInput) UnderwritingResult {
	var rules []RuleResult
	riskScore := e.heuristicRiskScore(in)

	// Rule 1: credit score hard floor.
	creditOK := in.CreditScore >= e.creditScoreThreshold
	rules = append(rules, RuleResult{
		RuleName:  "CREDIT_SCORE_CHECK",
		Passed:    creditOK,
		Message:   fmt.Sprintf("Credit score %d %s minimum threshold (%d)", in.CreditScore, passVerb(creditOK, "meets", "below"), e.creditScoreThreshold),
		Value:     float64(in.CreditScore),
		Threshold: float64(e.creditScoreThreshold),
	})
	if !creditOK {
		return UnderwritingResult{
			Decision:  valueobject.DecisionRejected,
			Reason:    fmt.Sprintf("Credit score (%d) below minimum threshold (%d)", in.CreditScore, e.creditScoreThreshold),
			RiskScore: riskScore,
			RiskFlags: []string{FlagLowCreditScore},
			Rules:     rules,
		}
	}

	rate := InterestRateForScore(in.CreditScore, e.baseRate)
	emi := EMI(in.RequestedAmount, rate, in.TenureMonths)

	// Rule 2: auto-approve within the pre-approved limit.
	withinLimit := in.RequestedAmount <= in.PreApprovedLimit
	rules = append(rules, RuleResult{
		RuleName:  "PRE_APPROVED_LIMIT_CHECK",
		Passed:    withinLimit,
		Message:   fmt.Sprintf("Requested %s %s pre-approved limit %s", FormatINR(in.RequestedAmount), passVerb(withinLimit, "within", "exceeds"), FormatINR(in.PreApprovedLimit)),
		Value:     float64(in.RequestedAmount),
		Threshold: float64(in.PreApprovedLimit),
	})
	if withinLimit {
		return UnderwritingResult{
			Decision:       valueobject.DecisionApproved,
			Reason:         "Within pre-approved limit",
			ApprovedAmount: in.RequestedAmount,
			InterestRate:   rate,
			EMI:            emi,
			RiskScore:      riskScore,
			Rules:          rules,
		}
	}

	// Rule 3: hard ceiling at twice the pre-approved limit.
	ceiling := 2 * in.PreApprovedLimit
	underCeiling := in.RequestedAmount <= ceiling
	rules = append(rules, RuleResult{
		RuleName:  "MAX_ELIGIBLE_LIMIT_CHECK",
		Passed:    underCeiling,
		Message:   fmt.Sprintf("Requested %s %s maximum eligible amount %s", FormatINR(in.RequestedAmount), passVerb(underCeiling, "within", "exceeds"), FormatINR(ceiling)),
		Value:     float64(in.RequestedAmount),
		Threshold: float64(ceiling),
	})
	if !underCeiling {
		return UnderwritingResult{
			Decision:  valueobject.DecisionRejected,
			Reason:    fmt.Sprintf("Requested amount (%s) exceeds maximum eligible amount (%s)", FormatINR(in.RequestedAmount), FormatINR(ceiling)),
			RiskScore: riskScore,
			RiskFlags: []string{FlagExceedsMaxLimit},
			Rules:     rules,
		}
	}

	// Rule 4: salary verification gate for amounts above the limit.
	salaryOK := in.IncomeVerified && in.MonthlyIncome > 0
	rules = append(rules, RuleResult{
		RuleName:  "SALARY_VERIFICATION_CHECK",
		Passed:    salaryOK,
		Message:   passVerb(salaryOK, "Salary verified", "Salary verification required for loan amount exceeding pre-approved limit"),
		Value:     float64(in.MonthlyIncome),
		Threshold: 0,
	})
	if !salaryOK {
		return UnderwritingResult{
			Decision:  valueobject.DecisionManualReview,
			Reason:    "Salary verification required for loan amount exceeding pre-approved limit",
			RiskScore: riskScore,
			RiskFlags: []string{FlagSalaryNotVerified},
			Rules:     rules,
		}
	}

	// Rule 5: EMI affordability against verified income.
	emiRatio := float64(emi+in.ExistingEMI) / float64(in.MonthlyIncome)
	affordable := emiRatio <= e.maxEMIRatio
	rules = append(rules, RuleResult{
		RuleName:  "EMI_AFFORDABILITY_CHECK",
		Passed:    affordable,
		Message:   fmt.Sprintf("EMI ratio %.2f %s maximum %.2f", emiRatio, passVerb(affordable, "within", "exceeds"), e.maxEMIRatio),
		Value:     emiRatio,
		Threshold: e.maxEMIRatio,
	})
	if !affordable {
		maxAffordableEMI := int64(float64(in.MonthlyIncome)*e.maxEMIRatio) - in.ExistingEMI
		maxLoan := MaxLoan(maxAffordableEMI, rate, in.TenureMonths)

		if float64(maxLoan) >= float64(in.RequestedAmount)*0.5 {
			reducedEMI := EMI(maxLoan, rate, in.TenureMonths)
			return UnderwritingResult{
				Decision:       valueobject.DecisionApproved,
				Reason:         fmt.Sprintf("Approved for reduced amount based on EMI affordability (max %.0f%% of salary)", e.maxEMIRatio*100),
				ApprovedAmount: maxLoan,
				InterestRate:   rate,
				EMI:            reducedEMI,
				RiskScore:      riskScore,
				RiskFlags:      []string{FlagHighEMIRatio},
				Rules:          rules,
			}
		}

		return UnderwritingResult{
			Decision:  valueobject.DecisionRejected,
			Reason:    "Insufficient repayment capacity",
			RiskScore: riskScore,
			RiskFlags: []string{FlagHighEMIRatio},
			Rules:     rules,
		}
	}

	// Rule 6: everything passed.
	return UnderwritingResult{
		Decision:       valueobject.DecisionApproved,
		Reason:         "All eligibility criteria met",
		ApprovedAmount: in.RequestedAmount,
		InterestRate:   rate,
		EMI:            emi,
		RiskScore:      riskScore,
		Rules:          rules,
	}
}

// heuristicRiskScore derives an advisory risk score in [0.1, 0.9]; lower is
// safer. It never overrides the rule outcome.
func (e *UnderwritingEngine) heuristicRiskScore(in UnderwritingInput) float64 {
	score := 0.3

	switch {
	case in.CreditScore >= 800:
		score -= 0.1
	case in.CreditScore >= 750:
		score -= 0.05
	case in.CreditScore < 700:
		score += 0.2
	}

	if in.MonthlyIncome > 0 {
		lti := float64(in.RequestedAmount) / float64(in.MonthlyIncome*12)
		if lti > 2 {
			score += 0.15
		} else if lti < 1 {
			score -= 0.05
		}
	}

	if in.PreApprovedLimit > 0 {
		pa := float64(in.RequestedAmount) / float64(in.PreApprovedLimit)
		if pa > 1.5 {
			score += 0.1
		} else if pa <= 1 {
			score -= 0.05
		}
	}

	if score < 0.1 {
		return 0.1
	}
	if score > 0.9 {
		return 0.9
	}
	return score
}

func passVerb(ok bool, pass, fail string) string {
	if ok {
		return pass
	}
	return fail
}
