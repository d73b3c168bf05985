package model

// ---------------------------------------------------------------------------
// LoanScheme – catalog entry for a partner financing offer
// ---------------------------------------------------------------------------

// Employment categories accepted by scheme eligibility rules.
const (
	EmploymentSalaried     = "salaried"
	EmploymentSelfEmployed = "self_employed"
	EmploymentBusiness     = "business"
	EmploymentProfessional = "professional"
)

// Loan purposes recognised by the catalog and the conversation flow.
const (
	PurposeWedding           = "wedding"
	PurposeMedical           = "medical"
	PurposeEducation         = "education"
	PurposeHomeRenovation    = "home_renovation"
	PurposeTravel            = "travel"
	PurposeDebtConsolidation = "debt_consolidation"
	PurposeBusiness          = "business"
	PurposePersonal          = "personal"
	PurposeEmergency         = "emergency"
)

// LoanScheme describes one partner personal-loan product. Catalog entries are
// read-only; ProcessingFeeFlat of nil means the percentage fee applies.
type LoanScheme struct {
	SchemeID   string
	BankName   string
	SchemeName string
	BankType   string // "bank" or "nbfc"

	InterestRateMin float64
	InterestRateMax float64

	MinLoanAmount int64
	MaxLoanAmount int64

	MinTenureMonths int
	MaxTenureMonths int

	MinCreditScore     int
	MinMonthlyIncome   int64
	MinAge             int
	MaxAge             int
	EligibleEmployment []string

	ProcessingFeePercent float64
	ProcessingFeeFlat    *int64

	SpecialOffers  []string
	TargetPurposes []string
	RiskNotes      []string

	IsActive      bool
	PriorityScore int
}

// AcceptsEmployment reports whether the scheme is open to the given
// employment category.
func (s LoanScheme) AcceptsEmployment(employment string) bool {
	for _, e := range s.EligibleEmployment {
		if e == employment {
			return true
		}
	}
	return false
}

// TargetsPurpose reports whether the scheme is marketed for the given loan
// purpose.
func (s LoanScheme) TargetsPurpose(purpose string) bool {
	for _, p := range s.TargetPurposes {
		if p == purpose {
			return true
		}
	}
	return false
}

// ProcessingFee returns the fee charged on the given principal: the flat fee
// when configured, otherwise the percentage of the amount truncated to a
// whole rupee.
func (s LoanScheme) ProcessingFee(amount int64) int64 {
	if s.ProcessingFeeFlat != nil {
		return *s.ProcessingFeeFlat
	}
	return int64(float64(amount) * s.ProcessingFeePercent / 100)
}
