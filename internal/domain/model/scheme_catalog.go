package model

func flatFee(v int64) *int64 { return &v }

// loanSchemeCatalog holds the fixed set of partner offers. All figures are
// synthetic demo data, not actual bank terms.
var loanSchemeCatalog = []LoanScheme{
	{
		SchemeID:             "HDFC_SMART_01",
		BankName:             "HDFC Bank",
		SchemeName:           "Smart Personal Loan",
		BankType:             "bank",
		InterestRateMin:      10.50,
		InterestRateMax:      14.00,
		MinLoanAmount:        50000,
		MaxLoanAmount:        4000000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       750,
		MinMonthlyIncome:     25000,
		MinAge:               21,
		MaxAge:               60,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed, EmploymentProfessional},
		ProcessingFeePercent: 0.0,
		SpecialOffers: []string{
			"Zero Processing Fee",
			"Instant Approval for Pre-approved",
			"Balance Transfer Available",
		},
		TargetPurposes: []string{PurposeWedding, PurposeHomeRenovation, PurposeTravel, PurposePersonal},
		RiskNotes:      nil,
		IsActive:       true,
		PriorityScore:  9,
	},
	{
		SchemeID:             "SBI_XPRESS_01",
		BankName:             "State Bank of India",
		SchemeName:           "Xpress Credit",
		BankType:             "bank",
		InterestRateMin:      10.00,
		InterestRateMax:      12.50,
		MinLoanAmount:        25000,
		MaxLoanAmount:        2000000,
		MinTenureMonths:      12,
		MaxTenureMonths:      72,
		MinCreditScore:       680,
		MinMonthlyIncome:     15000,
		MinAge:               21,
		MaxAge:               65,
		EligibleEmployment:   []string{EmploymentSalaried},
		ProcessingFeePercent: 1.0,
		SpecialOffers: []string{
			"Lowest Interest for Govt Employees",
			"Longer Tenure Available",
			"No Collateral Required",
		},
		TargetPurposes: []string{PurposeMedical, PurposeEducation, PurposeWedding, PurposeEmergency},
		RiskNotes:      []string{"Processing time 3-5 days"},
		IsActive:       true,
		PriorityScore:  8,
	},
	{
		SchemeID:             "ICICI_INSTANT_01",
		BankName:             "ICICI Bank",
		SchemeName:           "Instant Personal Loan",
		BankType:             "bank",
		InterestRateMin:      11.00,
		InterestRateMax:      15.00,
		MinLoanAmount:        50000,
		MaxLoanAmount:        2500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       700,
		MinMonthlyIncome:     20000,
		MinAge:               23,
		MaxAge:               58,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed},
		ProcessingFeePercent: 2.0,
		SpecialOffers: []string{
			"2-Hour Disbursement",
			"Paperless Process",
			"Flexible EMI Dates",
		},
		TargetPurposes: []string{PurposePersonal, PurposeTravel, PurposeHomeRenovation},
		RiskNotes:      []string{"Higher processing fee"},
		IsActive:       true,
		PriorityScore:  8,
	},
	{
		SchemeID:             "AXIS_EXPRESS_01",
		BankName:             "Axis Bank",
		SchemeName:           "Express Personal Loan",
		BankType:             "bank",
		InterestRateMin:      11.50,
		InterestRateMax:      16.00,
		MinLoanAmount:        50000,
		MaxLoanAmount:        1500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       650,
		MinMonthlyIncome:     15000,
		MinAge:               21,
		MaxAge:               60,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusiness},
		ProcessingFeePercent: 1.5,
		SpecialOffers: []string{
			"Pre-approved Offers",
			"Step-up EMI Option",
			"Top-up Loan Available",
		},
		TargetPurposes: []string{PurposeWedding, PurposePersonal, PurposeDebtConsolidation},
		RiskNotes:      nil,
		IsActive:       true,
		PriorityScore:  7,
	},
	{
		SchemeID:             "BAJAJ_FLEXI_01",
		BankName:             "Bajaj Finserv",
		SchemeName:           "Flexi Personal Loan",
		BankType:             "nbfc",
		InterestRateMin:      12.00,
		InterestRateMax:      17.00,
		MinLoanAmount:        100000,
		MaxLoanAmount:        3500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       720,
		MinMonthlyIncome:     25000,
		MinAge:               25,
		MaxAge:               55,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed, EmploymentProfessional},
		ProcessingFeePercent: 0.0,
		ProcessingFeeFlat:    flatFee(4999),
		SpecialOffers: []string{
			"Flexi Loan - Pay Interest Only",
			"Withdraw as Needed",
			"No Foreclosure Charges",
		},
		TargetPurposes: []string{PurposeBusiness, PurposeWedding, PurposeHomeRenovation},
		RiskNotes:      []string{"Higher interest for lower scores"},
		IsActive:       true,
		PriorityScore:  7,
	},
	{
		SchemeID:             "KOTAK_PRIME_01",
		BankName:             "Kotak Mahindra Bank",
		SchemeName:           "Prime Personal Loan",
		BankType:             "bank",
		InterestRateMin:      10.75,
		InterestRateMax:      14.50,
		MinLoanAmount:        75000,
		MaxLoanAmount:        3000000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       725,
		MinMonthlyIncome:     30000,
		MinAge:               21,
		MaxAge:               58,
		EligibleEmployment:   []string{EmploymentSalaried},
		ProcessingFeePercent: 2.5,
		SpecialOffers: []string{
			"Zero Prepayment Charges",
			"Dedicated Relationship Manager",
			"Priority Processing",
		},
		TargetPurposes: []string{PurposeTravel, PurposeWedding, PurposePersonal},
		RiskNotes:      []string{"High processing fee"},
		IsActive:       true,
		PriorityScore:  6,
	},
	{
		SchemeID:             "TATA_VALUE_01",
		BankName:             "Tata Capital",
		SchemeName:           "Value Personal Loan",
		BankType:             "nbfc",
		InterestRateMin:      11.50,
		InterestRateMax:      18.00,
		MinLoanAmount:        50000,
		MaxLoanAmount:        2500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      72,
		MinCreditScore:       650,
		MinMonthlyIncome:     18000,
		MinAge:               21,
		MaxAge:               60,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusiness},
		ProcessingFeePercent: 1.5,
		SpecialOffers: []string{
			"Women Borrowers Discount",
			"Festival Offers",
			"Quick Turnaround",
		},
		TargetPurposes: []string{PurposeMedical, PurposeEducation, PurposeEmergency, PurposeWedding},
		RiskNotes:      []string{"Higher rates for self-employed"},
		IsActive:       true,
		PriorityScore:  6,
	},
	{
		SchemeID:             "IDFC_DIGITAL_01",
		BankName:             "IDFC First Bank",
		SchemeName:           "Digital Personal Loan",
		BankType:             "bank",
		InterestRateMin:      10.49,
		InterestRateMax:      15.00,
		MinLoanAmount:        20000,
		MaxLoanAmount:        1000000,
		MinTenureMonths:      6,
		MaxTenureMonths:      48,
		MinCreditScore:       700,
		MinMonthlyIncome:     20000,
		MinAge:               23,
		MaxAge:               55,
		EligibleEmployment:   []string{EmploymentSalaried},
		ProcessingFeePercent: 0.0,
		ProcessingFeeFlat:    flatFee(999),
		SpecialOffers: []string{
			"100% Digital Process",
			"Instant Approval",
			"Low Documentation",
		},
		TargetPurposes: []string{PurposePersonal, PurposeTravel, PurposeEmergency},
		RiskNotes:      []string{"Lower max amount", "Shorter tenure"},
		IsActive:       true,
		PriorityScore:  7,
	},
	{
		SchemeID:             "INDUS_FLEX_01",
		BankName:             "IndusInd Bank",
		SchemeName:           "Flex Pay Personal Loan",
		BankType:             "bank",
		InterestRateMin:      11.00,
		InterestRateMax:      16.00,
		MinLoanAmount:        30000,
		MaxLoanAmount:        1500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      60,
		MinCreditScore:       675,
		MinMonthlyIncome:     20000,
		MinAge:               21,
		MaxAge:               60,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed},
		ProcessingFeePercent: 2.0,
		SpecialOffers: []string{
			"Step-up EMI",
			"Step-down EMI",
			"Balloon Payment Option",
		},
		TargetPurposes: []string{PurposeDebtConsolidation, PurposePersonal, PurposeMedical},
		RiskNotes:      nil,
		IsActive:       true,
		PriorityScore:  6,
	},
	{
		SchemeID:             "FULL_SMART_01",
		BankName:             "Fullerton India",
		SchemeName:           "Smart Cash Loan",
		BankType:             "nbfc",
		InterestRateMin:      14.00,
		InterestRateMax:      24.00,
		MinLoanAmount:        25000,
		MaxLoanAmount:        500000,
		MinTenureMonths:      12,
		MaxTenureMonths:      48,
		MinCreditScore:       600,
		MinMonthlyIncome:     12000,
		MinAge:               21,
		MaxAge:               65,
		EligibleEmployment:   []string{EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusiness, EmploymentProfessional},
		ProcessingFeePercent: 3.0,
		SpecialOffers: []string{
			"No Income Proof for Repeat Customers",
			"Doorstep Service",
			"Cash Disbursement",
		},
		TargetPurposes: []string{PurposeEmergency, PurposeMedical, PurposePersonal},
		RiskNotes:      []string{"Higher interest rates", "Lower loan amounts"},
		IsActive:       true,
		PriorityScore:  5,
	},
}

// ActiveSchemes returns every active scheme in catalog order.
func ActiveSchemes() []LoanScheme {
	out := make([]LoanScheme, 0, len(loanSchemeCatalog))
	for _, s := range loanSchemeCatalog {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

// SchemeByID looks up a scheme by its identifier.
func SchemeByID(id string) (LoanScheme, bool) {
	for _, s := range loanSchemeCatalog {
		if s.SchemeID == id {
			return s, true
		}
	}
	return LoanScheme{}, false
}
