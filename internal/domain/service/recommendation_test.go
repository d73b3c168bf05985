package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritasfin/loanflow/internal/domain/model"
)

func strongProfile() CustomerProfile {
	return CustomerProfile{
		LoanAmount:     500_000,
		TenureMonths:   36,
		CreditScore:    780,
		MonthlyIncome:  60_000,
		LoanPurpose:    model.PurposeWedding,
		EmploymentType: model.EmploymentSalaried,
		Age:            30,
	}
}

func TestRecommend_ReturnsSortedEligibleSchemes(t *testing.T) {
	engine := NewRecommendationEngine()
	recs := engine.Recommend(strongProfile())

	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	engine := NewRecommendationEngine()

	first := engine.Recommend(strongProfile())
	second := engine.Recommend(strongProfile())

	assert.Equal(t, first, second)
}

func TestRecommend_FiltersByCreditScore(t *testing.T) {
	engine := NewRecommendationEngine()

	profile := strongProfile()
	profile.CreditScore = 700

	for _, rec := range engine.Recommend(profile) {
		assert.LessOrEqual(t, rec.Scheme.MinCreditScore, 700,
			"scheme %s requires score %d", rec.Scheme.SchemeID, rec.Scheme.MinCreditScore)
	}
}

func TestRecommend_NoEligibleSchemes(t *testing.T) {
	engine := NewRecommendationEngine()

	profile := strongProfile()
	profile.CreditScore = 550
	profile.MonthlyIncome = 5_000

	assert.Empty(t, engine.Recommend(profile))
}

func TestCheckEligibility_CollectsAllViolations(t *testing.T) {
	engine := NewRecommendationEngine()
	scheme, ok := model.SchemeByID("HDFC_SMART_01")
	require.True(t, ok)

	eligible, reasons := engine.CheckEligibility(scheme, CustomerProfile{
		LoanAmount:     10_000, // below 50,000 minimum
		TenureMonths:   6,      // below 12-month minimum
		CreditScore:    600,    // below 750 minimum
		MonthlyIncome:  10_000, // below 25,000 minimum
		EmploymentType: "unemployed",
		Age:            70, // above 60 maximum
	})

	assert.False(t, eligible)
	assert.Len(t, reasons, 6)
}

func TestPersonalizedRate_Clamps(t *testing.T) {
	engine := NewRecommendationEngine()
	scheme, ok := model.SchemeByID("ICICI_INSTANT_01") // 11.00 - 15.00
	require.True(t, ok)

	assert.Equal(t, 11.00, engine.PersonalizedRate(scheme, 850))
	assert.Equal(t, 11.00, engine.PersonalizedRate(scheme, 900))
	assert.Equal(t, 15.00, engine.PersonalizedRate(scheme, 650))
	assert.Equal(t, 15.00, engine.PersonalizedRate(scheme, 500))
}

func TestPersonalizedRate_Interpolates(t *testing.T) {
	engine := NewRecommendationEngine()
	scheme, ok := model.SchemeByID("ICICI_INSTANT_01") // 11.00 - 15.00
	require.True(t, ok)

	// Score 750 sits halfway: 11 + 4 * (850-750)/200 = 13.00.
	assert.Equal(t, 13.00, engine.PersonalizedRate(scheme, 750))
}

func TestRecommend_TotalCostIncludesFee(t *testing.T) {
	engine := NewRecommendationEngine()
	recs := engine.Recommend(strongProfile())
	require.NotEmpty(t, recs)

	for _, rec := range recs {
		fee := rec.Scheme.ProcessingFee(500_000)
		interest := rec.EMI*36 - 500_000
		assert.Equal(t, 500_000+interest+fee, rec.TotalCost, "scheme %s", rec.Scheme.SchemeID)
	}
}

func TestRecommend_ProsConsCapped(t *testing.T) {
	engine := NewRecommendationEngine()

	for _, rec := range engine.Recommend(strongProfile()) {
		assert.LessOrEqual(t, len(rec.Pros), 3)
		assert.LessOrEqual(t, len(rec.Cons), 2)
	}
}

func TestRecommend_ZeroFeeSchemeEarnsExplanation(t *testing.T) {
	engine := NewRecommendationEngine()
	recs := engine.Recommend(strongProfile())

	var hdfc *SchemeRecommendation
	for i := range recs {
		if recs[i].Scheme.SchemeID == "HDFC_SMART_01" {
			hdfc = &recs[i]
			break
		}
	}
	require.NotNil(t, hdfc, "profile should qualify for HDFC_SMART_01")

	assert.Contains(t, hdfc.Explanation, "Zero processing fee!")
	assert.Contains(t, hdfc.Pros, "Zero processing fee")
}
