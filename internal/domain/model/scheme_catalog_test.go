package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveSchemes(t *testing.T) {
	schemes := ActiveSchemes()

	assert.Len(t, schemes, 10)
	for _, s := range schemes {
		assert.True(t, s.IsActive)
		assert.NotEmpty(t, s.SchemeID)
		assert.LessOrEqual(t, s.InterestRateMin, s.InterestRateMax)
		assert.LessOrEqual(t, s.MinLoanAmount, s.MaxLoanAmount)
		assert.LessOrEqual(t, s.MinTenureMonths, s.MaxTenureMonths)
		assert.NotEmpty(t, s.EligibleEmployment)
	}
}

func TestActiveSchemes_CatalogOrderPreserved(t *testing.T) {
	schemes := ActiveSchemes()
	require.Len(t, schemes, 10)

	assert.Equal(t, "HDFC_SMART_01", schemes[0].SchemeID)
	assert.Equal(t, "FULL_SMART_01", schemes[9].SchemeID)
}

func TestSchemeByID(t *testing.T) {
	scheme, ok := SchemeByID("BAJAJ_FLEXI_01")

	require.True(t, ok)
	assert.Equal(t, "Bajaj Finserv", scheme.BankName)
	require.NotNil(t, scheme.ProcessingFeeFlat)
	assert.Equal(t, int64(4999), *scheme.ProcessingFeeFlat)
}

func TestSchemeByID_Unknown(t *testing.T) {
	_, ok := SchemeByID("NOPE_01")

	assert.False(t, ok)
}

func TestProcessingFee(t *testing.T) {
	icici, ok := SchemeByID("ICICI_INSTANT_01") // 2.0 percent
	require.True(t, ok)
	assert.Equal(t, int64(10_000), icici.ProcessingFee(500_000))

	idfc, ok := SchemeByID("IDFC_DIGITAL_01") // flat 999
	require.True(t, ok)
	assert.Equal(t, int64(999), idfc.ProcessingFee(500_000))

	hdfc, ok := SchemeByID("HDFC_SMART_01") // zero percent
	require.True(t, ok)
	assert.Equal(t, int64(0), hdfc.ProcessingFee(500_000))
}
