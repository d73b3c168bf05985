package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLoanInquiry(t *testing.T) {
	assert.True(t, IsLoanInquiry("I need a loan"))
	assert.True(t, IsLoanInquiry("can I borrow some money"))
	assert.True(t, IsLoanInquiry("what is the interest rate"))
	assert.True(t, IsLoanInquiry("I want 5 lakhs"))
	assert.False(t, IsLoanInquiry("hello"))
	assert.False(t, IsLoanInquiry("good morning"))
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int64
	}{
		{"lakh shorthand", "I need 2 lakh", 200_000},
		{"lakh plural falls back to multiplier", "give me 5 lakhs", 500_000},
		{"rupee symbol with indian commas", "₹2,00,000 please", 200_000},
		{"plain digits", "I want 500000", 500_000},
		{"rs prefix", "rs. 75000", 75_000},
		{"crore", "1 crore loan", 10_000_000},
		{"below floor ignored", "I need 5000", 0},
		{"above ceiling ignored", "99999999 rupees", 0},
		{"no amount", "I need a loan", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLoanInfo(tt.message, false)
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}

func TestExtractTenure(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"for 24 months", 24},
		{"3 years please", 36},
		{"over 2 yrs", 24},
		{"for 5 months", 0},   // below 6
		{"for 100 months", 0}, // above 84
		{"no tenure here", 0},
	}
	for _, tt := range tests {
		got := ExtractLoanInfo(tt.message, false)
		assert.Equal(t, tt.want, got.Tenure, tt.message)
	}
}

func TestExtractPhone(t *testing.T) {
	got := ExtractLoanInfo("my number is 9876543210", false)
	assert.Equal(t, "9876543210", got.Phone)

	// Indian mobiles start with 6-9.
	got = ExtractLoanInfo("call 1234567890", false)
	assert.Empty(t, got.Phone)
}

func TestExtractName(t *testing.T) {
	got := ExtractLoanInfo("I am Rahul Sharma and I need a loan", false)
	assert.Equal(t, "Rahul Sharma", got.Name)

	got = ExtractLoanInfo("my name is Priya", false)
	assert.Equal(t, "Priya", got.Name)

	// Bare capitalized reply counts as a name only when none is on file.
	got = ExtractLoanInfo("Amit Kumar", false)
	assert.Equal(t, "Amit Kumar", got.Name)

	got = ExtractLoanInfo("Amit Kumar", true)
	assert.Empty(t, got.Name)

	// Conversational words are never names.
	got = ExtractLoanInfo("Yes", false)
	assert.Empty(t, got.Name)
	got = ExtractLoanInfo("Okay", false)
	assert.Empty(t, got.Name)
}

func TestExtractPurpose(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"loan for my daughter's wedding", "wedding"},
		{"need money for hospital bills", "medical"},
		{"funding my college course", "education"},
		{"home renovation work", "home renovation"},
		{"vacation trip to goa", "travel"},
		{"clear my credit card debt", "debt consolidation"},
		{"starting a business", "business"},
		{"just a loan", ""},
	}
	for _, tt := range tests {
		got := ExtractLoanInfo(tt.message, false)
		assert.Equal(t, tt.want, got.Purpose, tt.message)
	}
}

func TestExtractPurposePriority(t *testing.T) {
	// Medical outranks travel when both appear.
	got := ExtractLoanInfo("travel for medical treatment", false)
	assert.Equal(t, "medical", got.Purpose)
}

func TestExtractMonthlySalary(t *testing.T) {
	assert.Equal(t, int64(45_000), ExtractMonthlySalary("my salary is 45,000 per month"))
	assert.Equal(t, int64(60_000), ExtractMonthlySalary("I earn 60000"))
	assert.Equal(t, int64(100_000), ExtractMonthlySalary("1 lakh per month"))
	assert.Equal(t, int64(0), ExtractMonthlySalary("around 2000")) // below floor
	assert.Equal(t, int64(0), ExtractMonthlySalary("a decent amount"))
}

func TestExtractCombined(t *testing.T) {
	got := ExtractLoanInfo(
		"Hi, I am Rahul Sharma, I need a loan of 5 lakh for a wedding, my number is 9876543210, for 3 years",
		false,
	)
	assert.Equal(t, "Rahul Sharma", got.Name)
	assert.Equal(t, "9876543210", got.Phone)
	assert.Equal(t, int64(500_000), got.Amount)
	assert.Equal(t, 36, got.Tenure)
	assert.Equal(t, "wedding", got.Purpose)
}
