package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

func fullSession() *model.Session {
	amount := int64(500_000)
	tenure := 36
	score := 780
	limit := int64(750_000)
	salary := int64(60_000)
	approved := int64(500_000)
	emi := int64(16_486)
	rate := 10.5
	finalRate := 10.0
	risk := 0.25

	selected := model.SchemeOffer{
		SchemeID:     "HDFC_SMART_01",
		BankName:     "HDFC Bank",
		SchemeName:   "Smart Personal Loan",
		Score:        88.5,
		InterestRate: 10.75,
		EMI:          16_300,
		TotalCost:    586_800,
	}

	return &model.Session{
		ConversationID:   "conv-1",
		Stage:            valueobject.StageRateNegotiation,
		CustomerID:       "cust-42",
		CustomerPhone:    "9876543210",
		CustomerName:     "Rahul Sharma",
		CustomerPAN:      "ABCDE1234F",
		ApplicationID:    "LOAN-20260829-AABBCCDD",
		LoanAmount:       &amount,
		TenureMonths:     &tenure,
		LoanPurpose:      "wedding",
		KYCVerified:      true,
		OTPCode:          "123456",
		OTPVerified:      true,
		CreditScore:      &score,
		PreApprovedLimit: &limit,
		SalaryVerified:   true,
		MonthlySalary:    &salary,
		Decision:         valueobject.DecisionApproved,
		DecisionReason:   "Within pre-approved limit",
		ApprovedAmount:   &approved,
		EMI:              &emi,
		InterestRate:     &rate,
		RiskScore:        &risk,
		RiskFlags:        []string{"HIGH_EMI_RATIO"},

		NegotiationAttempts:   1,
		FinalInterestRate:     &finalRate,
		SchemeRecommendations: []model.SchemeOffer{selected},
		SelectedScheme:        &selected,

		SanctionID:         "SL202608291430ABCDEF",
		SanctionLetterPath: "/api/v1/sanction/download/SL202608291430ABCDEF",

		Transcript: []model.Turn{
			{Role: model.RoleUser, Content: "hi", At: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)},
			{Role: model.RoleAssistant, Content: "hello", At: time.Date(2026, 8, 29, 10, 0, 1, 0, time.UTC)},
		},
		UpdatedAt: time.Date(2026, 8, 29, 10, 0, 1, 0, time.UTC),
	}
}

func TestSessionDocumentRoundTrip(t *testing.T) {
	original := fullSession()

	raw, err := json.Marshal(toDocument(original))
	require.NoError(t, err)

	var doc sessionDocument
	require.NoError(t, json.Unmarshal(raw, &doc))

	restored, err := fromDocument(doc)
	require.NoError(t, err)

	// The event collector is transient and never persisted; compare the rest.
	assert.Equal(t, original.ConversationID, restored.ConversationID)
	assert.True(t, original.Stage.Equal(restored.Stage))
	assert.True(t, original.Decision.Equal(restored.Decision))
	assert.Equal(t, original.CustomerName, restored.CustomerName)
	assert.Equal(t, original.CustomerPAN, restored.CustomerPAN)
	assert.Equal(t, original.LoanAmount, restored.LoanAmount)
	assert.Equal(t, original.TenureMonths, restored.TenureMonths)
	assert.Equal(t, original.CreditScore, restored.CreditScore)
	assert.Equal(t, original.PreApprovedLimit, restored.PreApprovedLimit)
	assert.Equal(t, original.MonthlySalary, restored.MonthlySalary)
	assert.Equal(t, original.ApprovedAmount, restored.ApprovedAmount)
	assert.Equal(t, original.InterestRate, restored.InterestRate)
	assert.Equal(t, original.FinalInterestRate, restored.FinalInterestRate)
	assert.Equal(t, original.RiskScore, restored.RiskScore)
	assert.Equal(t, original.RiskFlags, restored.RiskFlags)
	assert.Equal(t, original.NegotiationAttempts, restored.NegotiationAttempts)
	assert.Equal(t, original.SchemeRecommendations, restored.SchemeRecommendations)
	assert.Equal(t, original.SelectedScheme, restored.SelectedScheme)
	assert.Equal(t, original.SanctionID, restored.SanctionID)
	assert.Equal(t, original.SanctionLetterPath, restored.SanctionLetterPath)
	assert.Equal(t, original.Transcript, restored.Transcript)
	assert.True(t, original.UpdatedAt.Equal(restored.UpdatedAt))
}

func TestSessionDocumentFreshSession(t *testing.T) {
	original := model.NewSession("conv-2")

	raw, err := json.Marshal(toDocument(original))
	require.NoError(t, err)

	var doc sessionDocument
	require.NoError(t, json.Unmarshal(raw, &doc))

	restored, err := fromDocument(doc)
	require.NoError(t, err)

	assert.True(t, restored.Stage.Equal(valueobject.StageGreeting))
	assert.True(t, restored.Decision.IsZero())
	assert.Nil(t, restored.LoanAmount)
	assert.Nil(t, restored.SelectedScheme)
	assert.Empty(t, restored.Transcript)
}

func TestSessionDocumentRejectsUnknownStage(t *testing.T) {
	_, err := fromDocument(sessionDocument{ConversationID: "conv-3", Stage: "LIMBO"})
	require.Error(t, err)
}
