package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

func newTestUnderwritingHandler() *UnderwritingHandler {
	return NewUnderwritingHandler(service.NewUnderwritingEngine(700, 0.5, 12.5))
}

func creditCheckSession(amount, limit int64, score int) *model.Session {
	s := model.NewSession("conv-1")
	s.Stage = valueobject.StageCreditCheck
	s.CustomerName = "Rahul Sharma"
	s.ApplicationID = "LOAN-20260829-AAAAAAAA"
	s.KYCVerified = true
	s.LoanAmount = &amount
	tenure := 36
	s.TenureMonths = &tenure
	s.CreditScore = &score
	s.PreApprovedLimit = &limit
	s.AppendUserTurn("please process my application")
	return s
}

func TestUnderwritingHandlerApproved(t *testing.T) {
	h := newTestUnderwritingHandler()
	s := creditCheckSession(150_000, 500_000, 780)

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Decision.Equal(valueobject.DecisionApproved))
	assert.True(t, s.Stage.Equal(valueobject.StageDecision))
	require.NotNil(t, s.ApprovedAmount)
	assert.Equal(t, int64(150_000), *s.ApprovedAmount)
	require.NotNil(t, s.InterestRate)
	assert.InDelta(t, 10.5, *s.InterestRate, 0.001)
	require.NotNil(t, s.EMI)
	assert.Positive(t, *s.EMI)
	require.NotNil(t, s.RiskScore)

	assert.Contains(t, resp, "APPROVED")
	assert.Contains(t, resp, "₹1,50,000")

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "loanflow.underwriting.decided", s.Events()[0].EventType())
}

func TestUnderwritingHandlerRejectedLowScore(t *testing.T) {
	h := newTestUnderwritingHandler()
	s := creditCheckSession(150_000, 500_000, 620)

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Decision.Equal(valueobject.DecisionRejected))
	assert.True(t, s.Stage.Equal(valueobject.StageRejected))
	assert.Contains(t, resp, "REJECTED")
	assert.Contains(t, resp, service.FlagLowCreditScore)

	types := make([]string, 0, 2)
	for _, evt := range s.Events() {
		types = append(types, evt.EventType())
	}
	assert.Contains(t, types, "loanflow.underwriting.decided")
	assert.Contains(t, types, "loanflow.conversation.rejected")
}

func TestUnderwritingHandlerManualReviewAsksForSalary(t *testing.T) {
	h := newTestUnderwritingHandler()
	// Above the pre-approved limit, income never verified.
	s := creditCheckSession(400_000, 250_000, 760)

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Decision.Equal(valueobject.DecisionManualReview))
	assert.True(t, s.Stage.Equal(valueobject.StageSalaryUpload))
	assert.Contains(t, resp, "monthly take-home salary")
}

func TestUnderwritingHandlerSalaryCapturedThenApproved(t *testing.T) {
	h := newTestUnderwritingHandler()
	s := creditCheckSession(400_000, 250_000, 780)
	s.Stage = valueobject.StageSalaryUpload
	s.AppendUserTurn("my salary is 45,000 per month")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	require.NotNil(t, s.MonthlySalary)
	assert.Equal(t, int64(45_000), *s.MonthlySalary)
	assert.True(t, s.SalaryVerified)
	assert.True(t, s.Decision.Equal(valueobject.DecisionApproved))
	assert.True(t, s.Stage.Equal(valueobject.StageDecision))
	assert.Contains(t, resp, "APPROVED")
}

func TestUnderwritingHandlerSalaryNotParsedReasks(t *testing.T) {
	h := newTestUnderwritingHandler()
	s := creditCheckSession(400_000, 250_000, 780)
	s.Stage = valueobject.StageSalaryUpload
	s.AppendUserTurn("a decent amount")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.Nil(t, s.MonthlySalary)
	assert.False(t, s.SalaryVerified)
	assert.True(t, s.Stage.Equal(valueobject.StageSalaryUpload))
	assert.Contains(t, resp, "monthly take-home salary")
	assert.Empty(t, s.Events())
}

func TestUnderwritingHandlerInsufficientCapacityRejected(t *testing.T) {
	h := newTestUnderwritingHandler()
	s := creditCheckSession(400_000, 250_000, 780)
	s.Stage = valueobject.StageSalaryUpload
	s.AppendUserTurn("I earn 8,000 per month")

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Decision.Equal(valueobject.DecisionRejected))
	assert.True(t, s.Stage.Equal(valueobject.StageRejected))
	assert.Contains(t, resp, "Insufficient repayment capacity")
}
