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

func newTestSchemeHandler() *SchemeHandler {
	return NewSchemeHandler(service.NewRecommendationEngine())
}

func approvedSession() *model.Session {
	s := model.NewSession("conv-1")
	s.Stage = valueobject.StageDecision
	s.Decision = valueobject.DecisionApproved
	s.CustomerName = "Rahul Sharma"
	amount := int64(500_000)
	s.LoanAmount = &amount
	s.ApprovedAmount = &amount
	tenure := 36
	s.TenureMonths = &tenure
	score := 780
	s.CreditScore = &score
	salary := int64(60_000)
	s.MonthlySalary = &salary
	s.LoanPurpose = "wedding"
	s.AppendUserTurn("great, what are my options?")
	return s
}

func TestSchemeHandlerRecommends(t *testing.T) {
	h := newTestSchemeHandler()
	s := approvedSession()

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Stage.Equal(valueobject.StageSchemeRecommendation))
	require.NotEmpty(t, s.SchemeRecommendations)
	assert.LessOrEqual(t, len(s.SchemeRecommendations), 3)

	// Stored offers mirror the ranking order.
	for i := 1; i < len(s.SchemeRecommendations); i++ {
		assert.GreaterOrEqual(t,
			s.SchemeRecommendations[i-1].Score, s.SchemeRecommendations[i].Score)
	}

	assert.Contains(t, resp, "Best Match")
	assert.Contains(t, resp, s.SchemeRecommendations[0].BankName)
	assert.Contains(t, resp, "Reply **'1'**")
}

func TestSchemeHandlerSelectBest(t *testing.T) {
	h := newTestSchemeHandler()
	s := approvedSession()

	_, err := h.Handle(context.Background(), s)
	require.NoError(t, err)
	require.NotEmpty(t, s.SchemeRecommendations)

	s.AppendUserTurn("1")
	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	require.NotNil(t, s.SelectedScheme)
	assert.Equal(t, s.SchemeRecommendations[0].SchemeID, s.SelectedScheme.SchemeID)
	require.NotNil(t, s.FinalInterestRate)
	assert.Equal(t, s.SelectedScheme.InterestRate, *s.FinalInterestRate)
	require.NotNil(t, s.EMI)
	assert.Equal(t, s.SelectedScheme.EMI, *s.EMI)
	assert.True(t, s.Stage.Equal(valueobject.StageRateNegotiation))
	assert.Contains(t, resp, "negotiate")

	types := make([]string, 0, len(s.Events()))
	for _, evt := range s.Events() {
		types = append(types, evt.EventType())
	}
	assert.Contains(t, types, "loanflow.scheme.selected")
}

func TestSchemeHandlerSelectionWords(t *testing.T) {
	for _, word := range []string{"one", "first", "best"} {
		h := newTestSchemeHandler()
		s := approvedSession()
		_, err := h.Handle(context.Background(), s)
		require.NoError(t, err)

		s.AppendUserTurn(word)
		_, err = h.Handle(context.Background(), s)
		require.NoError(t, err)
		require.NotNil(t, s.SelectedScheme, word)
		assert.Equal(t, s.SchemeRecommendations[0].SchemeID, s.SelectedScheme.SchemeID)
	}
}

func TestSchemeHandlerInvalidSelectionReprompts(t *testing.T) {
	h := newTestSchemeHandler()
	s := approvedSession()

	_, err := h.Handle(context.Background(), s)
	require.NoError(t, err)
	offers := s.SchemeRecommendations

	s.AppendUserTurn("give me the 7th one")
	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.Nil(t, s.SelectedScheme)
	assert.Equal(t, offers, s.SchemeRecommendations)
	assert.True(t, s.Stage.Equal(valueobject.StageSchemeRecommendation))
	assert.Contains(t, resp, "select one of the schemes")
}

func TestSchemeHandlerNoEligibleSchemes(t *testing.T) {
	h := newTestSchemeHandler()
	s := approvedSession()
	score := 550
	s.CreditScore = &score

	resp, err := h.Handle(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Stage.Equal(valueobject.StageRejected))
	assert.Empty(t, s.SchemeRecommendations)
	assert.Contains(t, resp, "No Eligible Schemes Found")
	assert.Contains(t, resp, "650+")

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "loanflow.conversation.rejected", s.Events()[0].EventType())
}
