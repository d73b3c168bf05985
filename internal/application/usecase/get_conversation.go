package usecase

import (
	"context"
	"fmt"

	"github.com/veritasfin/loanflow/internal/application/dto"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
)

// GetConversationUseCase reads one session as a projection.
type GetConversationUseCase struct {
	sessions port.SessionRepository
}

// NewGetConversationUseCase wires dependencies.
func NewGetConversationUseCase(sessions port.SessionRepository) *GetConversationUseCase {
	return &GetConversationUseCase{sessions: sessions}
}

// Execute returns the conversation view, or port.ErrSessionNotFound.
func (uc *GetConversationUseCase) Execute(ctx context.Context, conversationID string) (dto.ConversationView, error) {
	s, err := uc.sessions.FindByID(ctx, conversationID)
	if err != nil {
		return dto.ConversationView{}, fmt.Errorf("load session: %w", err)
	}
	return toConversationView(s), nil
}

func toConversationView(s *model.Session) dto.ConversationView {
	transcript := make([]dto.TranscriptEntry, 0, len(s.Transcript))
	for _, t := range s.Transcript {
		transcript = append(transcript, dto.TranscriptEntry{Role: t.Role, Content: t.Content, At: t.At})
	}

	return dto.ConversationView{
		ConversationID: s.ConversationID,
		Stage:          s.Stage.String(),
		CustomerName:   s.CustomerName,
		CustomerPhone:  s.CustomerPhone,
		ApplicationID:  s.ApplicationID,
		LoanAmount:     s.LoanAmount,
		TenureMonths:   s.TenureMonths,
		LoanPurpose:    s.LoanPurpose,
		KYCVerified:    s.KYCVerified,
		Decision:       s.Decision.String(),
		ApprovedAmount: s.ApprovedAmount,
		InterestRate:   s.InterestRate,
		EMI:            s.EMI,
		SanctionID:     s.SanctionID,
		Transcript:     transcript,
		UpdatedAt:      s.UpdatedAt,
	}
}
