package usecase

import (
	"context"
	"fmt"

	"github.com/veritasfin/loanflow/internal/domain/port"
)

// DeleteConversationUseCase removes a session and its transcript.
type DeleteConversationUseCase struct {
	sessions port.SessionRepository
}

// NewDeleteConversationUseCase wires dependencies.
func NewDeleteConversationUseCase(sessions port.SessionRepository) *DeleteConversationUseCase {
	return &DeleteConversationUseCase{sessions: sessions}
}

// Execute deletes the conversation; deleting an absent conversation is not
// an error.
func (uc *DeleteConversationUseCase) Execute(ctx context.Context, conversationID string) error {
	if err := uc.sessions.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
