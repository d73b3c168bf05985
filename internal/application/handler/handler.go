package handler

import (
	"context"

	"github.com/veritasfin/loanflow/internal/domain/model"
)

// StageHandler processes one conversation turn for the stages it owns. It
// reads the latest customer message from the session transcript, mutates
// session state (possibly advancing the stage) and returns exactly one
// response message. A handler that cannot make progress re-asks instead of
// advancing.
type StageHandler interface {
	Handle(ctx context.Context, s *model.Session) (string, error)
}
