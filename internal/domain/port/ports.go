package port

import (
	"context"
	"errors"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
)

// ErrSessionNotFound is returned by SessionRepository when no session exists
// for the conversation id.
var ErrSessionNotFound = errors.New("session not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SessionRepository persists and retrieves conversation sessions. The store
// must round-trip every field exactly; the orchestrator treats read-compute-
// write as one atomic unit per conversation id.
type SessionRepository interface {
	Save(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, conversationID string) (*model.Session, error)
	Delete(ctx context.Context, conversationID string) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditProfile is the bureau's answer for one identity document.
type CreditProfile struct {
	Found            bool
	CustomerID       string
	CreditScore      int
	PreApprovedLimit int64
}

// CreditBureau looks up a customer's credit profile by tax identifier (PAN).
type CreditBureau interface {
	LookupByTaxID(ctx context.Context, pan string) (CreditProfile, error)
}

// OTPSender delivers a one-time code to the customer. The core only
// generates the code and tracks its verified flag.
type OTPSender interface {
	Send(ctx context.Context, code, destination string) error
}

// SanctionLetter identifies a rendered sanction document.
type SanctionLetter struct {
	SanctionID string
	Locator    string
}

// SanctionRenderer produces the sanction letter for a completed session.
type SanctionRenderer interface {
	Render(ctx context.Context, s *model.Session) (SanctionLetter, error)
}
