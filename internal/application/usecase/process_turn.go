package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veritasfin/loanflow/internal/application/dto"
	"github.com/veritasfin/loanflow/internal/application/handler"
	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

const terminalResponse = "This conversation has concluded. " +
	"Please start a new conversation if you'd like to apply again."

const apologyResponse = "I'm sorry, something went wrong on our side while processing your request. " +
	"Our team has been notified. Please try again in a little while."

// StageHandlers bundles the per-stage handlers the orchestrator dispatches
// to.
type StageHandlers struct {
	Sales        handler.StageHandler
	Verification handler.StageHandler
	Underwriting handler.StageHandler
	Scheme       handler.StageHandler
	Negotiation  handler.StageHandler
	Sanction     handler.StageHandler
}

// ProcessTurnUseCase orchestrates one conversation turn: route by stage, run
// exactly one handler, persist the mutated session and publish its events.
// Turns for the same conversation id are serialized; different conversations
// run in parallel.
type ProcessTurnUseCase struct {
	sessions  port.SessionRepository
	publisher port.EventPublisher
	handlers  StageHandlers
	logger    *slog.Logger
	locks     *keyedMutex
}

// NewProcessTurnUseCase wires dependencies.
func NewProcessTurnUseCase(
	sessions port.SessionRepository,
	publisher port.EventPublisher,
	handlers StageHandlers,
	logger *slog.Logger,
) *ProcessTurnUseCase {
	return &ProcessTurnUseCase{
		sessions:  sessions,
		publisher: publisher,
		handlers:  handlers,
		logger:    logger,
		locks:     newKeyedMutex(),
	}
}

// Execute processes one customer message and returns the single response for
// it.
func (uc *ProcessTurnUseCase) Execute(ctx context.Context, req dto.TurnRequest) (dto.TurnResponse, error) {
	if req.ConversationID == "" {
		return dto.TurnResponse{}, errors.New("conversation id is required")
	}

	unlock := uc.locks.Lock(req.ConversationID)
	defer unlock()

	s, err := uc.loadOrCreate(ctx, req.ConversationID)
	if err != nil {
		return dto.TurnResponse{}, err
	}

	s.AppendUserTurn(req.Message)

	var response string
	if s.Stage.IsTerminal() {
		// End of graph: no handler runs and the stage does not move.
		response = terminalResponse
	} else {
		response = uc.dispatch(ctx, s)
	}

	s.AppendAssistantTurn(response)
	s.Touch()

	if err := uc.sessions.Save(ctx, s); err != nil {
		return dto.TurnResponse{}, fmt.Errorf("save session: %w", err)
	}

	// Events are published after the state is durable; a broker outage must
	// not fail an already-persisted turn.
	if pending := s.ClearEvents(); len(pending) > 0 {
		if err := uc.publisher.Publish(ctx, pending...); err != nil {
			uc.logger.ErrorContext(ctx, "publish domain events",
				slog.String("conversation_id", s.ConversationID),
				slog.Int("events", len(pending)),
				slog.Any("error", err))
		}
	}

	uc.logger.InfoContext(ctx, "turn processed",
		slog.String("conversation_id", s.ConversationID),
		slog.String("stage", s.Stage.String()))

	return dto.TurnResponse{
		ConversationID: s.ConversationID,
		Response:       response,
		Stage:          s.Stage.String(),
		Decision:       s.Decision.String(),
		ApplicationID:  s.ApplicationID,
		SanctionID:     s.SanctionID,
		RiskFlags:      s.RiskFlags,
	}, nil
}

func (uc *ProcessTurnUseCase) loadOrCreate(ctx context.Context, conversationID string) (*model.Session, error) {
	s, err := uc.sessions.FindByID(ctx, conversationID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, port.ErrSessionNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s = model.NewSession(conversationID)
	s.Record(event.NewConversationStarted(conversationID, "chat"))
	return s, nil
}

// dispatch runs the single handler the routing table selects for the current
// stage. A panicking handler is treated as an engine fault: the session is
// forced into ERROR with a diagnostic and the customer gets an apology.
func (uc *ProcessTurnUseCase) dispatch(ctx context.Context, s *model.Session) (response string) {
	priorStage := s.Stage

	defer func() {
		if r := recover(); r != nil {
			uc.logger.ErrorContext(ctx, "handler panic",
				slog.String("conversation_id", s.ConversationID),
				slog.String("stage", priorStage.String()),
				slog.Any("panic", r))
			s.FailWith(fmt.Sprintf("handler panic at stage %s: %v", priorStage, r))
			response = apologyResponse
		}
	}()

	h := uc.route(s)

	out, err := h.Handle(ctx, s)
	if err != nil {
		uc.logger.ErrorContext(ctx, "handler failed",
			slog.String("conversation_id", s.ConversationID),
			slog.String("stage", priorStage.String()),
			slog.Any("error", err))
		s.FailWith(fmt.Sprintf("handler error at stage %s: %v", priorStage, err))
		return apologyResponse
	}
	return out
}

// route applies the stage routing table. DECISION goes to the scheme handler
// only for approved loans; otherwise the underwriting handler repeats the
// decision.
func (uc *ProcessTurnUseCase) route(s *model.Session) handler.StageHandler {
	switch s.Stage {
	case valueobject.StageGreeting, valueobject.StageNeedAnalysis, valueobject.StageCollectingDetails:
		return uc.handlers.Sales
	case valueobject.StageKYCVerification, valueobject.StageOTPVerification:
		return uc.handlers.Verification
	case valueobject.StageCreditCheck, valueobject.StageSalaryUpload, valueobject.StageUnderwriting:
		return uc.handlers.Underwriting
	case valueobject.StageDecision:
		if s.Decision.Equal(valueobject.DecisionApproved) {
			return uc.handlers.Scheme
		}
		return uc.handlers.Underwriting
	case valueobject.StageSchemeRecommendation:
		return uc.handlers.Scheme
	case valueobject.StageRateNegotiation:
		return uc.handlers.Negotiation
	case valueobject.StageSanctionLetter:
		return uc.handlers.Sanction
	default:
		return uc.handlers.Sales
	}
}
