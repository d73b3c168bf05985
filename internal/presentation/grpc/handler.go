package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veritasfin/loanflow/internal/application/dto"
	"github.com/veritasfin/loanflow/internal/application/usecase"
	"github.com/veritasfin/loanflow/internal/domain/port"
)

// ConversationHandler exposes the conversation flow over gRPC.
type ConversationHandler struct {
	UnimplementedConversationServiceServer

	processTurn *usecase.ProcessTurnUseCase
	getConv     *usecase.GetConversationUseCase
	deleteConv  *usecase.DeleteConversationUseCase
}

// NewConversationHandler creates a new handler with all use-case dependencies.
func NewConversationHandler(
	processTurn *usecase.ProcessTurnUseCase,
	getConv *usecase.GetConversationUseCase,
	deleteConv *usecase.DeleteConversationUseCase,
) *ConversationHandler {
	return &ConversationHandler{
		processTurn: processTurn,
		getConv:     getConv,
		deleteConv:  deleteConv,
	}
}

// Converse processes one customer message and returns the single reply.
func (h *ConversationHandler) Converse(ctx context.Context, req *ConverseRequest) (*ConverseResponse, error) {
	if req.ConversationID == "" {
		return nil, status.Error(codes.InvalidArgument, "conversation_id is required")
	}

	resp, err := h.processTurn.Execute(ctx, dto.TurnRequest{
		ConversationID: req.ConversationID,
		Message:        req.Message,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "process turn: %v", err)
	}

	return &ConverseResponse{
		ConversationID: resp.ConversationID,
		Response:       resp.Response,
		Stage:          resp.Stage,
		Decision:       resp.Decision,
		ApplicationID:  resp.ApplicationID,
		SanctionID:     resp.SanctionID,
		RiskFlags:      resp.RiskFlags,
	}, nil
}

// GetConversation returns the current state of one conversation.
func (h *ConversationHandler) GetConversation(ctx context.Context, req *GetConversationRequest) (*GetConversationResponse, error) {
	if req.ConversationID == "" {
		return nil, status.Error(codes.InvalidArgument, "conversation_id is required")
	}

	view, err := h.getConv.Execute(ctx, req.ConversationID)
	if errors.Is(err, port.ErrSessionNotFound) {
		return nil, status.Errorf(codes.NotFound, "conversation %s not found", req.ConversationID)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get conversation: %v", err)
	}

	return toWireConversation(view), nil
}

// DeleteConversation removes a conversation and its transcript.
func (h *ConversationHandler) DeleteConversation(ctx context.Context, req *DeleteConversationRequest) (*DeleteConversationResponse, error) {
	if req.ConversationID == "" {
		return nil, status.Error(codes.InvalidArgument, "conversation_id is required")
	}

	if err := h.deleteConv.Execute(ctx, req.ConversationID); err != nil {
		return nil, status.Errorf(codes.Internal, "delete conversation: %v", err)
	}
	return &DeleteConversationResponse{Deleted: true}, nil
}

func toWireConversation(view dto.ConversationView) *GetConversationResponse {
	out := &GetConversationResponse{
		ConversationID: view.ConversationID,
		Stage:          view.Stage,
		CustomerName:   view.CustomerName,
		CustomerPhone:  view.CustomerPhone,
		ApplicationID:  view.ApplicationID,
		LoanPurpose:    view.LoanPurpose,
		KYCVerified:    view.KYCVerified,
		Decision:       view.Decision,
		SanctionID:     view.SanctionID,
		UpdatedAt:      view.UpdatedAt.Format(time.RFC3339),
	}
	if view.LoanAmount != nil {
		out.LoanAmount = *view.LoanAmount
	}
	if view.TenureMonths != nil {
		out.TenureMonths = int32(*view.TenureMonths)
	}
	if view.ApprovedAmount != nil {
		out.ApprovedAmount = *view.ApprovedAmount
	}
	if view.InterestRate != nil {
		out.InterestRate = *view.InterestRate
	}
	if view.EMI != nil {
		out.EMI = *view.EMI
	}
	for _, entry := range view.Transcript {
		out.Transcript = append(out.Transcript, TranscriptEntry{
			Role:    entry.Role,
			Content: entry.Content,
			At:      entry.At.Format(time.RFC3339),
		})
	}
	return out
}
