package grpc

// proto.go defines the gRPC server interface derived from
// loanflow/conversation/v1/conversation.proto. This file serves as a stand-in
// for buf-generated code; messages travel over the JSON codec registered in
// json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// wire messages
// ---------------------------------------------------------------------------

// ConverseRequest carries one inbound customer message.
type ConverseRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// ConverseResponse carries the single reply for a turn plus flow metadata.
type ConverseResponse struct {
	ConversationID string   `json:"conversation_id"`
	Response       string   `json:"response"`
	Stage          string   `json:"stage"`
	Decision       string   `json:"decision,omitempty"`
	ApplicationID  string   `json:"application_id,omitempty"`
	SanctionID     string   `json:"sanction_id,omitempty"`
	RiskFlags      []string `json:"risk_flags,omitempty"`
}

// TranscriptEntry is one message of the conversation history.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	At      string `json:"at"`
}

// GetConversationRequest asks for the current state of a conversation.
type GetConversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

// GetConversationResponse is a read-only projection of a conversation.
type GetConversationResponse struct {
	ConversationID string            `json:"conversation_id"`
	Stage          string            `json:"stage"`
	CustomerName   string            `json:"customer_name,omitempty"`
	CustomerPhone  string            `json:"customer_phone,omitempty"`
	ApplicationID  string            `json:"application_id,omitempty"`
	LoanAmount     int64             `json:"loan_amount,omitempty"`
	TenureMonths   int32             `json:"tenure_months,omitempty"`
	LoanPurpose    string            `json:"loan_purpose,omitempty"`
	KYCVerified    bool              `json:"kyc_verified"`
	Decision       string            `json:"decision,omitempty"`
	ApprovedAmount int64             `json:"approved_amount,omitempty"`
	InterestRate   float64           `json:"interest_rate,omitempty"`
	EMI            int64             `json:"emi,omitempty"`
	SanctionID     string            `json:"sanction_id,omitempty"`
	Transcript     []TranscriptEntry `json:"transcript,omitempty"`
	UpdatedAt      string            `json:"updated_at"`
}

// DeleteConversationRequest removes a conversation and its transcript.
type DeleteConversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

// DeleteConversationResponse acknowledges the deletion.
type DeleteConversationResponse struct {
	Deleted bool `json:"deleted"`
}

// ---------------------------------------------------------------------------
// service
// ---------------------------------------------------------------------------

// ConversationServiceServer is the server API for ConversationService.
// It mirrors the proto-generated interface from loanflow.conversation.v1.
type ConversationServiceServer interface {
	Converse(context.Context, *ConverseRequest) (*ConverseResponse, error)
	GetConversation(context.Context, *GetConversationRequest) (*GetConversationResponse, error)
	DeleteConversation(context.Context, *DeleteConversationRequest) (*DeleteConversationResponse, error)
	mustEmbedUnimplementedConversationServiceServer()
}

// UnimplementedConversationServiceServer provides forward-compatible default implementations.
type UnimplementedConversationServiceServer struct{}

func (UnimplementedConversationServiceServer) Converse(context.Context, *ConverseRequest) (*ConverseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Converse not implemented")
}
func (UnimplementedConversationServiceServer) GetConversation(context.Context, *GetConversationRequest) (*GetConversationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConversation not implemented")
}
func (UnimplementedConversationServiceServer) DeleteConversation(context.Context, *DeleteConversationRequest) (*DeleteConversationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteConversation not implemented")
}
func (UnimplementedConversationServiceServer) mustEmbedUnimplementedConversationServiceServer() {}

// RegisterConversationServiceServer registers the ConversationServiceServer with the gRPC server.
func RegisterConversationServiceServer(s *grpclib.Server, srv ConversationServiceServer) {
	s.RegisterService(&_ConversationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ConversationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loanflow.conversation.v1.ConversationService",
	HandlerType: (*ConversationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Converse", Handler: _ConversationService_Converse_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "GetConversation", Handler: _ConversationService_GetConversation_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "DeleteConversation", Handler: _ConversationService_DeleteConversation_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ConversationService_Converse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConverseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationServiceServer).Converse(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanflow.conversation.v1.ConversationService/Converse",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationServiceServer).Converse(ctx, req.(*ConverseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConversationService_GetConversation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetConversationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationServiceServer).GetConversation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanflow.conversation.v1.ConversationService/GetConversation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationServiceServer).GetConversation(ctx, req.(*GetConversationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConversationService_DeleteConversation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteConversationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationServiceServer).DeleteConversation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanflow.conversation.v1.ConversationService/DeleteConversation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationServiceServer).DeleteConversation(ctx, req.(*DeleteConversationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
