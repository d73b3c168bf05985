package adapter

import (
	"context"
	"log/slog"
)

// StubOTPSender logs the one-time code instead of delivering it; the chat
// response surfaces the code in demo mode. It implements port.OTPSender.
type StubOTPSender struct {
	logger *slog.Logger
}

// NewStubOTPSender creates a new stub sender.
func NewStubOTPSender(logger *slog.Logger) *StubOTPSender {
	return &StubOTPSender{logger: logger}
}

// Send records the delivery attempt. The destination is logged in masked
// form.
func (s *StubOTPSender) Send(ctx context.Context, code, destination string) error {
	masked := destination
	if len(masked) > 4 {
		masked = "XXXXXX" + masked[len(masked)-4:]
	}
	s.logger.InfoContext(ctx, "otp send (stub)",
		slog.String("destination", masked),
		slog.Int("code_length", len(code)))
	return nil
}
