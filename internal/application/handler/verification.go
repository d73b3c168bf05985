package handler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"

	"github.com/veritasfin/loanflow/internal/domain/event"
	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
	"github.com/veritasfin/loanflow/internal/domain/service"
	"github.com/veritasfin/loanflow/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// VerificationHandler – PAN capture and one-time-code verification
// ---------------------------------------------------------------------------

var panPattern = regexp.MustCompile(`\b([A-Z]{5}[0-9]{4}[A-Z])\b`)

var otpAutoAcceptKeywords = []string{
	"yes", "ok", "okay", "verify", "proceed", "confirm", "continue", "done", "submit",
}

// VerificationHandler owns KYC_VERIFICATION and OTP_VERIFICATION. It
// validates the PAN, looks the customer up at the bureau, sends a one-time
// code and gates the credit check behind its verification.
type VerificationHandler struct {
	bureau port.CreditBureau
	otp    port.OTPSender
	logger *slog.Logger

	// strictOTP requires the exact stored code; by default any six digits or
	// a confirmation keyword passes, which is the documented demo behavior.
	strictOTP bool

	// generateOTP is overridable in tests.
	generateOTP func() string
}

// NewVerificationHandler wires the bureau and code-delivery ports.
func NewVerificationHandler(bureau port.CreditBureau, otp port.OTPSender, strictOTP bool, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		bureau:      bureau,
		otp:         otp,
		logger:      logger,
		strictOTP:   strictOTP,
		generateOTP: func() string { return fmt.Sprintf("%06d", 100000+rand.Intn(900000)) },
	}
}

func (h *VerificationHandler) Handle(ctx context.Context, s *model.Session) (string, error) {
	if s.Stage.Equal(valueobject.StageOTPVerification) {
		return h.handleOTP(ctx, s), nil
	}
	return h.handlePAN(ctx, s)
}

func (h *VerificationHandler) handlePAN(ctx context.Context, s *model.Session) (string, error) {
	pan := ExtractPAN(s.LastUserMessage())
	if pan == "" {
		name := s.CustomerName
		if name == "" {
			name = "there"
		}
		s.Stage = valueobject.StageKYCVerification
		return fmt.Sprintf(
			"Hi %s! 👋\n\n"+
				"To verify your identity, please provide your **PAN card number**.\n\n"+
				"Format: ABCDE1234F (5 letters, 4 numbers, 1 letter)\n\n"+
				"Your PAN helps us:\n"+
				"• Verify your identity\n"+
				"• Check your pre-approved loan limit\n"+
				"• Process your application faster",
			name,
		), nil
	}

	s.CustomerPAN = pan

	profile, err := h.bureau.LookupByTaxID(ctx, pan)
	if err != nil {
		return "", fmt.Errorf("verification: bureau lookup: %w", err)
	}
	if !profile.Found {
		s.KYCVerified = false
		s.Stage = valueobject.StageKYCVerification
		return "❌ Verification Failed\n\n" +
			"Reason: Customer not found\n\n" +
			"Please ensure you're providing the correct PAN, " +
			"or contact support for assistance.", nil
	}

	s.CustomerID = profile.CustomerID
	score := profile.CreditScore
	limit := profile.PreApprovedLimit
	s.CreditScore = &score
	s.PreApprovedLimit = &limit

	code := h.generateOTP()
	s.OTPCode = code
	s.OTPVerified = false
	s.Stage = valueobject.StageOTPVerification

	if err := h.otp.Send(ctx, code, s.CustomerPhone); err != nil {
		// Delivery is best-effort in demo mode; the code is shown in chat.
		h.logger.WarnContext(ctx, "otp delivery failed",
			slog.String("conversation_id", s.ConversationID), slog.Any("error", err))
	}

	return fmt.Sprintf(
		"✅ **PAN Verified!**\n\n"+
			"**PAN:** %s\n\n"+
			"📱 **OTP Sent!**\n"+
			"An OTP has been sent to your registered mobile number ending with **%s**.\n\n"+
			"🔐 **Demo Mode OTP: `%s`**\n"+
			"_(In production, this would be sent via SMS)_\n\n"+
			"Please enter the 6-digit OTP to verify your identity:",
		MaskPAN(pan), maskedPhoneSuffix(s.CustomerPhone), code,
	), nil
}

func (h *VerificationHandler) handleOTP(_ context.Context, s *model.Session) string {
	message := s.LastUserMessage()
	digits := digitsOnly(message)

	accepted := len(digits) == 6 && digits == s.OTPCode
	if !accepted && !h.strictOTP {
		accepted = containsAnyKeyword(message, otpAutoAcceptKeywords) || len(digits) == 6
	}

	if !accepted {
		s.Stage = valueobject.StageOTPVerification
		return fmt.Sprintf(
			"Please enter the OTP or type **'yes'** to continue.\n\n🔐 **Demo OTP: `%s`**",
			s.OTPCode,
		)
	}

	s.OTPVerified = true
	s.KYCVerified = true
	s.Stage = valueobject.StageCreditCheck
	s.Record(event.NewKYCVerified(s.ConversationID, s.CustomerID, MaskPAN(s.CustomerPAN)))

	return fmt.Sprintf(
		"✅ **OTP Verified Successfully!**\n\n"+
			"🎉 **KYC Complete!**\n\n"+
			"**Your Profile:**\n"+
			"• Credit Score: %d\n"+
			"• Pre-approved Limit: %s\n\n"+
			"Processing your loan application...",
		derefInt(s.CreditScore), service.FormatINR(derefInt64(s.PreApprovedLimit)),
	)
}

// ExtractPAN finds a PAN card number (AAAAA0000A) in the message, matching
// case-insensitively.
func ExtractPAN(message string) string {
	upper := strings.ToUpper(strings.TrimSpace(message))
	if m := panPattern.FindStringSubmatch(upper); m != nil {
		return m[1]
	}
	return ""
}

// MaskPAN hides all but the last four characters for display and logs.
func MaskPAN(pan string) string {
	if len(pan) == 10 {
		return "XXXXXX" + pan[6:]
	}
	return "XXXXXXXXXX"
}

func maskedPhoneSuffix(phone string) string {
	if len(phone) >= 4 {
		return phone[len(phone)-4:]
	}
	return phone
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsAnyKeyword(message string, keywords []string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
