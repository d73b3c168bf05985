package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// ConversationStage – immutable value object
// ---------------------------------------------------------------------------

// ConversationStage represents the position of a conversation within the loan
// origination flow.
type ConversationStage struct {
	value string
}

const (
	stageGreeting             = "GREETING"
	stageNeedAnalysis         = "NEED_ANALYSIS"
	stageCollectingDetails    = "COLLECTING_DETAILS"
	stageKYCVerification      = "KYC_VERIFICATION"
	stageOTPVerification      = "OTP_VERIFICATION"
	stageCreditCheck          = "CREDIT_CHECK"
	stageSalaryUpload         = "SALARY_UPLOAD"
	stageUnderwriting         = "UNDERWRITING"
	stageDecision             = "DECISION"
	stageSchemeRecommendation = "SCHEME_RECOMMENDATION"
	stageRateNegotiation      = "RATE_NEGOTIATION"
	stageSanctionLetter       = "SANCTION_LETTER"
	stageCompleted            = "COMPLETED"
	stageRejected             = "REJECTED"
	stageError                = "ERROR"
)

var (
	StageGreeting             = ConversationStage{value: stageGreeting}
	StageNeedAnalysis         = ConversationStage{value: stageNeedAnalysis}
	StageCollectingDetails    = ConversationStage{value: stageCollectingDetails}
	StageKYCVerification      = ConversationStage{value: stageKYCVerification}
	StageOTPVerification      = ConversationStage{value: stageOTPVerification}
	StageCreditCheck          = ConversationStage{value: stageCreditCheck}
	StageSalaryUpload         = ConversationStage{value: stageSalaryUpload}
	StageUnderwriting         = ConversationStage{value: stageUnderwriting}
	StageDecision             = ConversationStage{value: stageDecision}
	StageSchemeRecommendation = ConversationStage{value: stageSchemeRecommendation}
	StageRateNegotiation      = ConversationStage{value: stageRateNegotiation}
	StageSanctionLetter       = ConversationStage{value: stageSanctionLetter}
	StageCompleted            = ConversationStage{value: stageCompleted}
	StageRejected             = ConversationStage{value: stageRejected}
	StageError                = ConversationStage{value: stageError}
)

var validConversationStages = map[string]ConversationStage{
	stageGreeting:             StageGreeting,
	stageNeedAnalysis:         StageNeedAnalysis,
	stageCollectingDetails:    StageCollectingDetails,
	stageKYCVerification:      StageKYCVerification,
	stageOTPVerification:      StageOTPVerification,
	stageCreditCheck:          StageCreditCheck,
	stageSalaryUpload:         StageSalaryUpload,
	stageUnderwriting:         StageUnderwriting,
	stageDecision:             StageDecision,
	stageSchemeRecommendation: StageSchemeRecommendation,
	stageRateNegotiation:      StageRateNegotiation,
	stageSanctionLetter:       StageSanctionLetter,
	stageCompleted:            StageCompleted,
	stageRejected:             StageRejected,
	stageError:                StageError,
}

// NewConversationStage creates a ConversationStage from a raw string.
func NewConversationStage(s string) (ConversationStage, error) {
	v, ok := validConversationStages[s]
	if !ok {
		return ConversationStage{}, fmt.Errorf("invalid conversation stage: %q", s)
	}
	return v, nil
}

// String returns the string representation of the stage.
func (s ConversationStage) String() string { return s.value }

// IsZero returns true if the stage has not been initialised.
func (s ConversationStage) IsZero() bool { return s.value == "" }

// Equal returns true when both stages carry the same value.
func (s ConversationStage) Equal(other ConversationStage) bool {
	return s.value == other.value
}

// IsTerminal reports whether the conversation has reached a stage from which
// no further turns are processed.
func (s ConversationStage) IsTerminal() bool {
	switch s.value {
	case stageCompleted, stageRejected, stageError:
		return true
	}
	return false
}
