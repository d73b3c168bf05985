package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// UnderwritingDecision – immutable value object
// ---------------------------------------------------------------------------

// UnderwritingDecision represents the outcome of the underwriting rules for a
// loan application.
type UnderwritingDecision struct {
	value string
}

const (
	decisionApproved     = "APPROVED"
	decisionRejected     = "REJECTED"
	decisionManualReview = "MANUAL_REVIEW"
)

var (
	DecisionApproved     = UnderwritingDecision{value: decisionApproved}
	DecisionRejected     = UnderwritingDecision{value: decisionRejected}
	DecisionManualReview = UnderwritingDecision{value: decisionManualReview}
)

var validUnderwritingDecisions = map[string]UnderwritingDecision{
	decisionApproved:     DecisionApproved,
	decisionRejected:     DecisionRejected,
	decisionManualReview: DecisionManualReview,
}

// NewUnderwritingDecision creates an UnderwritingDecision from a raw string.
func NewUnderwritingDecision(s string) (UnderwritingDecision, error) {
	v, ok := validUnderwritingDecisions[s]
	if !ok {
		return UnderwritingDecision{}, fmt.Errorf("invalid underwriting decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d UnderwritingDecision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d UnderwritingDecision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d UnderwritingDecision) Equal(other UnderwritingDecision) bool {
	return d.value == other.value
}
