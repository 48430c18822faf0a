package domain

import "fmt"

// Outcome is the decision of a single gate evaluation. There is no failure
// outcome: anything that prevents confirming readiness is a Skip.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeSkip
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeSkip:
		return "skip"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ProbeResult is the outcome of one evaluation plus, for skips, the reason and
// the underlying cause.
type ProbeResult struct {
	Outcome Outcome
	Reason  string
	Cause   error
}

// Pass builds a passing result.
func Pass() ProbeResult {
	return ProbeResult{Outcome: OutcomePass}
}

// Skip builds a skipping result.
func Skip(reason string, cause error) ProbeResult {
	return ProbeResult{Outcome: OutcomeSkip, Reason: reason, Cause: cause}
}

func (r ProbeResult) Passed() bool {
	return r.Outcome == OutcomePass
}

func (r ProbeResult) String() string {
	if r.Passed() {
		return "pass"
	}
	return "skip: " + r.Reason
}
