package domain

import (
	"fmt"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// Outcome is the fate of a single alignment within a run.
type Outcome int

// Available Outcome values.
const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeAbsent     // unaligned read ("*")
	OutcomeMalformed  // path could not be decoded
	OutcomeZeroLength // reported length is zero
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeAbsent:
		return "absent"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeZeroLength:
		return "zero_length"
	default:
		return "unknown"
	}
}

// Aggregator accumulates outcomes into a RunSummary. It starts from the
// number of input records and removes excluded records from the denominator.
// Once summarized it rejects further records.
type Aggregator struct {
	summary   m.RunSummary
	finalized bool
}

// NewAggregator creates an Aggregator for total input records.
func NewAggregator(total int) *Aggregator {
	return &Aggregator{
		summary: m.RunSummary{Total: total, Considered: total},
	}
}

// Record adds one outcome.
func (a *Aggregator) Record(outcome Outcome) error {
	if a.finalized {
		return ErrAggregatorFinalized
	}

	switch outcome {
	case OutcomeCorrect:
		a.summary.Correct++
	case OutcomeIncorrect:
		a.summary.Incorrect++
	case OutcomeAbsent:
		a.summary.Absent++
		a.summary.Considered--
	case OutcomeMalformed:
		a.summary.Malformed++
		a.summary.Considered--
	case OutcomeZeroLength:
		a.summary.ZeroLength++
		a.summary.Considered--
	default:
		return fmt.Errorf("unknown outcome %d", outcome)
	}

	return nil
}

// Summarize computes the ratios and freezes the aggregator.
// Calling it again returns the same summary.
func (a *Aggregator) Summarize() m.RunSummary {
	if a.finalized {
		return a.summary
	}

	if a.summary.Considered > 0 {
		a.summary.CorrectRatio = float64(a.summary.Correct) / float64(a.summary.Considered)
		a.summary.IncorrectRatio = 1 - a.summary.CorrectRatio
	}

	a.finalized = true

	return a.summary
}

// Finalized reports whether Summarize has been called.
func (a *Aggregator) Finalized() bool {
	return a.finalized
}
