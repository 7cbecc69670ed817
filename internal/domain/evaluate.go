package domain

import (
	"fmt"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// EvaluateArgs holds the inputs of a single comparison run.
type EvaluateArgs struct {
	Mappings      m.Mappings
	ReferencePath string
	Alignments    []m.Alignment
	Threshold     float64
	Observer      Observer
}

// Observer receives per-alignment events while a run progresses.
// Both callbacks are optional.
type Observer struct {
	OnIncorrect func(m.Diagnostic)
	OnSkipped   func(Skipped)
}

// Skipped is an alignment left out of the denominator because of a data error.
type Skipped struct {
	Alignment m.Alignment
	Outcome   Outcome
	Err       error
}

// Evaluation is the result of a comparison run.
type Evaluation struct {
	Summary     m.RunSummary
	Diagnostics []m.Diagnostic
	Skipped     []Skipped
}

// Evaluate scores every alignment against the chosen reference path and
// aggregates the outcomes. It fails only when the reference path is unknown;
// per-alignment data errors are reported as Skipped.
func Evaluate(args EvaluateArgs) (Evaluation, error) {
	mapping, ok := args.Mappings[args.ReferencePath]
	if !ok {
		return Evaluation{}, fmt.Errorf("%w: %q", ErrPathNotFound, args.ReferencePath)
	}

	agg := NewAggregator(len(args.Alignments))

	var eval Evaluation

	for _, alignment := range args.Alignments {
		outcome, diag, err := evaluateOne(alignment, mapping, args.Threshold)

		switch outcome {
		case OutcomeIncorrect:
			eval.Diagnostics = append(eval.Diagnostics, diag)
			if args.Observer.OnIncorrect != nil {
				args.Observer.OnIncorrect(diag)
			}
		case OutcomeMalformed, OutcomeZeroLength:
			skipped := Skipped{Alignment: alignment, Outcome: outcome, Err: err}

			eval.Skipped = append(eval.Skipped, skipped)
			if args.Observer.OnSkipped != nil {
				args.Observer.OnSkipped(skipped)
			}
		}

		if err := agg.Record(outcome); err != nil {
			return Evaluation{}, err
		}
	}

	eval.Summary = agg.Summarize()

	return eval, nil
}

func evaluateOne(alignment m.Alignment, mapping m.PathMapping, threshold float64) (Outcome, m.Diagnostic, error) {
	traversals, present, err := DecodePath(alignment.RawPath)
	if !present {
		return OutcomeAbsent, m.Diagnostic{}, nil
	}

	if err != nil {
		return OutcomeMalformed, m.Diagnostic{}, err
	}

	nodes := NodeIDs(traversals)
	covered := Score(nodes, mapping)

	result, err := Classify(covered, alignment.ReportedLength, threshold)
	if err != nil {
		return OutcomeZeroLength, m.Diagnostic{}, err
	}

	if result.Correct {
		return OutcomeCorrect, m.Diagnostic{}, nil
	}

	return OutcomeIncorrect, m.Diagnostic{
		ReadID:         alignment.ReadID,
		Nodes:          nodes,
		Traversals:     traversals,
		ReportedLength: alignment.ReportedLength,
		CoveredLength:  result.CoveredLength,
		Ratio:          result.Ratio,
	}, nil
}
