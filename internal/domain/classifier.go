package domain

import (
	"fmt"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// Classify compares the covered share of an alignment against threshold.
// An alignment is correct only when the ratio is strictly greater than the
// threshold. Ratios above 1 are legal.
func Classify(covered, reported int64, threshold float64) (m.ScoreResult, error) {
	if reported <= 0 {
		return m.ScoreResult{CoveredLength: covered}, fmt.Errorf("%w: covered %d of %d", ErrZeroLengthAlignment, covered, reported)
	}

	ratio := float64(covered) / float64(reported)

	return m.ScoreResult{
		CoveredLength: covered,
		Ratio:         ratio,
		Correct:       ratio > threshold,
	}, nil
}
