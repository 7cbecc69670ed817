package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		covered     int64
		reported    int64
		threshold   float64
		wantRatio   float64
		wantCorrect bool
	}{
		{"above threshold", 15, 15, 0.5, 1.0, true},
		{"equal to threshold is incorrect", 10, 20, 0.5, 0.5, false},
		{"below threshold", 1, 20, 0.5, 0.05, false},
		{"ratio above one", 30, 20, 0.9, 1.5, true},
		{"nothing covered with zero threshold", 0, 20, 0, 0, false},
		{"negative threshold accepts everything", 0, 20, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.covered, tt.reported, tt.threshold)
			require.NoError(t, err)

			assert.Equal(t, tt.covered, got.CoveredLength)
			assert.InDelta(t, tt.wantRatio, got.Ratio, 1e-9)
			assert.Equal(t, tt.wantCorrect, got.Correct)
		})
	}
}

func TestClassify_ZeroReportedLength(t *testing.T) {
	got, err := Classify(10, 0, 0.5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroLengthAlignment))
	assert.False(t, got.Correct)
	assert.Equal(t, int64(10), got.CoveredLength)
}
