package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gafeval/internal/adapter"
	m "github.com/mouse-blink/gafeval/internal/model"
)

func TestEvaluate_ExamplesBasic(t *testing.T) {
	ctx := context.Background()

	alignments, err := adapter.NewLocalGAFReader().ReadAlignments(ctx, m.Path("../../examples/basic/reads.gaf"), m.ToolVGAligner)
	require.NoError(t, err)
	require.Len(t, alignments, 7)

	mappings, err := adapter.NewLocalMappingLoader().LoadMappings(ctx, m.Path("../../examples/basic/mappings.json"))
	require.NoError(t, err)

	var incorrect []string

	eval, err := Evaluate(EvaluateArgs{
		Mappings:      mappings,
		ReferencePath: "ref",
		Alignments:    alignments,
		Threshold:     0.5,
		Observer: Observer{
			OnIncorrect: func(d m.Diagnostic) { incorrect = append(incorrect, d.ReadID) },
		},
	})
	require.NoError(t, err)

	assert.Equal(t, m.RunSummary{
		Total:          7,
		Considered:     4,
		Correct:        2,
		Incorrect:      2,
		Absent:         1,
		Malformed:      1,
		ZeroLength:     1,
		CorrectRatio:   0.5,
		IncorrectRatio: 0.5,
	}, eval.Summary)
	assert.Equal(t, []string{"read2", "read6"}, incorrect)

	require.Len(t, eval.Diagnostics, 2)
	assert.Equal(t, []m.NodeID{1, 3}, eval.Diagnostics[0].Nodes)
	assert.Equal(t, int64(10), eval.Diagnostics[0].CoveredLength)
	assert.Equal(t, int64(30), eval.Diagnostics[0].ReportedLength)
	assert.Equal(t, int64(0), eval.Diagnostics[1].CoveredLength)

	require.Len(t, eval.Skipped, 2)
	assert.Equal(t, "read5", eval.Skipped[0].Alignment.ReadID)
	assert.Equal(t, OutcomeMalformed, eval.Skipped[0].Outcome)
	assert.Equal(t, "read7", eval.Skipped[1].Alignment.ReadID)
	assert.Equal(t, OutcomeZeroLength, eval.Skipped[1].Outcome)
}

func TestEvaluate_ExamplesBasicOtherPath(t *testing.T) {
	ctx := context.Background()

	alignments, err := adapter.NewLocalGAFReader().ReadAlignments(ctx, m.Path("../../examples/basic/reads.gaf"), m.ToolVGAligner)
	require.NoError(t, err)

	mappings, err := adapter.NewLocalMappingLoader().LoadMappings(ctx, m.Path("../../examples/basic/mappings.json"))
	require.NoError(t, err)

	eval, err := Evaluate(EvaluateArgs{
		Mappings:      mappings,
		ReferencePath: "alt",
		Alignments:    alignments,
		Threshold:     0.5,
	})
	require.NoError(t, err)

	// read2 covers 20 of 30 on alt and read6 lies entirely on it.
	assert.Equal(t, 4, eval.Summary.Considered)
	assert.Equal(t, 2, eval.Summary.Correct)
	assert.Equal(t, 2, eval.Summary.Incorrect)
}
