package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gafeval/internal/model"
)

func TestDecodePath(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        []m.Traversal
		wantPresent bool
		wantErr     error
	}{
		{
			name:        "unaligned sentinel",
			raw:         "*",
			wantPresent: false,
		},
		{
			name:        "empty path",
			raw:         "",
			want:        []m.Traversal{},
			wantPresent: true,
		},
		{
			name:        "forward nodes",
			raw:         ">1>2",
			want:        []m.Traversal{{Node: 1, Strand: m.Forward}, {Node: 2, Strand: m.Forward}},
			wantPresent: true,
		},
		{
			name:        "mixed strands keep order",
			raw:         "<30>4<1",
			want:        []m.Traversal{{Node: 30, Strand: m.Reverse}, {Node: 4, Strand: m.Forward}, {Node: 1, Strand: m.Reverse}},
			wantPresent: true,
		},
		{
			name:        "repeated node",
			raw:         ">1>1",
			want:        []m.Traversal{{Node: 1}, {Node: 1}},
			wantPresent: true,
		},
		{
			name:        "stable path name",
			raw:         "chr1:100-200",
			wantPresent: true,
			wantErr:     ErrMalformedPath,
		},
		{
			name:        "stray characters",
			raw:         ">1 >2",
			wantPresent: true,
			wantErr:     ErrMalformedPath,
		},
		{
			name:        "marker without digits",
			raw:         ">",
			wantPresent: true,
			wantErr:     ErrMalformedPath,
		},
		{
			name:        "node id overflow",
			raw:         ">99999999999999999999999",
			wantPresent: true,
			wantErr:     ErrMalformedPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present, err := DecodePath(tt.raw)

			assert.Equal(t, tt.wantPresent, present)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error %v is not %v", err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeIDs_DropsStrand(t *testing.T) {
	traversals := []m.Traversal{{Node: 5, Strand: m.Reverse}, {Node: 6, Strand: m.Forward}}

	assert.Equal(t, []m.NodeID{5, 6}, NodeIDs(traversals))
	assert.Empty(t, NodeIDs(nil))
}

func TestHasReverse(t *testing.T) {
	assert.False(t, HasReverse([]m.Traversal{{Node: 1}, {Node: 2}}))
	assert.True(t, HasReverse([]m.Traversal{{Node: 1}, {Node: 2, Strand: m.Reverse}}))
	assert.False(t, HasReverse(nil))
}
