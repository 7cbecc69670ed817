package domain

import (
	m "github.com/mouse-blink/gafeval/internal/model"
)

// Score returns the number of bases of the reference path covered by nodes.
// Nodes missing from the mapping lie off the reference path and add nothing.
// A node visited k times contributes k times its interval length.
//
// The first and last intervals are not trimmed by the alignment's path
// offsets: the mappings would need the same adjustment to stay comparable.
func Score(nodes []m.NodeID, mapping m.PathMapping) int64 {
	var covered int64

	for _, node := range nodes {
		interval, ok := mapping[node]
		if !ok {
			continue
		}

		covered += interval.Len()
	}

	return covered
}
