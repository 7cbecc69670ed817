package domain

import (
	"fmt"
	"regexp"
	"strconv"

	m "github.com/mouse-blink/gafeval/internal/model"
)

var (
	traversalPattern = regexp.MustCompile(`([<>])([0-9]+)`)
	pathPattern      = regexp.MustCompile(`^(?:[<>][0-9]+)+$`)
)

// DecodePath turns a GAF path column into its ordered node traversals.
// The boolean is false when the read is unaligned ("*"). An empty path
// decodes to no traversals.
func DecodePath(raw string) ([]m.Traversal, bool, error) {
	if raw == m.UnalignedPath {
		return nil, false, nil
	}

	if raw == "" {
		return []m.Traversal{}, true, nil
	}

	if !pathPattern.MatchString(raw) {
		return nil, true, fmt.Errorf("%w: %q", ErrMalformedPath, raw)
	}

	units := traversalPattern.FindAllStringSubmatch(raw, -1)
	traversals := make([]m.Traversal, 0, len(units))

	for _, unit := range units {
		id, err := strconv.ParseUint(unit[2], 10, 64)
		if err != nil {
			return nil, true, fmt.Errorf("%w: node %s: %w", ErrMalformedPath, unit[2], err)
		}

		strand := m.Forward
		if unit[1] == "<" {
			strand = m.Reverse
		}

		traversals = append(traversals, m.Traversal{Node: m.NodeID(id), Strand: strand})
	}

	return traversals, true, nil
}

// NodeIDs drops the strand of each traversal. Matching against a reference
// path does not take orientation into account.
func NodeIDs(traversals []m.Traversal) []m.NodeID {
	nodes := make([]m.NodeID, len(traversals))
	for i, t := range traversals {
		nodes[i] = t.Node
	}

	return nodes
}

// HasReverse reports whether any node is traversed in reverse.
func HasReverse(traversals []m.Traversal) bool {
	for _, t := range traversals {
		if t.Strand == m.Reverse {
			return true
		}
	}

	return false
}
