package model

import "sort"

// Path represents a file system path.
type Path string

// Interval is a half-open range [Start, End) on a reference path.
type Interval struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

// Len returns the number of bases covered by the interval.
// Inverted intervals cover nothing.
func (i Interval) Len() int64 {
	if i.End <= i.Start {
		return 0
	}

	return i.End - i.Start
}

// PathMapping maps the nodes lying on one reference path to their
// coordinates on that path.
type PathMapping map[NodeID]Interval

// Nodes returns the node ids of the mapping in ascending order.
func (pm PathMapping) Nodes() []NodeID {
	nodes := make([]NodeID, 0, len(pm))
	for node := range pm {
		nodes = append(nodes, node)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// Span returns the sum of the lengths of all intervals in the mapping.
func (pm PathMapping) Span() int64 {
	var total int64
	for _, interval := range pm {
		total += interval.Len()
	}

	return total
}

// Mappings holds one PathMapping per reference path name.
type Mappings map[string]PathMapping

// Names returns the reference path names in lexical order.
func (ms Mappings) Names() []string {
	names := make([]string, 0, len(ms))
	for name := range ms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
