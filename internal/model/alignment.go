// Package model defines the data structures for alignment accuracy evaluation.
package model

import "fmt"

// NodeID identifies a graph node. Node ids are compared by magnitude only.
type NodeID uint64

// Strand is the direction a path traverses a node.
type Strand int

const (
	// Forward is a traversal written as ">id".
	Forward Strand = iota
	// Reverse is a traversal written as "<id".
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "<"
	}

	return ">"
}

// Traversal is one step of an alignment path.
type Traversal struct {
	Node   NodeID
	Strand Strand
}

func (t Traversal) String() string {
	return fmt.Sprintf("%s%d", t.Strand, t.Node)
}

// UnalignedPath is the GAF path value of a read the aligner could not place.
const UnalignedPath = "*"

// Alignment is one GAF record as handed over by the record source.
type Alignment struct {
	ReadID         string
	RawPath        string
	ReportedLength int64 // GAF plen, denominator of the overlap ratio
	QueryLength    int64
	QueryStart     int64
	QueryEnd       int64
	PathStart      int64
	PathEnd        int64
	Line           int // 1-based line in the source file, 0 when unknown
}

// Tool names the aligner that produced a GAF file.
type Tool string

const (
	// ToolVGAligner is the vg-based GraphAligner variant output.
	ToolVGAligner Tool = "vgaligner"
	// ToolGraphAligner is GraphAligner output, which carries extra tag columns.
	ToolGraphAligner Tool = "graphaligner"
	// ToolVGMap is `vg map` output.
	ToolVGMap Tool = "vgmap"
)

// Tools lists the supported aligners.
var Tools = []Tool{ToolVGAligner, ToolGraphAligner, ToolVGMap}
