// Package controller provides output adapters for displaying alignment evaluation results.
package controller

import (
	m "github.com/mouse-blink/gafeval/internal/model"
)

// RunInfo describes the inputs of a comparison run.
type RunInfo struct {
	Command       string
	GAF           m.Path
	Mappings      m.Path
	ReferencePath string
	Tool          m.Tool
	Threshold     float64
}

// PathInfo summarizes one reference path of a mapping file.
type PathInfo struct {
	Name  string
	Nodes int
	Span  int64
}

// UI defines the interface for displaying comparison runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRunInfo(info RunInfo)
	DisplayPathNodes(referencePath string, nodes []m.NodeID)
	DisplayIncorrect(diag m.Diagnostic)
	DisplaySummary(summary m.RunSummary) error
	DisplayPaths(paths []PathInfo) error
	DisplayReports(reports []m.RunReport) error
}
