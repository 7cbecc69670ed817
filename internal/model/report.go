package model

import "time"

// ScoreResult is the classification of one alignment.
type ScoreResult struct {
	CoveredLength int64
	Ratio         float64
	Correct       bool
}

// Diagnostic describes an alignment classified as incorrect.
type Diagnostic struct {
	ReadID         string      `yaml:"read"`
	Nodes          []NodeID    `yaml:"nodes,flow"`
	Traversals     []Traversal `yaml:"-"`
	ReportedLength int64       `yaml:"reported_length"`
	CoveredLength  int64       `yaml:"covered_length"`
	Ratio          float64     `yaml:"ratio"`
}

// RunSummary aggregates the outcome of a comparison run.
type RunSummary struct {
	Total          int     `yaml:"total"`      // input records
	Considered     int     `yaml:"considered"` // records in the denominator
	Correct        int     `yaml:"correct"`
	Incorrect      int     `yaml:"incorrect"`
	Absent         int     `yaml:"absent"`
	Malformed      int     `yaml:"malformed"`
	ZeroLength     int     `yaml:"zero_length"`
	CorrectRatio   float64 `yaml:"correct_ratio"`
	IncorrectRatio float64 `yaml:"incorrect_ratio"`
}

// Excluded returns the number of records left out of the denominator.
func (s RunSummary) Excluded() int {
	return s.Absent + s.Malformed + s.ZeroLength
}

// RunReport is a persisted comparison run.
type RunReport struct {
	ID            string       `yaml:"id"`
	CreatedAt     time.Time    `yaml:"created_at"`
	Command       string       `yaml:"command,omitempty"`
	GAF           Path         `yaml:"gaf"`
	Mappings      Path         `yaml:"mappings"`
	ReferencePath string       `yaml:"reference_path"`
	Tool          Tool         `yaml:"tool"`
	Threshold     float64      `yaml:"threshold"`
	Summary       RunSummary   `yaml:"summary"`
	Diagnostics   []Diagnostic `yaml:"diagnostics,omitempty"`
}
