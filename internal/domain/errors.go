package domain

import "errors"

var (
	// ErrPathNotFound is returned when the requested reference path is not in the mappings.
	ErrPathNotFound = errors.New("reference path not found")
	// ErrMalformedPath is returned when a GAF path contains no decodable node units.
	ErrMalformedPath = errors.New("malformed alignment path")
	// ErrZeroLengthAlignment is returned when an alignment reports a path length of zero.
	ErrZeroLengthAlignment = errors.New("alignment reports zero path length")
	// ErrAggregatorFinalized is returned when recording into a summarized aggregator.
	ErrAggregatorFinalized = errors.New("aggregator already finalized")
)
