package model

import (
	"reflect"
	"testing"
)

func TestInterval_Len(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     int64
	}{
		{"regular", Interval{Start: 10, End: 15}, 5},
		{"zero length", Interval{Start: 7, End: 7}, 0},
		{"inverted", Interval{Start: 9, End: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.interval.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPathMapping_NodesAndSpan(t *testing.T) {
	pm := PathMapping{
		30: {Start: 20, End: 25},
		2:  {Start: 0, End: 10},
		11: {Start: 10, End: 20},
	}

	if got, want := pm.Nodes(), []NodeID{2, 11, 30}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Nodes() = %v, want %v", got, want)
	}

	if got := pm.Span(); got != 25 {
		t.Fatalf("Span() = %d, want 25", got)
	}
}

func TestMappings_Names(t *testing.T) {
	ms := Mappings{"b": nil, "a": nil, "c": nil}

	if got, want := ms.Names(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestTraversal_String(t *testing.T) {
	if got := (Traversal{Node: 12, Strand: Reverse}).String(); got != "<12" {
		t.Fatalf("String() = %q, want <12", got)
	}

	if got := (Traversal{Node: 3}).String(); got != ">3" {
		t.Fatalf("String() = %q, want >3", got)
	}
}
