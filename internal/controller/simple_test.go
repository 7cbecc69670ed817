package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gafeval/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.DisplayRunInfo(RunInfo{
		Command:       "gafeval reads.gaf map.json ref",
		GAF:           "reads.gaf",
		Mappings:      "map.json",
		ReferencePath: "ref",
		Tool:          m.ToolVGAligner,
		Threshold:     0.5,
	})

	assertContainsAll(t, buf.String(),
		"Command used: gafeval reads.gaf map.json ref",
		"GAF file: reads.gaf",
		"Mappings file: map.json",
		"Tool: vgaligner",
		"Chosen path is: ref",
		"Threshold is: 0.5",
	)
}

func TestSimpleUI_DisplayRunInfo_NoCommand(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.DisplayRunInfo(RunInfo{GAF: "reads.gaf"})

	if strings.Contains(buf.String(), "Command used") {
		t.Fatalf("unexpected command line\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayIncorrect(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.DisplayIncorrect(m.Diagnostic{
		ReadID:         "read42",
		Nodes:          []m.NodeID{1, 3},
		ReportedLength: 20,
		CoveredLength:  10,
	})

	assertContainsAll(t, buf.String(),
		"Incorrect alignment nodes: [1 3]",
		"Read is: read42",
		"GAF alignment length: 20",
		"Correct alignment length: 10",
	)
}

func TestSimpleUI_DisplayPathNodes(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.DisplayPathNodes("ref", []m.NodeID{1, 2, 10})

	assertContainsAll(t, buf.String(), "Nodes for ref: [1 2 10]")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	err := ui.DisplaySummary(m.RunSummary{
		Total:          6,
		Considered:     4,
		Correct:        3,
		Incorrect:      1,
		Absent:         1,
		Malformed:      1,
		CorrectRatio:   0.75,
		IncorrectRatio: 0.25,
	})
	if err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"OUTCOME",
		"correct",
		"unaligned",
		"malformed path",
		"TOTAL 6",
		"Reads mapped correctly: 3/4 (0.75)",
		"Reads NOT mapped correctly: 1/4 (0.25)",
	)
}

func TestSimpleUI_DisplaySummary_NothingConsidered(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplaySummary(m.RunSummary{Total: 2, Absent: 2}); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Reads mapped correctly: 0/0 (0.00)",
		"Reads NOT mapped correctly: 0/0 (0.00)",
	)
}

func TestSimpleUI_DisplayPaths(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplayPaths(nil); err != nil {
		t.Fatalf("DisplayPaths(nil) error = %v", err)
	}

	assertContainsAll(t, buf.String(), "No reference paths found")

	buf.Reset()

	err := ui.DisplayPaths([]PathInfo{
		{Name: "chm13", Nodes: 12, Span: 3400},
		{Name: "grch38", Nodes: 9, Span: 2800},
	})
	if err != nil {
		t.Fatalf("DisplayPaths() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "chm13", "3400", "grch38", "2800", "TOTAL PATHS 2")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports(nil) error = %v", err)
	}

	assertContainsAll(t, buf.String(), "No reports found")

	buf.Reset()

	err := ui.DisplayReports([]m.RunReport{{
		CreatedAt:     time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC),
		ReferencePath: "ref",
		Tool:          m.ToolVGMap,
		Threshold:     0.9,
		Summary:       m.RunSummary{Considered: 8, Correct: 6, CorrectRatio: 0.75},
	}})
	if err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "2026-04-05 06:07:08", "ref", "vgmap", "0.9", "6/8", "0.75")
}
