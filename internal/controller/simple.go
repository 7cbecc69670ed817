package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/gafeval/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunInfo echoes the inputs of the run.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	if info.Command != "" {
		s.printf("Command used: %s\n", info.Command)
	}

	s.printf("GAF file: %s\n", info.GAF)
	s.printf("Mappings file: %s\n", info.Mappings)
	s.printf("Tool: %s\n", info.Tool)
	s.printf("Chosen path is: %s\n", info.ReferencePath)
	s.printf("Threshold is: %v\n\n", info.Threshold)
}

// DisplayPathNodes lists the nodes lying on the reference path.
func (s *SimpleUI) DisplayPathNodes(referencePath string, nodes []m.NodeID) {
	s.printf("Nodes for %s: %s\n\n", referencePath, formatNodes(nodes))
}

// DisplayIncorrect prints the diagnostic of one incorrect alignment.
func (s *SimpleUI) DisplayIncorrect(diag m.Diagnostic) {
	s.printf("Incorrect alignment nodes: %s\n", formatNodes(diag.Nodes))
	s.printf("Read is: %s\n", diag.ReadID)
	s.printf("GAF alignment length: %d\n", diag.ReportedLength)
	s.printf("Correct alignment length: %d\n\n", diag.CoveredLength)
}

// DisplaySummary prints the outcome table followed by the headline ratios.
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Alignments"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"correct", fmt.Sprintf("%d", summary.Correct)})
	table.Append([]string{"incorrect", fmt.Sprintf("%d", summary.Incorrect)})
	table.Append([]string{"unaligned", fmt.Sprintf("%d", summary.Absent)})
	table.Append([]string{"malformed path", fmt.Sprintf("%d", summary.Malformed)})
	table.Append([]string{"zero length", fmt.Sprintf("%d", summary.ZeroLength)})
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", summary.Total),
		fmt.Sprintf("%d", summary.Considered),
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	s.printf("Reads mapped correctly: %s (%s)\n",
		formatCount(summary.Correct, summary.Considered), formatRatio(summary.CorrectRatio))
	s.printf("Reads NOT mapped correctly: %s (%s)\n",
		formatCount(summary.Considered-summary.Correct, summary.Considered), formatRatio(summary.IncorrectRatio))

	return nil
}

// DisplayPaths prints the reference paths of a mapping file.
func (s *SimpleUI) DisplayPaths(paths []PathInfo) error {
	if len(paths) == 0 {
		s.printf("No reference paths found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Nodes", "Span"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, p := range paths {
		table.Append([]string{p.Name, fmt.Sprintf("%d", p.Nodes), fmt.Sprintf("%d", p.Span)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Paths %d", len(paths)), "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayReports prints saved run reports, newest first.
func (s *SimpleUI) DisplayReports(reports []m.RunReport) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Created", "Path", "Tool", "Threshold", "Correct", "Ratio"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, r := range reports {
		table.Append([]string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ReferencePath,
			string(r.Tool),
			fmt.Sprintf("%v", r.Threshold),
			formatCount(r.Summary.Correct, r.Summary.Considered),
			formatRatio(r.Summary.CorrectRatio),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
