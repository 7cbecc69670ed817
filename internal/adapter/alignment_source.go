// Package adapter contains the record sources and output sinks used by the
// gafeval workflow.
package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// ErrUnknownTool is returned for an aligner with no known GAF layout.
var ErrUnknownTool = errors.New("unknown aligner tool")

// gafMandatoryColumns is the number of columns every GAF line carries.
const gafMandatoryColumns = 12

// GAF column indexes.
const (
	colName = iota
	colQueryLen
	colQueryStart
	colQueryEnd
	colStrand
	colPath
	colPathLen
	colPathStart
	colPathEnd
)

// toolColumns is the widest row each aligner emits: the mandatory columns
// followed by its optional tags.
var toolColumns = map[m.Tool]int{
	m.ToolVGAligner:    15,
	m.ToolGraphAligner: 17,
	m.ToolVGMap:        15,
}

// ParseTool validates an aligner name.
func ParseTool(name string) (m.Tool, error) {
	tool := m.Tool(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := toolColumns[tool]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	return tool, nil
}

// AlignmentSource loads alignment records.
type AlignmentSource interface {
	ReadAlignments(ctx context.Context, path m.Path, tool m.Tool) ([]m.Alignment, error)
}

// LocalGAFReader reads GAF files from the local filesystem.
type LocalGAFReader struct{}

// NewLocalGAFReader constructs a LocalGAFReader.
func NewLocalGAFReader() *LocalGAFReader {
	return &LocalGAFReader{}
}

// ReadAlignments opens the GAF file at path and decodes all its records.
func (r *LocalGAFReader) ReadAlignments(ctx context.Context, path m.Path, tool m.Tool) ([]m.Alignment, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open GAF %s: %w", path, err)
	}
	defer f.Close()

	alignments, err := DecodeGAF(ctx, f, tool)
	if err != nil {
		return nil, fmt.Errorf("read GAF %s: %w", path, err)
	}

	return alignments, nil
}

// DecodeGAF parses tab-separated GAF records. Blank lines and lines starting
// with '#' are ignored.
func DecodeGAF(ctx context.Context, r io.Reader, tool m.Tool) ([]m.Alignment, error) {
	maxColumns, ok := toolColumns[tool]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}

	var alignments []m.Alignment

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < gafMandatoryColumns || len(fields) > maxColumns {
			return nil, fmt.Errorf("line %d: expected %d to %d columns for %s, got %d",
				lineNo, gafMandatoryColumns, maxColumns, tool, len(fields))
		}

		alignment, err := parseGAFFields(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		alignment.Line = lineNo
		alignments = append(alignments, alignment)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return alignments, nil
}

func parseGAFFields(fields []string) (m.Alignment, error) {
	numbers := make(map[int]int64, 6)

	for _, col := range []int{colQueryLen, colQueryStart, colQueryEnd, colPathLen, colPathStart, colPathEnd} {
		value, err := parseGAFInt(fields[col])
		if err != nil {
			return m.Alignment{}, fmt.Errorf("column %d: %w", col+1, err)
		}

		numbers[col] = value
	}

	if numbers[colPathLen] < 0 {
		return m.Alignment{}, fmt.Errorf("column %d: negative path length %d", colPathLen+1, numbers[colPathLen])
	}

	return m.Alignment{
		ReadID:         fields[colName],
		RawPath:        fields[colPath],
		ReportedLength: numbers[colPathLen],
		QueryLength:    numbers[colQueryLen],
		QueryStart:     numbers[colQueryStart],
		QueryEnd:       numbers[colQueryEnd],
		PathStart:      numbers[colPathStart],
		PathEnd:        numbers[colPathEnd],
	}, nil
}

// parseGAFInt parses an integer column; "*" marks a missing value.
func parseGAFInt(s string) (int64, error) {
	if s == "*" {
		return 0, nil
	}

	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
