package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gafeval/internal/adapter"
	"github.com/mouse-blink/gafeval/internal/controller"
	m "github.com/mouse-blink/gafeval/internal/model"
)

// CompareArgs holds the inputs of the compare command.
type CompareArgs struct {
	GAF           m.Path
	Mappings      m.Path
	ReferencePath string
	Tool          m.Tool
	Threshold     float64
	Reports       m.Path // empty disables the run report
	Metrics       m.Path // empty disables the metrics textfile
	Command       string
	ShowNodes     bool
}

// PathsArgs holds the inputs of the paths command.
type PathsArgs struct {
	Mappings m.Path
	Path     string // when set, also list the nodes of this path
}

// ViewArgs holds the inputs of the view command.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Compare(ctx context.Context, args CompareArgs) error
	Paths(ctx context.Context, args PathsArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	alignments adapter.AlignmentSource
	mappings   adapter.MappingSource
	store      adapter.ReportStore
	metrics    adapter.MetricsSink
	ui         controller.UI
	logger     *slog.Logger
	now        func() time.Time
}

// NewWorkflow creates a Workflow wired to the given adapters. A nil logger
// discards log output.
func NewWorkflow(
	alignments adapter.AlignmentSource,
	mappings adapter.MappingSource,
	store adapter.ReportStore,
	metrics adapter.MetricsSink,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		alignments: alignments,
		mappings:   mappings,
		store:      store,
		metrics:    metrics,
		ui:         ui,
		logger:     logger,
		now:        time.Now,
	}
}

// Compare scores the alignments of a GAF file against one reference path.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	w.ui.DisplayRunInfo(controller.RunInfo{
		Command:       args.Command,
		GAF:           args.GAF,
		Mappings:      args.Mappings,
		ReferencePath: args.ReferencePath,
		Tool:          args.Tool,
		Threshold:     args.Threshold,
	})

	alignments, mappings, err := w.load(ctx, args.GAF, args.Mappings, args.Tool)
	if err != nil {
		return err
	}

	if mapping, ok := mappings[args.ReferencePath]; ok && args.ShowNodes {
		w.ui.DisplayPathNodes(args.ReferencePath, mapping.Nodes())
	}

	eval, err := Evaluate(EvaluateArgs{
		Mappings:      mappings,
		ReferencePath: args.ReferencePath,
		Alignments:    alignments,
		Threshold:     args.Threshold,
		Observer: Observer{
			OnIncorrect: w.ui.DisplayIncorrect,
			OnSkipped: func(s Skipped) {
				w.logger.Warn("alignment skipped",
					"read", s.Alignment.ReadID,
					"line", s.Alignment.Line,
					"outcome", s.Outcome.String(),
					"reason", s.Err)
			},
		},
	})
	if errors.Is(err, ErrPathNotFound) {
		w.logger.Error("reference path not found", "path", args.ReferencePath, "available", mappings.Names())
		return err
	}

	if err != nil {
		return err
	}

	reverse := 0

	for _, d := range eval.Diagnostics {
		if HasReverse(d.Traversals) {
			reverse++
		}
	}

	if reverse > 0 {
		w.logger.Debug("incorrect alignments with reverse traversals, strand is not taken into account", "count", reverse)
	}

	if err := w.ui.DisplaySummary(eval.Summary); err != nil {
		return err
	}

	return w.persist(args, eval)
}

func (w *workflow) load(ctx context.Context, gaf, mappingsPath m.Path, tool m.Tool) ([]m.Alignment, m.Mappings, error) {
	var (
		alignments []m.Alignment
		mappings   m.Mappings
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		alignments, err = w.alignments.ReadAlignments(gctx, gaf, tool)

		return err
	})

	g.Go(func() error {
		var err error

		mappings, err = w.mappings.LoadMappings(gctx, mappingsPath)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	w.logger.Debug("inputs loaded", "alignments", len(alignments), "paths", len(mappings))

	return alignments, mappings, nil
}

func (w *workflow) persist(args CompareArgs, eval Evaluation) error {
	if args.Reports == "" && args.Metrics == "" {
		return nil
	}

	report := m.RunReport{
		ID:            uuid.NewString(),
		CreatedAt:     w.now().UTC(),
		Command:       args.Command,
		GAF:           args.GAF,
		Mappings:      args.Mappings,
		ReferencePath: args.ReferencePath,
		Tool:          args.Tool,
		Threshold:     args.Threshold,
		Summary:       eval.Summary,
		Diagnostics:   eval.Diagnostics,
	}

	if args.Reports != "" {
		path, err := w.store.SaveReport(args.Reports, report)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		w.logger.Info("report saved", "path", path, "id", report.ID)
	}

	if args.Metrics != "" {
		if err := w.metrics.Export(args.Metrics, report); err != nil {
			return fmt.Errorf("failed to export metrics: %w", err)
		}

		w.logger.Info("metrics written", "path", args.Metrics)
	}

	return nil
}

// Paths lists the reference paths of a mapping file.
func (w *workflow) Paths(ctx context.Context, args PathsArgs) error {
	mappings, err := w.mappings.LoadMappings(ctx, args.Mappings)
	if err != nil {
		return err
	}

	names := mappings.Names()
	infos := make([]controller.PathInfo, 0, len(names))

	for _, name := range names {
		mapping := mappings[name]
		infos = append(infos, controller.PathInfo{Name: name, Nodes: len(mapping), Span: mapping.Span()})
	}

	if err := w.ui.DisplayPaths(infos); err != nil {
		return err
	}

	if args.Path == "" {
		return nil
	}

	mapping, ok := mappings[args.Path]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, args.Path)
	}

	w.ui.DisplayPathNodes(args.Path, mapping.Nodes())

	return nil
}

// View shows previously saved run reports.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(reports)
}
