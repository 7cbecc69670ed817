package adapter

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "github.com/mouse-blink/gafeval/internal/model"
)

const metricsNamespace = "gafeval"

// MetricsSink exports the outcome of a run for monitoring.
type MetricsSink interface {
	Export(path m.Path, report m.RunReport) error
}

// TextfileMetricsSink writes runs in the Prometheus text format, suitable
// for the node_exporter textfile collector.
type TextfileMetricsSink struct{}

// NewTextfileMetricsSink constructs a TextfileMetricsSink.
func NewTextfileMetricsSink() *TextfileMetricsSink {
	return &TextfileMetricsSink{}
}

// Export writes the metrics of report to path, replacing the file atomically.
func (s *TextfileMetricsSink) Export(path m.Path, report m.RunReport) error {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{
		"reference_path": report.ReferencePath,
		"tool":           string(report.Tool),
	}

	alignments := promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "alignments",
		Help:      "Alignments of the last run by outcome",
	}, []string{"reference_path", "tool", "outcome"})

	ratio := promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "correct_ratio",
		Help:      "Share of considered alignments classified as correct",
	}, []string{"reference_path", "tool"})

	threshold := promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "threshold",
		Help:      "Overlap ratio an alignment had to exceed",
	}, []string{"reference_path", "tool"})

	summary := report.Summary
	for outcome, count := range map[string]int{
		"considered":  summary.Considered,
		"correct":     summary.Correct,
		"incorrect":   summary.Incorrect,
		"absent":      summary.Absent,
		"malformed":   summary.Malformed,
		"zero_length": summary.ZeroLength,
	} {
		alignments.WithLabelValues(report.ReferencePath, string(report.Tool), outcome).Set(float64(count))
	}

	ratio.With(labels).Set(summary.CorrectRatio)
	threshold.With(labels).Set(report.Threshold)

	if err := prometheus.WriteToTextfile(string(path), reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
