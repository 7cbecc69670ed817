package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gafeval/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves comparison run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) (m.Path, error)
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

// LocalReportStore writes one YAML file per run into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to dir/<id>.yaml, assigning an id when empty.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.RunReport) (m.Path, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report %s: %w", report.ID, err)
	}

	path := filepath.Join(string(dir), report.ID+reportExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return m.Path(path), nil
}

// LoadReports reads every report in dir, newest first. A missing directory
// holds no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir %s: %w", dir, err)
	}

	var reports []m.RunReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.RunReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}
