package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// ReportStore persists export reports as manifests.
type ReportStore interface {
	SaveReport(path m.Path, report m.ExportReport) error
	LoadReport(path m.Path) (m.ExportReport, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs the default ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to path, replacing any existing manifest.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.ExportReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a manifest written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.ExportReport, error) {
	// #nosec G304 - manifest path is supplied by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ExportReport{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var report m.ExportReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.ExportReport{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return report, nil
}
