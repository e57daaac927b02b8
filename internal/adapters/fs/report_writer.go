package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// RunReportWriter stores run summaries as YAML files under the data
// directory.
type RunReportWriter struct {
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewRunReportWriter creates a new run report writer
func NewRunReportWriter(cfg *config.RuntimeConfig, log *slog.Logger) *RunReportWriter {
	return &RunReportWriter{
		config: cfg,
		log:    log,
	}
}

// Write marshals the summary to .mintdrop/runs/run-<timestamp>.yaml and
// returns the path.
func (w *RunReportWriter) Write(ctx context.Context, summary *models.RunSummary) (string, error) {
	dir := filepath.Join(w.config.DataDir, "runs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to encode run report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("run-%s.yaml", summary.StartedAt.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write run report: %w", err)
	}

	w.log.Debug("run report written", "path", path)
	return path, nil
}

// Ensure the adapter implements the interface
var _ usecase.RunReportWriter = (*RunReportWriter)(nil)
