package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"shopsync/internal/deploy"
	"shopsync/pkg/models"
)

// Report is the persisted record of one deployment run.
type Report struct {
	CreatedAt time.Time                     `json:"createdAt"`
	Duration  time.Duration                 `json:"duration"`
	Summary   *models.DiffSummary           `json:"summary"`
	Result    *models.DeploymentResult      `json:"result"`
	Timings   map[string]deploy.StageTiming `json:"timings,omitempty"`
}

// Sink persists deployment reports as JSON files and prunes old ones.
// Saving is fire-and-forget from the pipeline's perspective: a sink failure
// never fails the deployment.
type Sink struct {
	dir        string
	maxHistory int
}

// NewSink creates a sink writing to dir, keeping at most maxHistory reports.
func NewSink(dir string, maxHistory int) *Sink {
	if maxHistory <= 0 {
		maxHistory = 50
	}
	return &Sink{dir: dir, maxHistory: maxHistory}
}

// Save writes one report and prunes history beyond the retention limit.
func (s *Sink) Save(metrics *deploy.Metrics, summary *models.DiffSummary, result *models.DeploymentResult) (string, error) {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	report := Report{
		CreatedAt: metrics.StartedAt(),
		Duration:  metrics.Duration(),
		Summary:   summary,
		Result:    result,
		Timings:   metrics.Timings(),
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	name := fmt.Sprintf("shopsync-%s.json", report.CreatedAt.UTC().Format("20060102-150405.000"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	s.prune()
	return path, nil
}

// List returns the stored report paths, newest first.
func (s *Sink) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "shopsync-*.json"))
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

func (s *Sink) prune() {
	reports, err := s.List()
	if err != nil {
		return
	}
	for _, path := range reports[minInt(len(reports), s.maxHistory):] {
		_ = os.Remove(path)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
