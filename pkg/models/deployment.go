package models

import "time"

// StageStatus is the terminal state of one deployment stage.
type StageStatus string

const (
	StageStatusSuccess StageStatus = "success"
	StageStatusPartial StageStatus = "partial"
	StageStatusFailed  StageStatus = "failed"
	StageStatusSkipped StageStatus = "skipped"
)

// OverallStatus is the aggregated outcome of a deployment run.
type OverallStatus string

const (
	OverallStatusSuccess OverallStatus = "success"
	OverallStatusPartial OverallStatus = "partial"
	OverallStatusFailed  OverallStatus = "failed"
)

// EntityResult records the outcome for one sub-entity within a stage.
type EntityResult struct {
	Entity  string `json:"entity"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// StageResult is the recorded outcome of one pipeline stage.
type StageResult struct {
	StageName     string         `json:"stageName"`
	Status        StageStatus    `json:"status"`
	StartedAt     time.Time      `json:"startedAt"`
	EndedAt       time.Time      `json:"endedAt"`
	SuccessCount  int            `json:"successCount"`
	FailureCount  int            `json:"failureCount"`
	TotalCount    int            `json:"totalCount"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
	EntityResults []EntityResult `json:"entityResults,omitempty"`
}

// Duration returns the stage wall-clock time.
func (r StageResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// DeploymentResult is the aggregated outcome of a pipeline run.
type DeploymentResult struct {
	OverallStatus        OverallStatus `json:"overallStatus"`
	Stages               []StageResult `json:"stages"`
	TotalOperations      int           `json:"totalOperations"`
	SuccessfulOperations int           `json:"successfulOperations"`
	FailedOperations     int           `json:"failedOperations"`
}
