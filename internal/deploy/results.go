package deploy

import (
	"time"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// Process exit codes, stable for CI consumption.
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitPartial          = 3
	ExitValidationFailed = 4
	ExitPolicyBlocked    = 5
)

// ExitCode maps an overall deployment status to a process exit code.
func ExitCode(status models.OverallStatus) int {
	switch status {
	case models.OverallStatusSuccess:
		return ExitSuccess
	case models.OverallStatusPartial:
		return ExitPartial
	default:
		return ExitFailure
	}
}

// ResultCollector aggregates stage outcomes into a DeploymentResult.
type ResultCollector struct {
	stages []models.StageResult
}

// NewResultCollector creates an empty collector.
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// RecordSkipped records a stage that did not run.
func (c *ResultCollector) RecordSkipped(name string, at time.Time) {
	c.stages = append(c.stages, models.StageResult{
		StageName: name,
		Status:    models.StageStatusSkipped,
		StartedAt: at,
		EndedAt:   at,
	})
}

// RecordSuccess records a fully successful stage.
func (c *ResultCollector) RecordSuccess(name string, startedAt, endedAt time.Time, total int) {
	c.stages = append(c.stages, models.StageResult{
		StageName:    name,
		Status:       models.StageStatusSuccess,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		SuccessCount: total,
		TotalCount:   total,
	})
}

// RecordPartial records a stage that failed for some sub-entities while
// others succeeded, extracting per-entity detail from the aggregate error.
func (c *ResultCollector) RecordPartial(name string, startedAt, endedAt time.Time, agg *apperrors.StageAggregateError) {
	result := models.StageResult{
		StageName:    name,
		Status:       models.StageStatusPartial,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		SuccessCount: len(agg.Successes),
		FailureCount: len(agg.Failures),
		TotalCount:   agg.Total(),
		ErrorMessage: agg.Message,
	}
	for _, s := range agg.Successes {
		result.EntityResults = append(result.EntityResults, models.EntityResult{Entity: s, Success: true})
	}
	for _, f := range agg.Failures {
		result.EntityResults = append(result.EntityResults, models.EntityResult{Entity: f.Entity, Error: f.Err.Error()})
	}
	c.stages = append(c.stages, result)
}

// RecordFailed records a stage where nothing succeeded. total is the number
// of entities attempted, or 1 if unknown.
func (c *ResultCollector) RecordFailed(name string, startedAt, endedAt time.Time, total int, err error) {
	if total < 1 {
		total = 1
	}
	result := models.StageResult{
		StageName:    name,
		Status:       models.StageStatusFailed,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		FailureCount: total,
		TotalCount:   total,
	}
	if err != nil {
		result.ErrorMessage = err.Error()
	}
	if agg, ok := apperrors.AsStageAggregate(err); ok {
		for _, f := range agg.Failures {
			result.EntityResults = append(result.EntityResults, models.EntityResult{Entity: f.Entity, Error: f.Err.Error()})
		}
	}
	c.stages = append(c.stages, result)
}

// Result derives the overall deployment result. A run where every
// non-skipped stage failed is failed; every non-skipped stage succeeding
// (including an all-skipped run) is success; anything in between is partial.
func (c *ResultCollector) Result() *models.DeploymentResult {
	result := &models.DeploymentResult{
		Stages: append([]models.StageResult(nil), c.stages...),
	}

	var ran, succeeded, failed int
	for _, s := range c.stages {
		result.TotalOperations += s.TotalCount
		result.SuccessfulOperations += s.SuccessCount
		result.FailedOperations += s.FailureCount

		switch s.Status {
		case models.StageStatusSkipped:
			continue
		case models.StageStatusSuccess:
			succeeded++
		case models.StageStatusFailed:
			failed++
		}
		ran++
	}

	switch {
	case ran == 0 || succeeded == ran:
		result.OverallStatus = models.OverallStatusSuccess
	case failed == ran:
		result.OverallStatus = models.OverallStatusFailed
	default:
		result.OverallStatus = models.OverallStatusPartial
	}
	return result
}
