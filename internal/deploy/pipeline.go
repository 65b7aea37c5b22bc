package deploy

import (
	"context"
	"time"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// Pipeline runs an ordered list of stages against a shared deployment
// context. A stage failure never aborts the run: every stage gets its
// turn, and failures only surface through the final DeploymentResult.
type Pipeline struct {
	stages    []Stage
	metrics   *Metrics
	collector *ResultCollector
}

// NewPipeline creates a pipeline over the given stages, usually Registry().
func NewPipeline(stages []Stage) *Pipeline {
	return &Pipeline{
		stages:    stages,
		metrics:   NewMetrics(),
		collector: NewResultCollector(),
	}
}

// Execute runs all stages sequentially and returns the aggregated result
// together with the collected metrics.
func (p *Pipeline) Execute(ctx context.Context, dc *Context) (*models.DeploymentResult, *Metrics) {
	p.metrics.Start()

	for _, stage := range p.stages {
		if stage.Skip(dc) {
			p.collector.RecordSkipped(stage.Name(), time.Now())
			continue
		}

		total := len(actionable(dc.Summary, stage.EntityType()))
		startedAt := time.Now()
		err := stage.Execute(ctx, dc)
		endedAt := time.Now()
		p.metrics.RecordStage(stage.Name(), startedAt, endedAt)

		switch {
		case err == nil:
			p.collector.RecordSuccess(stage.Name(), startedAt, endedAt, total)
		default:
			if agg, ok := apperrors.AsStageAggregate(err); ok && len(agg.Successes) > 0 {
				p.collector.RecordPartial(stage.Name(), startedAt, endedAt, agg)
			} else {
				p.collector.RecordFailed(stage.Name(), startedAt, endedAt, total, err)
			}
		}
	}

	p.metrics.Finish()
	return p.collector.Result(), p.metrics
}
