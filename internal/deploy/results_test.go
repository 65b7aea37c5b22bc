package deploy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(models.OverallStatusSuccess))
	assert.Equal(t, 3, ExitCode(models.OverallStatusPartial))
	assert.Equal(t, 1, ExitCode(models.OverallStatusFailed))
}

func TestResultCollectorEmptyRunIsSuccess(t *testing.T) {
	result := NewResultCollector().Result()
	assert.Equal(t, models.OverallStatusSuccess, result.OverallStatus)
	assert.Zero(t, result.TotalOperations)
}

func TestResultCollectorFailedTotalNeverZero(t *testing.T) {
	c := NewResultCollector()
	now := time.Now()
	c.RecordFailed("Shop Settings", now, now, 0, assert.AnError)

	result := c.Result()
	require.Len(t, result.Stages, 1)
	assert.Equal(t, 1, result.Stages[0].TotalCount)
	assert.Equal(t, 1, result.Stages[0].FailureCount)
	assert.Equal(t, models.OverallStatusFailed, result.OverallStatus)
}

func TestResultCollectorOperationTotals(t *testing.T) {
	c := NewResultCollector()
	now := time.Now()

	c.RecordSuccess("Channels", now, now, 3)
	c.RecordPartial("Product Types", now, now, &apperrors.StageAggregateError{
		Message:   "partial",
		Successes: []string{"Clothing", "Shoes"},
		Failures:  []apperrors.EntityFailure{{Entity: "Books", Err: assert.AnError}},
	})
	c.RecordSkipped("Page Types", now)

	result := c.Result()
	assert.Equal(t, 6, result.TotalOperations)
	assert.Equal(t, 5, result.SuccessfulOperations)
	assert.Equal(t, 1, result.FailedOperations)
	assert.Equal(t, models.OverallStatusPartial, result.OverallStatus)
}

func TestResultCollectorSkippedStagesDoNotCount(t *testing.T) {
	c := NewResultCollector()
	now := time.Now()

	c.RecordSkipped("Shop Settings", now)
	c.RecordSuccess("Channels", now, now, 1)

	result := c.Result()
	assert.Equal(t, models.OverallStatusSuccess, result.OverallStatus)
}
