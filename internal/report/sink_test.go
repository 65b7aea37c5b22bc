package report

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/internal/deploy"
	"shopsync/pkg/models"
)

func runMetrics() *deploy.Metrics {
	m := deploy.NewMetrics()
	m.Start()
	now := time.Now()
	m.RecordStage("Channels", now, now.Add(5*time.Millisecond))
	m.Finish()
	return m
}

func TestSinkSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, 10)

	summary := &models.DiffSummary{}
	summary.Add(models.DiffResult{
		Operation:  models.OperationCreate,
		EntityType: models.EntityTypeChannels,
		EntityName: "Germany",
	})
	result := &models.DeploymentResult{OverallStatus: models.OverallStatusSuccess}

	path, err := sink.Save(runMetrics(), summary, result)
	require.NoError(t, err)
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, models.OverallStatusSuccess, report.Result.OverallStatus)
	require.Len(t, report.Summary.Results, 1)
	assert.Equal(t, "Germany", report.Summary.Results[0].EntityName)

	require.Contains(t, report.Timings, "Channels")
	assert.Equal(t, 5*time.Millisecond, report.Timings["Channels"].Duration())
}

func TestSinkPrunesHistory(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, 3)

	summary := &models.DiffSummary{}
	result := &models.DeploymentResult{OverallStatus: models.OverallStatusSuccess}

	for i := 0; i < 5; i++ {
		_, err := sink.Save(runMetrics(), summary, result)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // distinct timestamps in the file names
	}

	reports, err := sink.List()
	require.NoError(t, err)
	assert.Len(t, reports, 3)
}

func TestSinkListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, 10)

	summary := &models.DiffSummary{}
	result := &models.DeploymentResult{OverallStatus: models.OverallStatusSuccess}

	var paths []string
	for i := 0; i < 3; i++ {
		p, err := sink.Save(runMetrics(), summary, result)
		require.NoError(t, err)
		paths = append(paths, p)
		time.Sleep(2 * time.Millisecond)
	}

	reports, err := sink.List()
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, paths[2], reports[0])
	assert.Equal(t, paths[0], reports[2])
}

func TestSinkDefaultRetention(t *testing.T) {
	sink := NewSink(t.TempDir(), 0)
	assert.Equal(t, 50, sink.maxHistory)
}
