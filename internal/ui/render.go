package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"shopsync/pkg/models"
)

var (
	createMarker = color.New(color.FgGreen).SprintFunc()
	deleteMarker = color.New(color.FgRed).SprintFunc()
	updateMarker = color.New(color.FgYellow).SprintFunc()
)

// RenderDiff prints a reviewable, colored diff in declaration order.
func RenderDiff(summary *models.DiffSummary) {
	if !summary.HasChanges() {
		ShowSuccess("No changes. Remote configuration matches the local state.")
		return
	}

	currentType := ""
	for _, r := range summary.Results {
		if r.EntityType != currentType {
			currentType = r.EntityType
			fmt.Printf("\n%s %s\n", ColorBold("▶"), ColorBold(currentType))
		}

		switch r.Operation {
		case models.OperationCreate:
			fmt.Printf("  %s %s\n", createMarker("+"), r.EntityName)
		case models.OperationDelete:
			fmt.Printf("  %s %s %s\n", deleteMarker("-"), r.EntityName,
				ColorDim("(reported only; deletions are never executed)"))
		case models.OperationUpdate:
			fmt.Printf("  %s %s\n", updateMarker("~"), r.EntityName)
			for _, c := range r.Changes {
				if c.Description != "" {
					fmt.Printf("      %s\n", ColorDim(c.Description))
				} else {
					fmt.Printf("      %s: %v -> %v\n", c.Field, c.CurrentValue, c.DesiredValue)
				}
			}
		}
	}

	fmt.Printf("\n%s %d change(s): %d create, %d update, %d delete\n",
		ColorBold("Σ"), summary.TotalChanges, summary.Creates, summary.Updates, summary.Deletes)
}

// RenderDeployment prints the per-stage deployment outcome table and the
// overall verdict.
func RenderDeployment(result *models.DeploymentResult, duration time.Duration) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stage", "Status", "Success", "Failed", "Total", "Duration"})

	for _, s := range result.Stages {
		table.Append([]string{
			s.StageName,
			statusLabel(s.Status),
			fmt.Sprintf("%d", s.SuccessCount),
			fmt.Sprintf("%d", s.FailureCount),
			fmt.Sprintf("%d", s.TotalCount),
			s.Duration().Round(time.Millisecond).String(),
		})
	}
	table.Render()

	for _, s := range result.Stages {
		for _, e := range s.EntityResults {
			if !e.Success {
				fmt.Printf("  %s %s: %s\n", ColorError("✗"), e.Entity, e.Error)
			}
		}
	}

	switch result.OverallStatus {
	case models.OverallStatusSuccess:
		ShowSuccess(fmt.Sprintf("Deployment succeeded: %d operation(s) in %s",
			result.SuccessfulOperations, duration.Round(time.Millisecond)))
	case models.OverallStatusPartial:
		ShowWarning(fmt.Sprintf("Deployment partially succeeded: %d of %d operation(s) applied",
			result.SuccessfulOperations, result.TotalOperations))
	default:
		ShowError(fmt.Errorf("deployment failed: %d of %d operation(s) failed",
			result.FailedOperations, result.TotalOperations))
	}
}

func statusLabel(status models.StageStatus) string {
	switch status {
	case models.StageStatusSuccess:
		return ColorSuccess(string(status))
	case models.StageStatusPartial:
		return ColorWarning(string(status))
	case models.StageStatusFailed:
		return ColorError(string(status))
	default:
		return ColorDim(string(status))
	}
}
