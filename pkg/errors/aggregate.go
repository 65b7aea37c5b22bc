package errors

import (
	"errors"
	"fmt"
	"strings"
)

// EntityFailure records one failed sub-entity within a stage.
type EntityFailure struct {
	Entity string
	Err    error
}

// StageAggregateError reports partial failure of a stage that processed
// multiple independent sub-entities. The pipeline uses it to mark the stage
// partial instead of failed, crediting the successes.
type StageAggregateError struct {
	Message   string
	Successes []string
	Failures  []EntityFailure
}

// Error implements the error interface
func (e *StageAggregateError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d succeeded, %d failed)",
		e.Message, len(e.Successes), len(e.Failures)))
	for _, f := range e.Failures {
		b.WriteString(fmt.Sprintf("\n  %s: %v", f.Entity, f.Err))
	}
	return b.String()
}

// Total returns the number of sub-entities the stage attempted.
func (e *StageAggregateError) Total() int {
	return len(e.Successes) + len(e.Failures)
}

// NewStageAggregate builds an aggregate error from collected outcomes.
// Returns nil when there are no failures.
func NewStageAggregate(message string, successes []string, failures []EntityFailure) error {
	if len(failures) == 0 {
		return nil
	}
	return &StageAggregateError{
		Message:   message,
		Successes: successes,
		Failures:  failures,
	}
}

// AsStageAggregate extracts a StageAggregateError from an error chain.
func AsStageAggregate(err error) (*StageAggregateError, bool) {
	var agg *StageAggregateError
	if errors.As(err, &agg) {
		return agg, true
	}
	return nil, false
}
