package deploy

import (
	"context"
	"sync"

	apperrors "shopsync/pkg/errors"
)

const defaultStageWorkers = 4

type entityOutcome struct {
	index  int
	entity string
	err    error
}

// runParallel fans independent sub-entity operations out over a bounded
// worker pool and joins before returning. Individual failures are collected
// rather than aborting siblings; the returned slices preserve input order.
func runParallel(ctx context.Context, entities []string, workers int, fn func(ctx context.Context, i int) error) ([]string, []apperrors.EntityFailure) {
	if workers <= 0 {
		workers = defaultStageWorkers
	}
	if workers > len(entities) {
		workers = len(entities)
	}

	jobs := make(chan int)
	outcomes := make([]entityOutcome, len(entities))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = entityOutcome{
					index:  i,
					entity: entities[i],
					err:    fn(ctx, i),
				}
			}
		}()
	}

	for i := range entities {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var successes []string
	var failures []apperrors.EntityFailure
	for _, o := range outcomes {
		if o.err != nil {
			failures = append(failures, apperrors.EntityFailure{Entity: o.entity, Err: o.err})
		} else {
			successes = append(successes, o.entity)
		}
	}
	return successes, failures
}
