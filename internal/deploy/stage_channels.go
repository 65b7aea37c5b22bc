package deploy

import (
	"context"
	"fmt"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// ChannelsStage creates and updates sales channels. Channels are
// independent of each other, so sub-entities run on the stage worker pool
// with partial-credit accounting.
type ChannelsStage struct{}

func (s *ChannelsStage) Name() string { return "Channels" }

func (s *ChannelsStage) EntityType() string { return models.EntityTypeChannels }

func (s *ChannelsStage) Skip(dc *Context) bool {
	return len(actionable(dc.Summary, s.EntityType())) == 0
}

func (s *ChannelsStage) Execute(ctx context.Context, dc *Context) error {
	results := actionable(dc.Summary, s.EntityType())

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.EntityName
	}

	successes, failures := runParallel(ctx, names, dc.Workers, func(ctx context.Context, i int) error {
		return s.apply(ctx, dc, results[i])
	})
	return apperrors.NewStageAggregate("channel deployment finished with failures", successes, failures)
}

func (s *ChannelsStage) apply(ctx context.Context, dc *Context, result models.DiffResult) error {
	switch result.Operation {
	case models.OperationCreate:
		ch, ok := result.Desired.(models.Channel)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "channel create result carries no payload")
		}
		_, err := dc.Store.CreateEntity(ctx, remote.SectionChannels, ch)
		return err

	case models.OperationUpdate:
		current, ok := result.Current.(*models.RemoteChannel)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "channel update result carries no remote identity")
		}
		_, err := dc.Store.UpdateEntity(ctx, remote.SectionChannels, current.ID, result.Desired)
		return err

	default:
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("unexpected channel operation %s", result.Operation))
	}
}
