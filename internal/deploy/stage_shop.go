package deploy

import (
	"context"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// ShopStage applies shop-settings updates. The shop is a remote singleton,
// so this stage is a single patch call.
type ShopStage struct{}

func (s *ShopStage) Name() string { return "Shop Settings" }

func (s *ShopStage) EntityType() string { return models.EntityTypeShop }

func (s *ShopStage) Skip(dc *Context) bool {
	return dc.Config.Shop == nil || len(actionable(dc.Summary, s.EntityType())) == 0
}

func (s *ShopStage) Execute(ctx context.Context, dc *Context) error {
	if _, err := dc.Store.UpdateEntity(ctx, remote.SectionShop, "shop", dc.Config.Shop); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStageFailed, "failed to update shop settings")
	}
	return nil
}
