package deploy

import (
	"time"

	"shopsync/internal/attribute"
	"shopsync/internal/remote"
	"shopsync/pkg/models"
)

// Context carries everything a deployment run shares across stages: the
// remote store, the approved diff, the original configuration, the run
// start time and the run-scoped attribute cache. Stages read from it but
// must not mutate Config or Summary. Workers bounds the per-stage worker
// pool; zero means the stage default.
type Context struct {
	Store     remote.Store
	Config    *models.Configuration
	Summary   *models.DiffSummary
	Cache     *attribute.Cache
	Resolver  *attribute.Resolver
	Workers   int
	StartedAt time.Time
}

// NewContext assembles a deployment context with a fresh run-scoped cache.
func NewContext(store remote.Store, cfg *models.Configuration, summary *models.DiffSummary, diag attribute.Diagnostic) *Context {
	cache := attribute.NewCache()
	return &Context{
		Store:     store,
		Config:    cfg,
		Summary:   summary,
		Cache:     cache,
		Resolver:  attribute.NewResolver(store, cache, diag),
		StartedAt: time.Now(),
	}
}
