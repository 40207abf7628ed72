package clients

import (
	"context"
	"time"

	"github.com/mindstep/aiplan/internal/profile"
)

// CatalogSource returns the full task catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]profile.TaskCatalogEntry, error)
}

// CatalogFunc adapts a function to CatalogSource.
type CatalogFunc func(ctx context.Context) ([]profile.TaskCatalogEntry, error)

func (f CatalogFunc) Catalog(ctx context.Context) ([]profile.TaskCatalogEntry, error) {
	return f(ctx)
}

// TaskClient reads the catalog from the task service.
type TaskClient struct {
	get httpGetter
}

func NewTaskClient(baseURL string, timeout time.Duration) *TaskClient {
	return &TaskClient{get: newGetter("task service", baseURL, timeout)}
}

// catalogEnvelope is the wire and file form of a catalog.
type catalogEnvelope struct {
	Tasks []profile.RawTask `json:"tasks" yaml:"tasks"`
}

func (c *TaskClient) Catalog(ctx context.Context) ([]profile.TaskCatalogEntry, error) {
	var env catalogEnvelope
	if err := c.get.getJSON(ctx, "/api/v1/tasks", nil, &env); err != nil {
		return nil, err
	}
	return profile.BuildCatalog(env.Tasks), nil
}
