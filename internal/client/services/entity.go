// Package services is the control-flow layer between the interface and the
// gateway. Each service validates input, calls the gateway, and dispatches
// the result into the matching cache. Caches are only mutated after the
// gateway succeeds; a failed call leaves local state untouched.
package services

import (
	"context"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// Gateway is the remote operation group for one entity table.
// *gateway.Resource[T] satisfies it.
type Gateway[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields map[string]any) (T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// collection pairs a gateway with its cache and applies the standard
// dispatch rules: list replaces, create inserts, update replaces one,
// delete removes one.
type collection[T cache.Entity] struct {
	gw    Gateway[T]
	cache *cache.Store[T]
	log   logging.Logger
}

func (c *collection[T]) refresh(ctx context.Context) ([]T, error) {
	items, err := c.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.ReplaceAll(items)
	return items, nil
}

func (c *collection[T]) create(ctx context.Context, fields map[string]any) (T, error) {
	created, err := c.gw.Create(ctx, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Insert(created)
	return created, nil
}

func (c *collection[T]) update(ctx context.Context, id int64, fields map[string]any) (T, error) {
	updated, err := c.gw.Update(ctx, id, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.ReplaceOne(updated)
	return updated, nil
}

func (c *collection[T]) remove(ctx context.Context, id int64) error {
	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.RemoveOne(id)
	return nil
}
