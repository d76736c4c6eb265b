package cache

import "context"

// Generation identifies the cache epoch a lookup was made in. A value computed
// after a miss is stored under the generation returned by that miss, so an
// invalidation racing with the computation leaves the stale value unreachable.
type Generation int64

// NoGeneration is returned when the current generation is unknown. Set ignores it.
const NoGeneration Generation = -1

// Cache stores serialized API responses. Invalidate drops every entry at once,
// which is what a sync or a mutation needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, Generation, bool)
	Set(ctx context.Context, key string, gen Generation, value []byte)
	Invalidate(ctx context.Context)
}

var _ Cache = (*NopCache)(nil)

// NopCache is used when redis is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, Generation, bool) {
	return nil, NoGeneration, false
}
func (NopCache) Set(context.Context, string, Generation, []byte) {}
func (NopCache) Invalidate(context.Context)                      {}
