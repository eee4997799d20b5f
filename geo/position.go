package geo

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wandermate/wandermate-api/schema"
)

const (
	// positionCacheTTL bounds how long a resolved fix is reused before the
	// source is consulted again.
	positionCacheTTL = 5 * time.Minute

	// acquireTimeout bounds a single position acquisition.
	acquireTimeout = 10 * time.Second
)

// PositionSource supplies the user's current coordinates. In the API server
// the source reads the account's last reported fix; tests substitute stubs.
type PositionSource interface {
	Current(ctx context.Context) (schema.Location, error)
}

type cachedPosition struct {
	location  schema.Location
	timestamp time.Time
}

// Resolver resolves the current user position with a bounded-TTL cache and
// a fixed regional fallback. Resolve never fails: a source error or an
// out-of-region fix degrades to the anchor coordinate.
type Resolver struct {
	source PositionSource
	bounds Bounds
	anchor schema.Location
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	cached *cachedPosition
}

// NewResolver returns a resolver bound to the Zambia region.
func NewResolver(source PositionSource) *Resolver {
	return &Resolver{
		source: source,
		bounds: ZambiaBounds,
		anchor: LusakaAnchor,
		ttl:    positionCacheTTL,
		now:    time.Now,
	}
}

// Resolve returns the current position. A cached in-region fix younger than
// the TTL is returned without consulting the source. An out-of-region fix
// returns the anchor without overwriting the cache, so a later in-region
// fix is not shadowed.
func (r *Resolver) Resolve(ctx context.Context) schema.Location {
	if loc, ok := r.fromCache(); ok {
		return loc
	}

	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	loc, err := r.source.Current(ctx)
	if err != nil {
		log.WithField("prefix", "geo").WithError(err).Warn("position unavailable, using anchor")
		return r.anchor
	}

	if !r.bounds.Contains(loc) {
		return r.anchor
	}

	r.mu.Lock()
	r.cached = &cachedPosition{location: loc, timestamp: r.now()}
	r.mu.Unlock()

	return loc
}

func (r *Resolver) fromCache() (schema.Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached == nil || r.now().Sub(r.cached.timestamp) >= r.ttl {
		return schema.Location{}, false
	}
	return r.cached.location, true
}
