package geo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wandermate/wandermate-api/schema"
)

type stubSource struct {
	location schema.Location
	err      error
	calls    int
}

func (s *stubSource) Current(ctx context.Context) (schema.Location, error) {
	s.calls++
	return s.location, s.err
}

func TestResolveReturnsSourcePosition(t *testing.T) {
	source := &stubSource{location: schema.Location{Latitude: -15.4, Longitude: 28.3}}
	r := NewResolver(source)

	loc := r.Resolve(context.Background())
	assert.Equal(t, source.location, loc)
	assert.Equal(t, 1, source.calls)
}

func TestResolveCachesWithinTTL(t *testing.T) {
	source := &stubSource{location: schema.Location{Latitude: -15.4, Longitude: 28.3}}
	r := NewResolver(source)

	first := r.Resolve(context.Background())
	second := r.Resolve(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls, "cached fix must not trigger a new acquisition")
}

func TestResolveCacheExpires(t *testing.T) {
	source := &stubSource{location: schema.Location{Latitude: -15.4, Longitude: 28.3}}
	r := NewResolver(source)

	now := time.Now()
	r.now = func() time.Time { return now }

	r.Resolve(context.Background())
	now = now.Add(positionCacheTTL + time.Second)
	r.Resolve(context.Background())

	assert.Equal(t, 2, source.calls)
}

func TestResolveOutOfRegionReturnsAnchor(t *testing.T) {
	source := &stubSource{location: schema.Location{Latitude: -1.2921, Longitude: 36.8219}}
	r := NewResolver(source)

	loc := r.Resolve(context.Background())
	assert.Equal(t, LusakaAnchor, loc)

	// an out-of-region fix must not be cached, so a later in-region fix
	// is picked up immediately
	source.location = schema.Location{Latitude: -15.4, Longitude: 28.3}
	loc = r.Resolve(context.Background())
	assert.Equal(t, source.location, loc)
	assert.Equal(t, 2, source.calls)
}

func TestResolveSourceFailureReturnsAnchor(t *testing.T) {
	source := &stubSource{err: fmt.Errorf("permission denied")}
	r := NewResolver(source)

	loc := r.Resolve(context.Background())
	assert.Equal(t, LusakaAnchor, loc)
}
