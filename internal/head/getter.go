package head

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/logger"
	"github.com/osse101/PanelKit_Go/internal/metrics"
	"github.com/osse101/PanelKit_Go/internal/panel"
)

// Getter resolves player heads for panel items, caching profiles by player name
type Getter struct {
	resolver Resolver
	cache    *expirable.LRU[string, Profile]
	group    singleflight.Group
}

// NewGetter creates a Getter holding at most size profiles for ttl each
func NewGetter(resolver Resolver, size int, ttl time.Duration) *Getter {
	return &Getter{
		resolver: resolver,
		cache:    expirable.NewLRU[string, Profile](size, nil, ttl),
	}
}

// Profile returns the profile for name, resolving it on a cache miss.
// Concurrent misses for the same name share one resolution, which runs
// detached from the cancellation of whichever caller started it.
func (g *Getter) Profile(ctx context.Context, name string) (Profile, error) {
	if p, ok := g.cache.Get(name); ok {
		metrics.HeadLookups.WithLabelValues(metrics.ResultHit).Inc()
		return p, nil
	}
	metrics.HeadLookups.WithLabelValues(metrics.ResultMiss).Inc()

	v, err, _ := g.group.Do(name, func() (interface{}, error) {
		p, err := g.resolver.Resolve(context.WithoutCancel(ctx), name)
		if err != nil {
			return Profile{}, err
		}
		g.cache.Add(name, p)
		logger.FromContext(ctx).Debug(LogMsgHeadResolved, "name", name, "id", p.ID)
		return p, nil
	})
	if err != nil {
		metrics.HeadResolveErrors.Inc()
		return Profile{}, fmt.Errorf(ErrFmtResolveFailed, name, err)
	}
	return v.(Profile), nil
}

// Apply swaps a player-head item's icon for a head owned by its player.
// Items that are not player heads are left untouched.
func (g *Getter) Apply(ctx context.Context, item *panel.Item) error {
	if !item.IsPlayerHead() {
		return nil
	}

	p, err := g.Profile(ctx, item.PlayerHeadName())
	if err != nil {
		return err
	}

	stack := domain.NewItemStack(domain.MaterialPlayerHead, item.Icon().Amount)
	meta, _ := stack.ItemMeta()
	meta.Owner = &domain.HeadOwner{ID: p.ID, Name: p.Name}
	stack.SetItemMeta(meta)

	item.SetHead(stack)

	logger.FromContext(ctx).Debug(LogMsgHeadApplied, "name", p.Name)
	return nil
}

// Invalidate drops a cached profile
func (g *Getter) Invalidate(name string) {
	g.cache.Remove(name)
}

// Len returns the number of cached profiles
func (g *Getter) Len() int {
	return g.cache.Len()
}
