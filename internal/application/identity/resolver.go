package identity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gcn-portal/internal/config"
	"github.com/gcn-portal/internal/domain"
	jwtinfra "github.com/gcn-portal/internal/infrastructure/jwt"
	"github.com/patrickmn/go-cache"
)

// Resolver turns verified token claims into the caller identity that every
// service operation receives.
type Resolver interface {
	Resolve(ctx context.Context, claims *jwtinfra.Claims) (domain.Identity, error)
}

type groupLister interface {
	ListGroups(ctx context.Context, username string) ([]string, error)
}

type resolver struct {
	groups    groupLister
	refresh   bool
	env       config.Environment
	tolerable func(error) bool
	cache     *cache.Cache // nil when caching is off
}

type ResolverDeps struct {
	// Groups is consulted only when Refresh is set.
	Groups    groupLister
	Refresh   bool
	Env       config.Environment
	Tolerable func(error) bool
	// CacheTTL keeps refreshed groups per username for this long.
	CacheTTL time.Duration
}

func NewResolver(deps ResolverDeps) Resolver {
	tolerable := deps.Tolerable
	if tolerable == nil {
		tolerable = func(error) bool { return false }
	}
	r := &resolver{
		groups:    deps.Groups,
		refresh:   deps.Refresh && deps.Groups != nil,
		env:       deps.Env,
		tolerable: tolerable,
	}
	if r.refresh && deps.CacheTTL > 0 {
		r.cache = cache.New(deps.CacheTTL, 2*deps.CacheTTL)
	}
	return r
}

func (r *resolver) Resolve(ctx context.Context, claims *jwtinfra.Claims) (domain.Identity, error) {
	if claims == nil || claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("no subject in token: %w", domain.ErrForbidden)
	}
	id := domain.Identity{
		Sub:      claims.Subject,
		SubIss:   claims.SubIss(),
		Email:    claims.Email,
		Username: claims.Username,
		Groups:   claims.Groups,
	}
	if !r.refresh || id.Username == "" {
		return id, nil
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(id.Username); ok {
			id.Groups = cached.([]string)
			return id, nil
		}
	}

	groups, err := r.groups.ListGroups(ctx, id.Username)
	if err != nil {
		if !r.env.IsDevelopment() || !r.tolerable(err) {
			return domain.Identity{}, fmt.Errorf("refresh groups: %v: %w", err, domain.ErrUpstream)
		}
		slog.Warn("identity provider unavailable, using token groups", "username", id.Username, "err", err)
		return id, nil
	}
	if r.cache != nil {
		r.cache.SetDefault(id.Username, groups)
	}
	id.Groups = groups
	return id, nil
}
