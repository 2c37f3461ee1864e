package registry

import (
	"context"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
)

// ChainContainer composes a fast local ProjectContainer, a bounded Cache,
// and a slower RemoteRepository: a lookup tries the local container first,
// then the cache, then falls through to the remote repository and populates
// the cache on success. This is the shape a real build tool uses — check
// the workspace, then anything already fetched, then go to the network only
// as a last resort.
type ChainContainer struct {
	local  pomresolve.ProjectContainer
	cache  *Cache
	remote *RemoteRepository
	ctx    context.Context
}

// NewChainContainer builds a ChainContainer. local may be nil to skip
// straight to the cache; remote may be nil to operate cache-only (useful in
// tests, or for a fully vendored build that should never reach the
// network). ctx bounds every remote fetch the chain performs.
func NewChainContainer(ctx context.Context, local pomresolve.ProjectContainer, cache *Cache, remote *RemoteRepository) *ChainContainer {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ChainContainer{local: local, cache: cache, remote: remote, ctx: ctx}
}

// ForGav implements pomresolve.ProjectContainer with the local-then-cache-
// then-remote fallback order described above.
func (c *ChainContainer) ForGav(gav coordinate.Gav) (*pomresolve.Project, bool) {
	if c.local != nil {
		if p, ok := c.local.ForGav(gav); ok {
			return p, true
		}
	}

	if c.cache != nil {
		if p, found, cached := c.cache.Get(gav); cached {
			return p, found
		}
	}

	if c.remote == nil {
		if c.cache != nil {
			c.cache.PutMiss(gav)
		}
		return nil, false
	}

	project, err := c.remote.FetchProject(c.ctx, gav)
	if err != nil {
		if c.cache != nil {
			c.cache.PutMiss(gav)
		}
		return nil, false
	}

	if c.cache != nil {
		c.cache.Put(gav, project)
	}
	return project, true
}

// ParentOf implements pomresolve.ProjectContainer by resolving p's declared
// parent GAV through the same chain as ForGav.
func (c *ChainContainer) ParentOf(p *pomresolve.Project) (*pomresolve.Project, bool) {
	if p.ParentGav == nil {
		return nil, false
	}
	return c.ForGav(*p.ParentGav)
}
