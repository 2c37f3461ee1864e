package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

func TestChainContainer_LocalWinsOverRemote(t *testing.T) {
	local := pomresolve.NewMemoryContainer()
	localProject := mustCacheProject(t)
	local.Add(localProject)

	remoteCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		remoteCalled = true
		_, _ = w.Write([]byte("<project/>"))
	}))
	defer srv.Close()
	remote := NewRemoteRepository(srv.URL, func([]byte) (*pom.Model, error) { return &pom.Model{}, nil })

	chain := NewChainContainer(context.Background(), local, nil, remote)
	got, ok := chain.ForGav(localProject.Gav)
	if !ok || got != localProject {
		t.Fatalf("ForGav = %v, %v, want the local project", got, ok)
	}
	if remoteCalled {
		t.Error("expected the remote repository not to be consulted when local has the project")
	}
}

func TestChainContainer_FallsThroughToRemoteAndPopulatesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<project/>"))
	}))
	defer srv.Close()
	remote := NewRemoteRepository(srv.URL, func([]byte) (*pom.Model, error) {
		return &pom.Model{GroupID: "com.x", ArtifactID: "lib", Version: "1.0.0"}, nil
	})
	cache := NewCache(10, time.Minute)

	chain := NewChainContainer(context.Background(), pomresolve.NewMemoryContainer(), cache, remote)
	gav := coordinate.NewGav("com.x", "lib", "1.0.0")

	got, ok := chain.ForGav(gav)
	if !ok || got.Gav != gav {
		t.Fatalf("ForGav = %v, %v", got, ok)
	}
	if _, _, cached := cache.Get(gav); !cached {
		t.Error("expected the cache to be populated after a remote fetch")
	}
}

func TestChainContainer_NoRemoteConfiguredReportsNotFound(t *testing.T) {
	chain := NewChainContainer(context.Background(), pomresolve.NewMemoryContainer(), nil, nil)
	if _, ok := chain.ForGav(coordinate.NewGav("com.x", "lib", "1.0.0")); ok {
		t.Error("expected not-found with no local entry and no remote configured")
	}
}
