package registry

import (
	"testing"
	"time"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

func mustCacheProject(t *testing.T) *pomresolve.Project {
	t.Helper()
	p, err := pomresolve.NewProject("lib/pom.xml", &pom.Model{GroupID: "com.x", ArtifactID: "lib", Version: "1.0.0"}, true)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	return p
}

func TestCache_PutThenGet(t *testing.T) {
	c := NewCache(10, time.Minute)
	p := mustCacheProject(t)

	_, _, cached := c.Get(p.Gav)
	if cached {
		t.Fatal("expected a miss before any Put")
	}

	c.Put(p.Gav, p)
	got, found, cached := c.Get(p.Gav)
	if !cached || !found || got != p {
		t.Errorf("Get after Put = %v, %v, %v", got, found, cached)
	}
}

func TestCache_NegativeCachingOptIn(t *testing.T) {
	gav := coordinate.NewGav("com.x", "missing", "1.0.0")

	plain := NewCache(10, time.Minute)
	plain.PutMiss(gav)
	if _, _, cached := plain.Get(gav); cached {
		t.Error("expected PutMiss to be a no-op without WithNegativeCaching")
	}

	negative := NewCache(10, time.Minute, WithNegativeCaching())
	negative.PutMiss(gav)
	_, found, cached := negative.Get(gav)
	if !cached || found {
		t.Errorf("Get after PutMiss = found=%v cached=%v, want found=false cached=true", found, cached)
	}
}

func TestCache_DefaultsAppliedForNonPositiveArgs(t *testing.T) {
	c := NewCache(0, 0)
	if c.entries.Len() != 0 {
		t.Fatalf("expected an empty cache, got len %d", c.entries.Len())
	}
}

type countingMetrics struct {
	hits, misses, fetchOK, fetchFail int
}

func (m *countingMetrics) CacheHit(string)  { m.hits++ }
func (m *countingMetrics) CacheMiss(string) { m.misses++ }
func (m *countingMetrics) RemoteFetch(_ string, ok bool) {
	if ok {
		m.fetchOK++
	} else {
		m.fetchFail++
	}
}

func TestCache_RecordsMetrics(t *testing.T) {
	m := &countingMetrics{}
	c := NewCache(10, time.Minute, WithMetricsRecorder(m))
	p := mustCacheProject(t)

	c.Get(p.Gav)
	c.Put(p.Gav, p)
	c.Get(p.Gav)

	if m.misses != 1 || m.hits != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", m.hits, m.misses)
	}
}
