package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
)

// LocalRepositoryContainer reads POM documents out of a local Maven
// repository directory (the ~/.m2/repository layout):
//
//	{root}/{groupId, dots as slashes}/{artifactId}/{version}/{artifactId}-{version}.pom
//
// It implements pomresolve.ProjectContainer directly, with its own small
// in-process cache — no network traffic, so the TTL eviction Cache provides
// for RemoteRepository would only add overhead here.
type LocalRepositoryContainer struct {
	root    string
	decode  Decoder
	byGav   map[coordinate.Gav]*pomresolve.Project
}

// NewLocalRepositoryContainer builds a container rooted at root.
func NewLocalRepositoryContainer(root string, decode Decoder) *LocalRepositoryContainer {
	return &LocalRepositoryContainer{
		root:   filepath.Clean(root),
		decode: decode,
		byGav:  make(map[coordinate.Gav]*pomresolve.Project),
	}
}

func (l *LocalRepositoryContainer) pomPath(gav coordinate.Gav) string {
	return filepath.Join(
		l.root,
		filepath.FromSlash(strings.ReplaceAll(gav.GroupID, ".", "/")),
		gav.ArtifactID,
		gav.Version,
		fmt.Sprintf("%s-%s.pom", gav.ArtifactID, gav.Version),
	)
}

// ForGav implements pomresolve.ProjectContainer by reading and decoding the
// POM file at gav's expected local-repository path, caching the result.
func (l *LocalRepositoryContainer) ForGav(gav coordinate.Gav) (*pomresolve.Project, bool) {
	if p, ok := l.byGav[gav]; ok {
		return p, true
	}

	path := l.pomPath(gav)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	model, err := l.decode(data)
	if err != nil {
		return nil, false
	}

	project, err := pomresolve.NewProject(path, model, true)
	if err != nil {
		return nil, false
	}
	l.byGav[gav] = project
	return project, true
}

// ParentOf implements pomresolve.ProjectContainer by looking up p's declared
// parent GAV the same way ForGav does.
func (l *LocalRepositoryContainer) ParentOf(p *pomresolve.Project) (*pomresolve.Project, bool) {
	if p.ParentGav == nil {
		return nil, false
	}
	return l.ForGav(*p.ParentGav)
}
