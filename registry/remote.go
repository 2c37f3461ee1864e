package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// Default HTTP client tuning for RemoteRepository, sized for a build
// talking to one or two remote repositories across many concurrent module
// fetches.
const (
	DefaultMaxIdleConns        = 50
	DefaultMaxIdleConnsPerHost = 20
	DefaultIdleConnTimeout     = 90 * time.Second
	DefaultRequestTimeout      = 15 * time.Second
)

// Decoder turns the bytes of a fetched POM document into a *pom.Model.
// Decoding the Maven XML itself is out of scope for this module (see the
// pom package's doc comment); a caller supplies whatever XML or other
// decoder their own toolchain already has.
type Decoder func(data []byte) (*pom.Model, error)

// RemoteRepository fetches POM documents from a Maven-layout HTTP
// repository: {base}/{groupId, dots as slashes}/{artifactId}/{version}/{artifactId}-{version}.pom
type RemoteRepository struct {
	baseURL string
	client  *http.Client
	decode  Decoder
	metrics MetricsRecorder
}

// RemoteOption configures a RemoteRepository.
type RemoteOption func(*RemoteRepository)

// WithHTTPClient overrides the default connection-pooled client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *RemoteRepository) { r.client = c }
}

// WithRemoteMetrics attaches a MetricsRecorder; without one, metrics calls
// are no-ops.
func WithRemoteMetrics(m MetricsRecorder) RemoteOption {
	return func(r *RemoteRepository) { r.metrics = m }
}

// NewRemoteRepository builds a client against baseURL, decoding fetched
// documents with decode.
func NewRemoteRepository(baseURL string, decode Decoder, opts ...RemoteOption) *RemoteRepository {
	transport := &http.Transport{
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}
	r := &RemoteRepository{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultRequestTimeout, Transport: transport},
		decode:  decode,
		metrics: NoopMetricsRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BaseURL returns the repository's base URL.
func (r *RemoteRepository) BaseURL() string {
	return r.baseURL
}

// FetchProject fetches and decodes the POM for gav, building a *pomresolve.Project
// from it. It does not itself cache; pair with a Cache via ChainContainer for
// memoization across repeated lookups.
func (r *RemoteRepository) FetchProject(ctx context.Context, gav coordinate.Gav) (*pomresolve.Project, error) {
	path := fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom",
		r.baseURL,
		strings.ReplaceAll(gav.GroupID, ".", "/"),
		gav.ArtifactID,
		gav.Version,
		gav.ArtifactID,
		gav.Version,
	)

	data, err := r.fetch(ctx, path)
	if err != nil {
		r.metrics.RemoteFetch(gav.String(), false)
		return nil, fmt.Errorf("fetch %s: %w", gav.String(), err)
	}

	model, err := r.decode(data)
	if err != nil {
		r.metrics.RemoteFetch(gav.String(), false)
		return nil, fmt.Errorf("decode %s: %w", gav.String(), err)
	}

	project, err := pomresolve.NewProject(path, model, true)
	if err != nil {
		r.metrics.RemoteFetch(gav.String(), false)
		return nil, err
	}
	r.metrics.RemoteFetch(gav.String(), true)
	return project, nil
}

func (r *RemoteRepository) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
