// Package registry implements the PackageRegistry port over the HTTP
// registry protocol.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 60 * time.Second

// Client implements ports.PackageRegistry against one registry base URL.
// Dependency metadata is memoized per (identity, framework) so one resolution
// never asks the same question twice, and the underlying http.Client is
// shared so downloads reuse connections.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	metadata map[uint64]*metadataEntry
}

// metadataEntry caches one answer, including misses.
type metadataEntry struct {
	info *domain.DependencyInfo
}

// New creates a registry client. The http.Client may be shared between
// registries; nil selects a default client.
func New(name, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpClientTimeout}
	}
	return &Client{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metadata:   make(map[uint64]*metadataEntry),
	}
}

// ID names the registry.
func (c *Client) ID() string {
	return c.name
}

// wireDependencyInfo is the registry metadata response format.
type wireDependencyInfo struct {
	ID           string `json:"id"`
	Version      string `json:"version"`
	Dependencies []struct {
		ID    string `json:"id"`
		Range string `json:"range"`
	} `json:"dependencies,omitempty"`
}

// DependencyInfo fetches the dependency record for the identity as seen for
// the target framework. A 404 is a miss and returns (nil, nil).
func (c *Client) DependencyInfo(ctx context.Context, identity domain.PackageIdentity, targetFramework string) (*domain.DependencyInfo, error) {
	key := metadataKey(identity, targetFramework)

	c.mu.Lock()
	entry, ok := c.metadata[key]
	c.mu.Unlock()
	if ok {
		return entry.info, nil
	}

	info, err := c.fetchDependencyInfo(ctx, identity, targetFramework)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.metadata[key] = &metadataEntry{info: info}
	c.mu.Unlock()
	return info, nil
}

func (c *Client) fetchDependencyInfo(ctx context.Context, identity domain.PackageIdentity, targetFramework string) (*domain.DependencyInfo, error) {
	endpoint := fmt.Sprintf("%s/v1/packages/%s/%s?framework=%s",
		c.baseURL,
		url.PathEscape(strings.ToLower(identity.ID)),
		url.PathEscape(identity.Version.String()),
		url.QueryEscape(targetFramework),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(domain.ErrRegistryRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(reqErr, "package", identity.String())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	var wire wireDependencyInfo
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}

	info := &domain.DependencyInfo{Identity: identity}
	for _, dep := range wire.Dependencies {
		r, err := domain.ParseVersionRange(dep.Range)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
		}
		info.Dependencies = append(info.Dependencies, domain.Dependency{ID: dep.ID, Range: r})
	}
	return info, nil
}

// Download streams the package archive. The caller closes the reader.
func (c *Client) Download(ctx context.Context, identity domain.PackageIdentity) (io.ReadCloser, error) {
	endpoint := fmt.Sprintf("%s/v1/packages/%s/%s/content",
		c.baseURL,
		url.PathEscape(strings.ToLower(identity.ID)),
		url.PathEscape(identity.Version.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		dlErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(dlErr, "package", identity.String())
	}
	return resp.Body, nil
}

func metadataKey(identity domain.PackageIdentity, targetFramework string) uint64 {
	return xxhash.Sum64String(identity.Key() + "|" + strings.ToLower(targetFramework))
}
