// Package httpapi contains the HTTP implementation of the collector port.
// The collector itself is an opaque collaborator: this client only speaks
// the wire protocol and maps responses to the port's error contract.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/htscan/internal/models"
	"github.com/example/htscan/internal/ports/secondary"
)

// CollectorClient implements secondary.Collector over HTTP.
type CollectorClient struct {
	baseURL      string
	dataPath     string
	masterPath   string
	probeTimeout time.Duration
	http         *http.Client
}

// NewCollectorClient creates a collector client. probeTimeout bounds the
// reachability probe; send and receive requests use the context deadline
// of the caller.
func NewCollectorClient(baseURL, dataPath, masterPath string, probeTimeout time.Duration) *CollectorClient {
	return &CollectorClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		dataPath:     dataPath,
		masterPath:   masterPath,
		probeTimeout: probeTimeout,
		http:         &http.Client{},
	}
}

// Probe issues a HEAD request against the scanned-data endpoint. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *CollectorClient) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+c.dataPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	resp.Body.Close()
	return nil
}

// Push transmits one batch as a single JSON POST. Non-2xx responses map to
// *secondary.ServerError.
func (c *CollectorClient) Push(ctx context.Context, batch models.ScanBatch) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to serialize batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.dataPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &secondary.ServerError{Status: resp.StatusCode}
	}
	return nil
}

// FetchMaster downloads the current check master.
func (c *CollectorClient) FetchMaster(ctx context.Context) (*models.MasterList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.masterPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build receive request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("receive failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &secondary.ServerError{Status: resp.StatusCode}
	}

	var master models.MasterList
	if err := json.NewDecoder(resp.Body).Decode(&master); err != nil {
		return nil, fmt.Errorf("failed to decode check master: %w", err)
	}
	return &master, nil
}

// Ensure CollectorClient implements the interface
var _ secondary.Collector = (*CollectorClient)(nil)
