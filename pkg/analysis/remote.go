package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cocreatr/sceneline/internal/httpc"
	"github.com/cocreatr/sceneline/pkg/segment"
)

// Client delegates analysis to a remote engine exposing the same
// {segments, duration} contract as the local pipeline.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the engine at baseURL. Detection on long
// clips takes minutes, hence the generous timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  httpc.NewClient(5 * time.Minute),
	}
}

type analyzeRequest struct {
	VideoPath string `json:"video_path"`
}

// Analyze posts the video path to the remote engine and returns its result.
func (c *Client) Analyze(ctx context.Context, videoPath string) (segment.Result, error) {
	body, err := json.Marshal(analyzeRequest{VideoPath: videoPath})
	if err != nil {
		return segment.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return segment.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return segment.Result{}, fmt.Errorf("remote analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return segment.Result{}, fmt.Errorf("remote analysis: status %d", resp.StatusCode)
	}

	var res segment.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return segment.Result{}, fmt.Errorf("decode remote analysis: %w", err)
	}
	return res, nil
}

// Health checks the remote engine's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health: status %d", resp.StatusCode)
	}
	return nil
}
