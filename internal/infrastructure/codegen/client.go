// Package codegen is the HTTP boundary to the external graph-code-generation
// service. The service itself is opaque to this backend: a workflow
// specification goes in, a stub and an implementation come out.
package codegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
)

const requestTimeout = 30 * time.Second

// Client implements ports.CodeGenerator against the generator's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the generator reachable at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type generateRequest struct {
	Spec      string   `json:"spec"`
	Format    string   `json:"format"`
	Language  string   `json:"language"`
	Templates []string `json:"templates"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	Stub           string `json:"stub"`
	Implementation string `json:"implementation"`
	Error          string `json:"error,omitempty"`
}

// Generate posts the specification to the generator and returns the two code
// artifacts. Upstream failures are wrapped in domain.ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, in ports.GenerateInput) (*ports.GenerateResult, error) {
	payload, err := json.Marshal(generateRequest{
		Spec:      in.Spec,
		Format:    in.Format,
		Language:  in.Language,
		Templates: in.Templates,
	})
	if err != nil {
		return nil, fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrGenerationFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: generator returned %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}
	// The generator reports its own failures in-band with success=false.
	if out.Error != "" || !out.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrGenerationFailed, out.Error)
	}

	return &ports.GenerateResult{
		Stub:           out.Stub,
		Implementation: out.Implementation,
	}, nil
}
