package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mkuran/wordseal/internal/api"
	"github.com/mkuran/wordseal/internal/core"
)

// IssueCode requests a fresh code from the server.
func (c *Client) IssueCode(ctx context.Context) (*core.CodeArtifact, string, error) {
	var artifact core.CodeArtifact
	correlation, err := c.post(ctx, c.endpoint(api.IssueCodeRoute), nil, &artifact)
	if err != nil {
		return nil, correlation, err
	}
	return &artifact, correlation, nil
}

// ValidateCode presents a code to the server and returns the verdict.
// A rejected code is not an error: the server answers 401 with a verdict
// body, which is decoded and returned like any other.
func (c *Client) ValidateCode(ctx context.Context, words string) (*core.Verdict, string, error) {
	payload := api.ValidatePayload{Words: words}
	marshalled, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("marshalling payload: %w", err)
	}

	// done manually because a 401 here carries a verdict body, not an
	// error response, and our helpers treat every 4xx as an error
	req, err := http.NewRequestWithContext(ctx, "POST",
		c.endpoint(api.ValidateCodeRoute), bytes.NewReader(marshalled))
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("connection failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return nil, correlationFromResponse(resp), parseErrorResponse(resp)
	}

	var verdict core.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, correlationFromResponse(resp), fmt.Errorf("decoding response: %w", err)
	}
	return &verdict, correlationFromResponse(resp), nil
}

// ListAudits retrieves recent audit entries. Requires an admin token.
func (c *Client) ListAudits(ctx context.Context, limit int) ([]core.AuditEntry, error) {
	url := c.endpoint(api.ListAuditsRoute)
	if limit > 0 {
		url = fmt.Sprintf("%s?limit=%d", url, limit)
	}
	var entries []core.AuditEntry
	if _, err := c.get(ctx, url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
