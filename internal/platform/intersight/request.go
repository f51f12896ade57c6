package intersight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// apiRequest describes a single call against a collection or one of its members.
type apiRequest struct {
	Method   string
	Resource string // collection path, e.g. server/Profiles
	Moid     string // member moid, empty for collection calls
	Query    url.Values
	Body     any
}

func (r apiRequest) path() string {
	if r.Moid == "" {
		return r.Resource
	}
	return r.Resource + "/" + url.PathEscape(r.Moid)
}

// encodeQuery encodes OData query parameters with %20 for spaces.
func encodeQuery(q url.Values) string {
	return strings.ReplaceAll(q.Encode(), "+", "%20")
}

// do sends a signed request and decodes a 2xx JSON response into result.
// Non-2xx responses become *APIError.
func (c *RealClient) do(ctx context.Context, r apiRequest, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload []byte
	if r.Body != nil {
		var err error
		payload, err = json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	u := c.baseURL.JoinPath(r.path())
	if len(r.Query) > 0 {
		u.RawQuery = encodeQuery(r.Query)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.signer.Sign(req, payload); err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(r.Method, r.Resource, "error", time.Since(start))
		return fmt.Errorf("%s %s: request failed: %w", r.Method, r.path(), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.metrics.observe(r.Method, r.Resource, strconv.Itoa(resp.StatusCode), time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", r.Method, r.path(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(r.Method, r.path(), resp.StatusCode, body)
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", r.Method, r.path(), err)
		}
	}
	return nil
}
