package intersight

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// listResponse is the mo.List document returned by collection queries.
type listResponse struct {
	Results []struct {
		Moid string `json:"Moid"`
		Name string `json:"Name"`
	} `json:"Results"`
}

// nameFilter returns an OData equality filter on Name.
// Single quotes are escaped by doubling them.
func nameFilter(name string) string {
	return fmt.Sprintf("Name eq '%s'", strings.ReplaceAll(name, "'", "''"))
}

// ListMoidsByName implements DirectoryReader.
func (c *RealClient) ListMoidsByName(ctx context.Context, kind ResourceKind, name string) ([]string, error) {
	q := url.Values{}
	q.Set("$filter", nameFilter(name))
	q.Set("$select", "Moid,Name")

	var resp listResponse
	err := c.do(ctx, apiRequest{
		Method:   http.MethodGet,
		Resource: string(kind),
		Query:    q,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	moids := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		moids = append(moids, r.Moid)
	}
	return moids, nil
}
