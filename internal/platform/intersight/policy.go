package intersight

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// sanConnectivityPolicy holds the fields of vnic.SanConnectivityPolicy we read.
type sanConnectivityPolicy struct {
	Moid     string  `json:"Moid"`
	Profiles []MoRef `json:"Profiles"`
}

// GetSanConnectivityPolicyProfiles implements PolicyManager.
func (c *RealClient) GetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string) ([]MoRef, error) {
	q := url.Values{}
	q.Set("$select", "Profiles")

	var policy sanConnectivityPolicy
	err := c.do(ctx, apiRequest{
		Method:   http.MethodGet,
		Resource: string(KindSanConnectivityPolicy),
		Moid:     policyMoid,
		Query:    q,
	}, &policy)
	if err != nil {
		return nil, fmt.Errorf("failed to get SAN connectivity policy: %w", err)
	}
	return policy.Profiles, nil
}

// SetSanConnectivityPolicyProfiles implements PolicyManager.
func (c *RealClient) SetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string, profiles []MoRef) error {
	if profiles == nil {
		profiles = []MoRef{}
	}
	err := c.do(ctx, apiRequest{
		Method:   http.MethodPatch,
		Resource: string(KindSanConnectivityPolicy),
		Moid:     policyMoid,
		Body:     map[string]any{"Profiles": profiles},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to update SAN connectivity policy profiles: %w", err)
	}
	return nil
}
