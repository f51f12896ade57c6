package intersight

import (
	"context"
	"strings"
)

// Call records one invocation on MockClient.
type Call struct {
	Method string
	Args   []string
}

func (c Call) String() string {
	return c.Method + "(" + strings.Join(c.Args, ", ") + ")"
}

// MockClient is a mock implementation of Manager.
// Unset functions return deterministic moids derived from their arguments.
type MockClient struct {
	ListMoidsByNameFunc func(ctx context.Context, kind ResourceKind, name string) ([]string, error)

	CloneProfileFromTemplateFunc  func(ctx context.Context, organizationMoid, templateMoid, name string) (string, error)
	DetachProfileFromTemplateFunc func(ctx context.Context, profileMoid string) error
	SetReservationReferencesFunc  func(ctx context.Context, profileMoid string, refs []ReservationReference) error
	MergeProfileWithTemplateFunc  func(ctx context.Context, profileMoid, templateMoid string) error
	AttachProfileToTemplateFunc   func(ctx context.Context, profileMoid, templateMoid string) error

	GetSanConnectivityPolicyProfilesFunc func(ctx context.Context, policyMoid string) ([]MoRef, error)
	SetSanConnectivityPolicyProfilesFunc func(ctx context.Context, policyMoid string, profiles []MoRef) error

	CreateWWPNReservationFunc func(ctx context.Context, opts WWPNReservationOpts) (string, error)

	Calls []Call
}

func (m *MockClient) record(method string, args ...string) {
	m.Calls = append(m.Calls, Call{Method: method, Args: args})
}

// CallNames returns the method names of all recorded calls, in order.
func (m *MockClient) CallNames() []string {
	names := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		names = append(names, c.Method)
	}
	return names
}

// CountCalls returns how many times method was called.
func (m *MockClient) CountCalls(method string) int {
	n := 0
	for _, c := range m.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (m *MockClient) ListMoidsByName(ctx context.Context, kind ResourceKind, name string) ([]string, error) {
	m.record("ListMoidsByName", string(kind), name)
	if m.ListMoidsByNameFunc != nil {
		return m.ListMoidsByNameFunc(ctx, kind, name)
	}
	return []string{string(kind) + "/" + name}, nil
}

func (m *MockClient) CloneProfileFromTemplate(ctx context.Context, organizationMoid, templateMoid, name string) (string, error) {
	m.record("CloneProfileFromTemplate", organizationMoid, templateMoid, name)
	if m.CloneProfileFromTemplateFunc != nil {
		return m.CloneProfileFromTemplateFunc(ctx, organizationMoid, templateMoid, name)
	}
	return "profile-" + name, nil
}

func (m *MockClient) DetachProfileFromTemplate(ctx context.Context, profileMoid string) error {
	m.record("DetachProfileFromTemplate", profileMoid)
	if m.DetachProfileFromTemplateFunc != nil {
		return m.DetachProfileFromTemplateFunc(ctx, profileMoid)
	}
	return nil
}

func (m *MockClient) SetReservationReferences(ctx context.Context, profileMoid string, refs []ReservationReference) error {
	args := []string{profileMoid}
	for _, r := range refs {
		args = append(args, r.ConsumerName+"="+r.ReservationMoid)
	}
	m.record("SetReservationReferences", args...)
	if m.SetReservationReferencesFunc != nil {
		return m.SetReservationReferencesFunc(ctx, profileMoid, refs)
	}
	return nil
}

func (m *MockClient) MergeProfileWithTemplate(ctx context.Context, profileMoid, templateMoid string) error {
	m.record("MergeProfileWithTemplate", profileMoid, templateMoid)
	if m.MergeProfileWithTemplateFunc != nil {
		return m.MergeProfileWithTemplateFunc(ctx, profileMoid, templateMoid)
	}
	return nil
}

func (m *MockClient) AttachProfileToTemplate(ctx context.Context, profileMoid, templateMoid string) error {
	m.record("AttachProfileToTemplate", profileMoid, templateMoid)
	if m.AttachProfileToTemplateFunc != nil {
		return m.AttachProfileToTemplateFunc(ctx, profileMoid, templateMoid)
	}
	return nil
}

func (m *MockClient) GetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string) ([]MoRef, error) {
	m.record("GetSanConnectivityPolicyProfiles", policyMoid)
	if m.GetSanConnectivityPolicyProfilesFunc != nil {
		return m.GetSanConnectivityPolicyProfilesFunc(ctx, policyMoid)
	}
	return nil, nil
}

func (m *MockClient) SetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string, profiles []MoRef) error {
	args := []string{policyMoid}
	for _, p := range profiles {
		args = append(args, p.Moid)
	}
	m.record("SetSanConnectivityPolicyProfiles", args...)
	if m.SetSanConnectivityPolicyProfilesFunc != nil {
		return m.SetSanConnectivityPolicyProfilesFunc(ctx, policyMoid, profiles)
	}
	return nil
}

func (m *MockClient) CreateWWPNReservation(ctx context.Context, opts WWPNReservationOpts) (string, error) {
	m.record("CreateWWPNReservation", opts.OrganizationMoid, opts.PoolMoid, opts.WWPN)
	if m.CreateWWPNReservationFunc != nil {
		return m.CreateWWPNReservationFunc(ctx, opts)
	}
	return "reservation-" + opts.WWPN, nil
}
