package directory

import (
	"fmt"

	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
)

const phase = "directory"

// Resolver resolves the organization, SAN connectivity policy and server
// profile template named in the inventory and stores their moids in State.
type Resolver struct {
	resolvePools bool
}

// NewResolver creates a resolver for the shared objects only.
// Pools are looked up by the profile provisioner as each reservation is made.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewPlanResolver creates a resolver that also resolves every pool named in
// the inventory into State.PoolMoids. It is used by read-only runs.
func NewPlanResolver() *Resolver {
	return &Resolver{resolvePools: true}
}

// Name implements the provisioning.Phase interface.
func (r *Resolver) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (r *Resolver) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	orgMoid, err := Lookup(ctx, intersight.KindOrganization, cfg.Organization)
	if err != nil {
		return err
	}
	ctx.State.OrganizationMoid = orgMoid

	policyMoid, err := Lookup(ctx, intersight.KindSanConnectivityPolicy, cfg.SanConnectivityPolicy)
	if err != nil {
		return err
	}
	ctx.State.PolicyMoid = policyMoid

	templateMoid, err := Lookup(ctx, intersight.KindProfileTemplate, cfg.ServerProfileTemplate)
	if err != nil {
		return err
	}
	ctx.State.TemplateMoid = templateMoid

	if !r.resolvePools {
		return nil
	}
	for _, pool := range cfg.PoolNames() {
		moid, err := Lookup(ctx, intersight.KindFCPool, pool)
		if err != nil {
			return err
		}
		ctx.State.PoolMoids[pool] = moid
	}
	return nil
}

// Lookup returns the moid of the object of the given kind with the given name.
func Lookup(ctx *provisioning.Context, kind intersight.ResourceKind, name string) (string, error) {
	moids, err := ctx.Client.ListMoidsByName(ctx, kind, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s %q: %w", kind, name, err)
	}

	switch len(moids) {
	case 0:
		return "", &intersight.NotFoundError{Kind: kind, Name: name}
	case 1:
	default:
		provisioning.LogWarning(ctx.Observer, phase,
			fmt.Sprintf("%d objects of type %s named %q, using moid %s", len(moids), kind, name, moids[0]))
	}

	provisioning.LogResourceResolved(ctx.Observer, phase, kind.String(), name, moids[0])
	return moids[0], nil
}
