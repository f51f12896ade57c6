package profile

import (
	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
	"github.com/imamik/intersight-sp/internal/provisioning/directory"
)

// run holds the per-profile workflow state.
type run struct {
	ctx      *provisioning.Context
	req      *config.ProfileRequest
	state    *provisioning.ProfileState
	observer provisioning.Observer
}

func (r *run) clone() error {
	provisioning.LogResourceCreating(r.observer, phase, "server profile", r.req.Name)

	moid, err := r.ctx.Client.CloneProfileFromTemplate(r.ctx, r.ctx.State.OrganizationMoid, r.ctx.State.TemplateMoid, r.req.Name)
	if err != nil {
		return err
	}
	r.state.Moid = moid

	provisioning.LogResourceCreated(r.observer, phase, "server profile", r.req.Name, moid)
	return nil
}

func (r *run) detachTemplate() error {
	if err := r.ctx.Client.DetachProfileFromTemplate(r.ctx, r.state.Moid); err != nil {
		return err
	}
	provisioning.LogResourceUpdated(r.observer, phase, "server profile", r.state.Moid, "detached from template")
	return nil
}

// detachPolicy removes the profile from the policy's profile list.
// The list is written back even when it did not contain the profile.
func (r *run) detachPolicy() error {
	policyMoid := r.ctx.State.PolicyMoid

	current, err := r.ctx.Client.GetSanConnectivityPolicyProfiles(r.ctx, policyMoid)
	if err != nil {
		return err
	}

	kept := make([]intersight.MoRef, 0, len(current))
	for _, ref := range current {
		if ref.Moid != r.state.Moid {
			kept = append(kept, ref)
		}
	}

	if err := r.ctx.Client.SetSanConnectivityPolicyProfiles(r.ctx, policyMoid, kept); err != nil {
		return err
	}
	provisioning.LogResourceUpdated(r.observer, phase, "SAN connectivity policy", policyMoid, "detached from profile")
	return nil
}

func (r *run) reserveIdentifiers() error {
	for i := range r.req.Reservations {
		res := &r.req.Reservations[i]

		poolMoid, err := directory.Lookup(r.ctx, intersight.KindFCPool, res.Pool)
		if err != nil {
			return err
		}

		moid, err := r.ctx.Client.CreateWWPNReservation(r.ctx, intersight.WWPNReservationOpts{
			OrganizationMoid: r.ctx.State.OrganizationMoid,
			PoolMoid:         poolMoid,
			WWPN:             res.WWPN,
		})
		if err != nil {
			return err
		}
		res.ReservationMoid = moid

		provisioning.LogResourceCreated(r.observer, phase, "WWPN reservation", res.WWPN, moid)
	}
	return nil
}

func (r *run) associateReservations() error {
	refs := make([]intersight.ReservationReference, 0, len(r.req.Reservations))
	for _, res := range r.req.Reservations {
		refs = append(refs, intersight.NewVhbaReservationReference(res.ReservationMoid, res.VHBAName))
	}

	if err := r.ctx.Client.SetReservationReferences(r.ctx, r.state.Moid, refs); err != nil {
		return err
	}
	provisioning.LogResourceUpdated(r.observer, phase, "server profile", r.state.Moid, "reservations associated with vHBAs")
	return nil
}

// attachPolicy appends the profile to the policy's profile list if absent.
func (r *run) attachPolicy() error {
	policyMoid := r.ctx.State.PolicyMoid

	current, err := r.ctx.Client.GetSanConnectivityPolicyProfiles(r.ctx, policyMoid)
	if err != nil {
		return err
	}

	updated := append([]intersight.MoRef(nil), current...)
	if !containsMoid(updated, r.state.Moid) {
		updated = append(updated, intersight.NewMoRef(intersight.ObjectTypeProfile, r.state.Moid))
	}

	if err := r.ctx.Client.SetSanConnectivityPolicyProfiles(r.ctx, policyMoid, updated); err != nil {
		return err
	}
	provisioning.LogResourceUpdated(r.observer, phase, "SAN connectivity policy", policyMoid, "attached to profile")
	return nil
}

func (r *run) attachTemplate() error {
	templateMoid := r.ctx.State.TemplateMoid

	if err := r.ctx.Client.MergeProfileWithTemplate(r.ctx, r.state.Moid, templateMoid); err != nil {
		return err
	}
	if err := r.ctx.Client.AttachProfileToTemplate(r.ctx, r.state.Moid, templateMoid); err != nil {
		return err
	}
	provisioning.LogResourceUpdated(r.observer, phase, "server profile", r.state.Moid, "attached to template")
	return nil
}

func containsMoid(refs []intersight.MoRef, moid string) bool {
	for _, ref := range refs {
		if ref.Moid == moid {
			return true
		}
	}
	return false
}
