package profile

import (
	"errors"
	"fmt"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/provisioning"
)

const phase = "profiles"

// Step names, in execution order.
const (
	StepClone          = "clone"
	StepDetachTemplate = "detach-template"
	StepDetachPolicy   = "detach-policy"
	StepReserve        = "reserve-identifiers"
	StepAssociate      = "associate-reservations"
	StepAttachPolicy   = "attach-policy"
	StepAttachTemplate = "attach-template"
)

// Steps lists every step a profile goes through.
var Steps = []string{
	StepClone,
	StepDetachTemplate,
	StepDetachPolicy,
	StepReserve,
	StepAssociate,
	StepAttachPolicy,
	StepAttachTemplate,
}

// ErrUnresolved is returned when the directory moids are missing from State.
var ErrUnresolved = errors.New("organization, policy and template must be resolved before provisioning profiles")

// Provisioner runs the profile workflow for every profile in the inventory.
type Provisioner struct{}

// NewProvisioner creates a new profile provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if !ctx.State.Resolved() {
		return ErrUnresolved
	}

	profiles := ctx.Config.ServerProfiles
	for i := range profiles {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("provisioning interrupted before profile %q: %w", profiles[i].Name, err)
		}
		if err := p.ProvisionProfile(ctx, &profiles[i]); err != nil {
			return err
		}
		ctx.Observer.Progress(phase, i+1, len(profiles))
	}
	return nil
}

// ProvisionProfile runs all steps for a single profile request.
// Reservation moids are written back into req as reservations succeed.
func (p *Provisioner) ProvisionProfile(ctx *provisioning.Context, req *config.ProfileRequest) error {
	r := &run{
		ctx:      ctx,
		req:      req,
		state:    ctx.State.Profile(req.Name),
		observer: ctx.Observer.WithFields(map[string]string{"profile": req.Name}),
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{StepClone, r.clone},
		{StepDetachTemplate, r.detachTemplate},
		{StepDetachPolicy, r.detachPolicy},
		{StepReserve, r.reserveIdentifiers},
		{StepAssociate, r.associateReservations},
		{StepAttachPolicy, r.attachPolicy},
		{StepAttachTemplate, r.attachTemplate},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			r.state.Status = provisioning.StatusFailed
			r.state.FailedStep = step.name
			provisioning.LogResourceFailed(r.observer, phase, step.name, req.Name, err)
			return &StepError{Profile: req.Name, Step: step.name, Err: err}
		}
		r.state.Completed = append(r.state.Completed, step.name)
	}

	r.state.Status = provisioning.StatusProvisioned
	r.observer.Printf("Server profile %s provisioned (moid %s)", req.Name, r.state.Moid)
	return nil
}
