// Package report writes the outcome of a provisioning run as YAML.
package report

import (
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/provisioning"
)

// Report is the document written after a run.
type Report struct {
	RunID                 string          `json:"run_id"`
	FinishedAt            time.Time       `json:"finished_at"`
	Endpoint              string          `json:"endpoint,omitempty"`
	Succeeded             bool            `json:"succeeded"`
	Error                 string          `json:"error,omitempty"`
	Organization          Object          `json:"organization"`
	SanConnectivityPolicy Object          `json:"san_connectivity_policy"`
	ServerProfileTemplate Object          `json:"server_profile_template"`
	ServerProfiles        []ProfileResult `json:"server_profiles"`
}

// Object is a named Intersight object and its moid, if resolved.
type Object struct {
	Name string `json:"name"`
	Moid string `json:"moid,omitempty"`
}

// ProfileResult is the outcome of one server profile.
type ProfileResult struct {
	Name         string                      `json:"server_profile_name"`
	Moid         string                      `json:"moid,omitempty"`
	Status       provisioning.ProfileStatus  `json:"status"`
	FailedStep   string                      `json:"failed_step,omitempty"`
	Completed    []string                    `json:"completed_steps,omitempty"`
	Reservations []config.ReservationRequest `json:"reservations"`
}

// Meta identifies the run a report belongs to.
type Meta struct {
	RunID    string
	Endpoint string
	Now      func() time.Time
}

// Build assembles a report from the inventory, with reservation moids as
// filled in during the run, and the run state. runErr is the error that
// ended the run, if any.
func Build(meta Meta, cfg *config.InventoryConfig, state *provisioning.State, runErr error) *Report {
	now := time.Now
	if meta.Now != nil {
		now = meta.Now
	}
	if state == nil {
		state = provisioning.NewState()
	}

	r := &Report{
		RunID:                 meta.RunID,
		FinishedAt:            now().UTC(),
		Endpoint:              meta.Endpoint,
		Succeeded:             runErr == nil,
		Organization:          Object{Name: cfg.Organization, Moid: state.OrganizationMoid},
		SanConnectivityPolicy: Object{Name: cfg.SanConnectivityPolicy, Moid: state.PolicyMoid},
		ServerProfileTemplate: Object{Name: cfg.ServerProfileTemplate, Moid: state.TemplateMoid},
		ServerProfiles:        make([]ProfileResult, 0, len(cfg.ServerProfiles)),
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}

	for _, p := range cfg.ServerProfiles {
		result := ProfileResult{
			Name:         p.Name,
			Status:       provisioning.StatusPending,
			Reservations: p.Reservations,
		}
		if result.Reservations == nil {
			result.Reservations = []config.ReservationRequest{}
		}
		if st := findProfile(state, p.Name); st != nil {
			result.Moid = st.Moid
			result.Status = st.Status
			result.FailedStep = st.FailedStep
			result.Completed = st.Completed
		}
		r.ServerProfiles = append(r.ServerProfiles, result)
	}
	return r
}

// Marshal encodes the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// Write encodes the report and writes it to path.
func (r *Report) Write(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func findProfile(state *provisioning.State, name string) *provisioning.ProfileState {
	for _, p := range state.Profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}
