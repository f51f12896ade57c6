package provisioning

import (
	"context"

	"go.uber.org/zap"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
)

// ProfileStatus is the outcome of a single profile in a run.
type ProfileStatus string

// Profile outcomes.
const (
	StatusPending     ProfileStatus = "pending"
	StatusProvisioned ProfileStatus = "provisioned"
	StatusFailed      ProfileStatus = "failed"
)

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Directory results (populated by the directory resolver)
	OrganizationMoid string
	PolicyMoid       string
	TemplateMoid     string
	PoolMoids        map[string]string // pool name -> moid, filled by plan only

	// Profile results (populated by the profile provisioner), in config order
	Profiles []*ProfileState
}

// ProfileState tracks how far one profile got.
type ProfileState struct {
	Name       string
	Moid       string // empty until the clone succeeded
	Status     ProfileStatus
	Completed  []string // step names, in execution order
	FailedStep string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		PoolMoids: make(map[string]string),
	}
}

// Profile returns the state of the named profile, creating it as pending
// on first use.
func (s *State) Profile(name string) *ProfileState {
	for _, p := range s.Profiles {
		if p.Name == name {
			return p
		}
	}
	p := &ProfileState{Name: name, Status: StatusPending}
	s.Profiles = append(s.Profiles, p)
	return p
}

// Resolved reports whether the organization, policy and template moids are known.
func (s *State) Resolved() bool {
	return s.OrganizationMoid != "" && s.PolicyMoid != "" && s.TemplateMoid != ""
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.InventoryConfig
	State    *State
	Client   intersight.Manager
	Observer Observer
}

// NewContext creates a new provisioning context.
// A nil observer discards all output.
func NewContext(
	ctx context.Context,
	cfg *config.InventoryConfig,
	client intersight.Manager,
	observer Observer,
) *Context {
	if observer == nil {
		observer = NewLogObserver(zap.NewNop())
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Client:   client,
		Observer: observer,
	}
}
