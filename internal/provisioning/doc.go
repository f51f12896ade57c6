// Package provisioning provides shared types, interfaces, and orchestration
// for server profile provisioning.
//
// # Subpackages
//
//   - directory/: name to moid resolution for organization, policy, template and pools
//   - profile/: the per-profile clone, detach, reserve and re-attach workflow
//
// # Core Types
//
// Context carries the inventory, run state, Intersight client and observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// ValidationPhase checks the inventory as a whole before anything is asked or changed.
// State accumulates results from each phase (resolved moids, per-profile outcome).
package provisioning
