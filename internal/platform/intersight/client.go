// Package intersight provides a client for the Cisco Intersight REST API.
package intersight

import (
	"context"
)

// Object types used in relationship references and bulk requests.
const (
	ObjectTypeOrganization         = "organization.Organization"
	ObjectTypeProfile              = "server.Profile"
	ObjectTypeProfileTemplate      = "server.ProfileTemplate"
	ObjectTypeFCPool               = "fcpool.Pool"
	ObjectTypeReservationReference = "fcpool.ReservationReference"
)

// ConsumerTypeVhba is the consumer type of a WWPN reservation bound to a vHBA.
const ConsumerTypeVhba = "Vhba"

// MoRef is a relationship reference to a managed object.
type MoRef struct {
	ClassID    string `json:"ClassId,omitempty"`
	ObjectType string `json:"ObjectType"`
	Moid       string `json:"Moid"`
}

// NewMoRef returns a reference to the object of the given type and moid.
func NewMoRef(objectType, moid string) MoRef {
	return MoRef{ClassID: "mo.MoRef", ObjectType: objectType, Moid: moid}
}

// ReservationReference binds a pool reservation to a profile consumer.
type ReservationReference struct {
	ClassID         string `json:"ClassId"`
	ObjectType      string `json:"ObjectType"`
	ReservationMoid string `json:"ReservationMoid"`
	ConsumerType    string `json:"ConsumerType"`
	ConsumerName    string `json:"ConsumerName"`
}

// NewVhbaReservationReference returns a reference consuming a reservation on a vHBA.
func NewVhbaReservationReference(reservationMoid, vhbaName string) ReservationReference {
	return ReservationReference{
		ClassID:         ObjectTypeReservationReference,
		ObjectType:      ObjectTypeReservationReference,
		ReservationMoid: reservationMoid,
		ConsumerType:    ConsumerTypeVhba,
		ConsumerName:    vhbaName,
	}
}

// WWPNReservationOpts holds the parameters of a WWPN reservation.
type WWPNReservationOpts struct {
	OrganizationMoid string
	PoolMoid         string
	WWPN             string
}

// DirectoryReader looks up managed objects by name.
type DirectoryReader interface {
	// ListMoidsByName returns the moids of all objects of the given kind whose
	// Name equals name, in the order the API returned them.
	ListMoidsByName(ctx context.Context, kind ResourceKind, name string) ([]string, error)
}

// ProfileManager defines the server profile operations.
type ProfileManager interface {
	// CloneProfileFromTemplate creates a new profile from a template and returns its moid.
	CloneProfileFromTemplate(ctx context.Context, organizationMoid, templateMoid, name string) (string, error)
	// DetachProfileFromTemplate clears the template link of a profile.
	DetachProfileFromTemplate(ctx context.Context, profileMoid string) error
	// SetReservationReferences replaces the reservation references of a profile.
	SetReservationReferences(ctx context.Context, profileMoid string, refs []ReservationReference) error
	// MergeProfileWithTemplate merges a template into an existing profile.
	MergeProfileWithTemplate(ctx context.Context, profileMoid, templateMoid string) error
	// AttachProfileToTemplate sets the template link of a profile.
	AttachProfileToTemplate(ctx context.Context, profileMoid, templateMoid string) error
}

// PolicyManager defines the SAN connectivity policy operations.
type PolicyManager interface {
	// GetSanConnectivityPolicyProfiles returns the profiles a policy is attached to.
	GetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string) ([]MoRef, error)
	// SetSanConnectivityPolicyProfiles replaces the profiles a policy is attached to.
	SetSanConnectivityPolicyProfiles(ctx context.Context, policyMoid string, profiles []MoRef) error
}

// PoolManager defines the identifier pool operations.
type PoolManager interface {
	// CreateWWPNReservation reserves a WWPN in a pool and returns the reservation moid.
	CreateWWPNReservation(ctx context.Context, opts WWPNReservationOpts) (string, error)
}

// Manager combines all Intersight interfaces used by the provisioner.
type Manager interface {
	DirectoryReader
	ProfileManager
	PolicyManager
	PoolManager
}
