package intersight

// ResourceKind is the API path of a managed object collection, relative to
// the API base URL.
type ResourceKind string

// Collections read by name lookups.
const (
	KindOrganization          ResourceKind = "organization/Organizations"
	KindProfileTemplate       ResourceKind = "server/ProfileTemplates"
	KindSanConnectivityPolicy ResourceKind = "vnic/SanConnectivityPolicies"
	KindFCPool                ResourceKind = "fcpool/Pools"
)

// Collections that are only written to.
const (
	resourceProfiles     = "server/Profiles"
	resourceReservations = "fcpool/Reservations"
	resourceMoCloners    = "bulk/MoCloners"
	resourceMoMergers    = "bulk/MoMergers"
)

var kindNames = map[ResourceKind]string{
	KindOrganization:          "organization",
	KindProfileTemplate:       "server profile template",
	KindSanConnectivityPolicy: "SAN connectivity policy",
	KindFCPool:                "WWPN pool",
}

// String returns a human readable name for the kind.
func (k ResourceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return string(k)
}
