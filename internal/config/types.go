package config

// InventoryConfig describes the server profiles to provision and the shared
// Intersight objects they are built from.
type InventoryConfig struct {
	Organization          string           `json:"organization"`
	SanConnectivityPolicy string           `json:"san_connectivity_policy"`
	ServerProfileTemplate string           `json:"server_profile_template"`
	ServerProfiles        []ProfileRequest `json:"server_profiles"`
}

// ProfileRequest is a single server profile to clone from the template.
type ProfileRequest struct {
	Name         string               `json:"server_profile_name"`
	Reservations []ReservationRequest `json:"reservations"`
}

// ReservationRequest asks for one WWPN to be reserved in a pool for a vHBA.
//
// ReservationMoid is empty until the reservation has been created in
// Intersight. It is the only field mutated after the inventory is loaded.
type ReservationRequest struct {
	VHBAName        string `json:"vhba_name"`
	WWPN            string `json:"wwpn_to_reserve"`
	Pool            string `json:"wwpn_pool"`
	ReservationMoid string `json:"reservation_moid,omitempty"`
}

// ReservationCount returns the total number of reservations across all profiles.
func (c *InventoryConfig) ReservationCount() int {
	n := 0
	for _, p := range c.ServerProfiles {
		n += len(p.Reservations)
	}
	return n
}

// PoolNames returns the distinct pool names referenced by the inventory,
// in first-seen order.
func (c *InventoryConfig) PoolNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range c.ServerProfiles {
		for _, r := range p.Reservations {
			if seen[r.Pool] {
				continue
			}
			seen[r.Pool] = true
			names = append(names, r.Pool)
		}
	}
	return names
}
