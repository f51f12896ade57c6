package config

import (
	"fmt"
	"regexp"
	"strings"
)

// wwpnPattern matches eight colon separated hex octets, e.g. 20:00:00:25:B5:AA:00:01.
var wwpnPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){7}[0-9A-Fa-f]{2}$`)

// Validate checks the inventory for common errors and returns a detailed error if validation fails.
func (c *InventoryConfig) Validate() error {
	// Required fields
	if strings.TrimSpace(c.Organization) == "" {
		return fmt.Errorf("organization is required")
	}
	if strings.TrimSpace(c.SanConnectivityPolicy) == "" {
		return fmt.Errorf("san_connectivity_policy is required")
	}
	if strings.TrimSpace(c.ServerProfileTemplate) == "" {
		return fmt.Errorf("server_profile_template is required")
	}
	if len(c.ServerProfiles) == 0 {
		return fmt.Errorf("server_profiles must contain at least one profile")
	}

	names := make(map[string]bool, len(c.ServerProfiles))
	for i, p := range c.ServerProfiles {
		if err := p.validate(); err != nil {
			return fmt.Errorf("server_profiles[%d]: %w", i, err)
		}
		if names[p.Name] {
			return fmt.Errorf("server_profiles[%d]: duplicate server_profile_name %q", i, p.Name)
		}
		names[p.Name] = true
	}

	return nil
}

// validate checks a single profile request.
func (p ProfileRequest) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("server_profile_name is required")
	}

	vhbas := make(map[string]bool, len(p.Reservations))
	for j, r := range p.Reservations {
		if err := r.validate(); err != nil {
			return fmt.Errorf("reservations[%d]: %w", j, err)
		}
		if vhbas[r.VHBAName] {
			return fmt.Errorf("reservations[%d]: duplicate vhba_name %q", j, r.VHBAName)
		}
		vhbas[r.VHBAName] = true
	}
	return nil
}

// validate checks a single reservation request.
func (r ReservationRequest) validate() error {
	if strings.TrimSpace(r.VHBAName) == "" {
		return fmt.Errorf("vhba_name is required")
	}
	if strings.TrimSpace(r.Pool) == "" {
		return fmt.Errorf("wwpn_pool is required")
	}
	if !wwpnPattern.MatchString(r.WWPN) {
		return fmt.Errorf("invalid wwpn_to_reserve %q: expected format xx:xx:xx:xx:xx:xx:xx:xx", r.WWPN)
	}
	if r.ReservationMoid != "" {
		return fmt.Errorf("reservation_moid must not be set in the inventory (got %q)", r.ReservationMoid)
	}
	return nil
}
