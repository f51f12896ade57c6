package intersight

import (
	"context"
	"fmt"
	"net/http"
)

// fcpoolReservation is the create body of fcpool.Reservation.
type fcpoolReservation struct {
	AllocationType string `json:"AllocationType"`
	IDPurpose      string `json:"IdPurpose"`
	Identity       string `json:"Identity"`
	Pool           MoRef  `json:"Pool"`
	Organization   MoRef  `json:"Organization"`
}

// CreateWWPNReservation implements PoolManager.
func (c *RealClient) CreateWWPNReservation(ctx context.Context, opts WWPNReservationOpts) (string, error) {
	body := fcpoolReservation{
		AllocationType: "dynamic",
		IDPurpose:      "WWPN",
		Identity:       opts.WWPN,
		Pool:           NewMoRef(ObjectTypeFCPool, opts.PoolMoid),
		Organization:   NewMoRef(ObjectTypeOrganization, opts.OrganizationMoid),
	}

	var created struct {
		Moid string `json:"Moid"`
	}
	if err := c.do(ctx, apiRequest{Method: http.MethodPost, Resource: resourceReservations, Body: body}, &created); err != nil {
		return "", fmt.Errorf("failed to reserve WWPN %s: %w", opts.WWPN, err)
	}
	if created.Moid == "" {
		return "", fmt.Errorf("failed to reserve WWPN %s: response has no moid", opts.WWPN)
	}
	return created.Moid, nil
}
