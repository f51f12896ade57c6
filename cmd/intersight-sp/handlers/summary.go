package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

// renderSummary prints the outcome of every profile, including the moids
// created so far, so a failed run can be followed up by hand.
func renderSummary(w io.Writer, cfg *config.InventoryConfig, state *provisioning.State, runErr error) {
	t := confirm.NewTable("Server profile", "Status", "Moid", "Reservations", "Failed step")
	for _, p := range cfg.ServerProfiles {
		status := provisioning.StatusPending
		moid, failedStep := "", ""
		for _, st := range state.Profiles {
			if st.Name == p.Name {
				status, moid, failedStep = st.Status, st.Moid, st.FailedStep
			}
		}
		t.Row(p.Name, styleStatus(status), moid, reservationMoids(p), failedStep)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Render())
	if runErr != nil {
		fmt.Fprintln(w, confirm.FailedStyle.Render("Run stopped: "+runErr.Error()))
		fmt.Fprintln(w, confirm.DimStyle.Render("Objects created before the failure were left in place."))
		renderCredentialHint(w, runErr)
		return
	}
	fmt.Fprintln(w, confirm.ReadyStyle.Render(fmt.Sprintf("%d server profiles provisioned", len(cfg.ServerProfiles))))
}

// renderResolved prints the moids found by a plan run.
func renderResolved(w io.Writer, cfg *config.InventoryConfig, state *provisioning.State) {
	t := confirm.NewTable("Object", "Name", "Moid").
		Row("Organization", cfg.Organization, state.OrganizationMoid).
		Row("SAN connectivity policy", cfg.SanConnectivityPolicy, state.PolicyMoid).
		Row("Server profile template", cfg.ServerProfileTemplate, state.TemplateMoid)
	for _, pool := range cfg.PoolNames() {
		t.Row("WWPN pool", pool, state.PoolMoids[pool])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, confirm.ReadyStyle.Render("All names resolved. No changes were made."))
}

// renderCredentialHint points at the API key when Intersight rejected it.
func renderCredentialHint(w io.Writer, err error) {
	if !intersight.IsUnauthorized(err) {
		return
	}
	fmt.Fprintln(w, confirm.DimStyle.Render("Intersight rejected the request signature. Check the API key ID (INTERSIGHT_KEY_ID) and that the secret key file belongs to it."))
}

func styleStatus(s provisioning.ProfileStatus) string {
	switch s {
	case provisioning.StatusProvisioned:
		return confirm.ReadyStyle.Render(string(s))
	case provisioning.StatusFailed:
		return confirm.FailedStyle.Render(string(s))
	default:
		return confirm.DimStyle.Render(string(s))
	}
}

func reservationMoids(p config.ProfileRequest) string {
	var parts []string
	for _, r := range p.Reservations {
		if r.ReservationMoid != "" {
			parts = append(parts, r.VHBAName+"="+r.ReservationMoid)
		}
	}
	return strings.Join(parts, " ")
}
