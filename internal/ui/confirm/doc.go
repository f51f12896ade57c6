// Package confirm renders the provisioning plan and asks the operator to
// approve it.
//
// Approval is asked once for the global parameters and then once per
// server profile, all before the first remote call. Any answer other than
// yes ends the run with ErrDeclined.
package confirm
