package provisioning

import (
	"fmt"
	"regexp"
	"strings"
)

// profileNamePattern is the name format Intersight accepts for server profiles.
var profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]{1,64}$`)

// ValidationError represents an inventory validation error or warning.
type ValidationError struct {
	Field    string // Inventory field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// ValidationPhase implements the Phase interface for pre-flight checks that
// need the whole inventory. It makes no remote calls.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	var errs []string
	for _, ve := range validate(ctx) {
		if ve.IsError() {
			errs = append(errs, ve.Error())
			continue
		}
		LogWarning(ctx.Observer, vp.Name(), ve.Field+": "+ve.Message)
	}

	if len(errs) > 0 {
		return fmt.Errorf("inventory validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validate runs all validation checks and returns any errors or warnings.
func validate(ctx *Context) []ValidationError {
	var errs []ValidationError
	// first field that requested each WWPN, keyed case-insensitively
	wwpns := make(map[string]string)

	for i, p := range ctx.Config.ServerProfiles {
		field := fmt.Sprintf("server_profiles[%d]", i)

		if !profileNamePattern.MatchString(p.Name) {
			errs = append(errs, ValidationError{
				Field:    field + ".server_profile_name",
				Message:  fmt.Sprintf("%q must be 1-64 characters of letters, digits, '_', '.', ':' or '-'", p.Name),
				Severity: "error",
			})
		}

		if len(p.Reservations) == 0 {
			errs = append(errs, ValidationError{
				Field:    field,
				Message:  fmt.Sprintf("profile %s has no reservations, its vHBAs keep their pool defaults", p.Name),
				Severity: "warning",
			})
		}

		pools := make(map[string]string)
		for j, r := range p.Reservations {
			rfield := fmt.Sprintf("%s.reservations[%d]", field, j)

			key := strings.ToUpper(r.WWPN)
			if first, ok := wwpns[key]; ok {
				errs = append(errs, ValidationError{
					Field:    rfield + ".wwpn_to_reserve",
					Message:  fmt.Sprintf("WWPN %s is already requested by %s", r.WWPN, first),
					Severity: "error",
				})
			} else {
				wwpns[key] = rfield
			}

			if other, ok := pools[r.Pool]; ok {
				errs = append(errs, ValidationError{
					Field:    rfield + ".wwpn_pool",
					Message:  fmt.Sprintf("vHBAs %s and %s share pool %s", other, r.VHBAName, r.Pool),
					Severity: "warning",
				})
			} else {
				pools[r.Pool] = r.VHBAName
			}
		}
	}

	return errs
}
