// Package profile provisions server profiles from a template.
//
// Each profile in the inventory goes through the same linear workflow:
//
//  1. clone the template into a new profile
//  2. detach the profile from the template
//  3. remove the profile from the SAN connectivity policy
//  4. reserve every requested WWPN in its pool
//  5. reference the reservations from the profile's vHBAs
//  6. add the profile back to the SAN connectivity policy
//  7. merge the template into the profile and attach it again
//
// Profiles are handled one after another in inventory order. The first
// failure stops the run and is returned as a *StepError. Nothing that was
// already created is cleaned up.
//
// Steps 3 and 6 read the policy's profile list, change it locally and write
// it back. Concurrent runs against the same policy can lose updates.
package profile
