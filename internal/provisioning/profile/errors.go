package profile

import "fmt"

// StepError reports which step of which profile failed.
type StepError struct {
	Profile string
	Step    string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("profile %q: step %s: %v", e.Profile, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
