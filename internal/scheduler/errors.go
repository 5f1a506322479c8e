package scheduler

import "fmt"

// ValidationError reports missing required inputs or an empty derived plan.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError reports contradictory or unusable availability
// configuration, such as a sleep window leaving no valid daily hour.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// AvailabilityError reports that fewer sessions could be placed than the
// plan requires. The engine never commits a partial schedule.
type AvailabilityError struct {
	Required int
	Found    int
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("insufficient availability: found %d placeable sessions, required %d", e.Found, e.Required)
}
