package misc

import "time"

// Feature handles general-purpose Discord commands
type Feature struct {
	startedAt time.Time
}

// NewFeature creates a new misc feature instance
func NewFeature() *Feature {
	return &Feature{startedAt: time.Now()}
}
