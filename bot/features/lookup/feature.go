package lookup

import (
	"killboard/albion"
)

// Feature handles player and guild lookup commands
type Feature struct {
	client *albion.Client
}

// NewFeature creates a new lookup feature instance
func NewFeature(client *albion.Client) *Feature {
	return &Feature{client: client}
}
