package market

import (
	"killboard/albion"
	"killboard/items"
)

// Feature handles market price and item commands
type Feature struct {
	client  *albion.Client
	catalog *items.Catalog
}

// NewFeature creates a new market feature instance
func NewFeature(client *albion.Client, catalog *items.Catalog) *Feature {
	return &Feature{
		client:  client,
		catalog: catalog,
	}
}
