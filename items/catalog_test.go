package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_FindItemID(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, "T4_2H_CLAYMORE", catalog.FindItemID("claymore"))
	assert.Equal(t, "T4_2H_CLAYMORE", catalog.FindItemID("Claymore"))
	assert.Equal(t, "T4_SWORD", catalog.FindItemID("T4_SWORD"), "raw identifiers pass through")
	assert.Equal(t, "", catalog.FindItemID("lightsaber"))
	assert.Equal(t, "", catalog.FindItemID("T9_SWORD"), "tiers above 8 do not exist")
}

func TestCatalog_Suggestions(t *testing.T) {
	catalog := NewCatalog()

	suggestions := catalog.Suggestions("planks")
	assert.Len(t, suggestions, 6)
	assert.Equal(t, "ashenbark planks", suggestions[0].Name)

	assert.Empty(t, catalog.Suggestions("lightsaber"))

	// Broad terms are capped at ten entries
	assert.Len(t, catalog.Suggestions("o"), 10)
}
