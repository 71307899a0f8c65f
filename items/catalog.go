// Package items maps common item names to the identifiers the market data
// API understands.
package items

import (
	"regexp"
	"sort"
	"strings"
)

// itemIDPattern matches raw in-game identifiers like T4_SWORD
var itemIDPattern = regexp.MustCompile(`^T[2-8]_`)

// Suggestion pairs a catalog name with its item identifier
type Suggestion struct {
	Name string
	ID   string
}

// Catalog resolves human item names to API identifiers
type Catalog struct {
	byName map[string]string
}

// NewCatalog returns a catalog preloaded with common items
func NewCatalog() *Catalog {
	return &Catalog{byName: defaultItems()}
}

// FindItemID resolves a search term to an item identifier. Names match
// case-insensitively, and terms that already look like raw identifiers
// pass through untouched. Returns "" when nothing matches.
func (c *Catalog) FindItemID(term string) string {
	if id, ok := c.byName[strings.ToLower(term)]; ok {
		return id
	}
	if itemIDPattern.MatchString(term) {
		return term
	}
	return ""
}

// Suggestions returns up to ten catalog entries whose name contains the
// search term, sorted by name.
func (c *Catalog) Suggestions(term string) []Suggestion {
	lower := strings.ToLower(term)
	var matches []Suggestion
	for name, id := range c.byName {
		if strings.Contains(name, lower) {
			matches = append(matches, Suggestion{Name: name, ID: id})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches
}

func defaultItems() map[string]string {
	return map[string]string{
		// Resources, wood and planks
		"chestnut planks":  "T3_PLANKS_LEVEL1@1",
		"pine planks":      "T4_PLANKS_LEVEL1@1",
		"cedar planks":     "T5_PLANKS_LEVEL1@1",
		"bloodoak planks":  "T6_PLANKS_LEVEL1@1",
		"ashenbark planks": "T7_PLANKS_LEVEL1@1",
		"elderwood planks": "T8_PLANKS_LEVEL1@1",
		"rough logs":       "T2_WOOD",
		"birch logs":       "T3_WOOD",
		"chestnut logs":    "T4_WOOD",
		"pine logs":        "T5_WOOD",
		"cedar logs":       "T6_WOOD",
		"bloodoak logs":    "T7_WOOD",
		"ashenbark logs":   "T8_WOOD",

		// Resources, stone
		"rough stone": "T2_ROCK",
		"limestone":   "T3_ROCK",
		"sandstone":   "T4_ROCK",
		"travertine":  "T5_ROCK",
		"granite":     "T6_ROCK",
		"slate":       "T7_ROCK",
		"basalt":      "T8_ROCK",

		// Resources, hide
		"raw hide":       "T2_HIDE",
		"scrapped hide":  "T3_HIDE",
		"rugged hide":    "T4_HIDE",
		"thick hide":     "T5_HIDE",
		"resilient hide": "T6_HIDE",
		"robust hide":    "T7_HIDE",
		"superior hide":  "T8_HIDE",

		// Weapons
		"novice sword":      "T3_SWORD",
		"adept sword":       "T4_SWORD",
		"expert sword":      "T5_SWORD",
		"master sword":      "T6_SWORD",
		"grandmaster sword": "T7_SWORD",
		"elder sword":       "T8_SWORD",
		"broadsword":        "T4_SWORD",
		"claymore":          "T4_2H_CLAYMORE",
		"dual swords":       "T4_2H_DUALSWORD",
		"battle axe":        "T4_AXE",
		"greataxe":          "T4_2H_AXE",
		"halberd":           "T4_2H_HALBERD",
		"war hammer":        "T4_HAMMER",
		"great hammer":      "T4_2H_HAMMER",
		"polehammer":        "T4_2H_POLEHAMMER",
		"bow":               "T4_BOW",
		"warbow":            "T4_BOW_LONGBOW",
		"crossbow":          "T4_CROSSBOW",
		"heavy crossbow":    "T4_CROSSBOW_CANNON",

		// Armor
		"scholar cowl":     "T4_HEAD_CLOTH_SET1",
		"scholar robe":     "T4_ARMOR_CLOTH_SET1",
		"scholar sandals":  "T4_SHOES_CLOTH_SET1",
		"mercenary hood":   "T4_HEAD_LEATHER_SET1",
		"mercenary jacket": "T4_ARMOR_LEATHER_SET1",
		"mercenary shoes":  "T4_SHOES_LEATHER_SET1",
		"soldier helmet":   "T4_HEAD_PLATE_SET1",
		"soldier armor":    "T4_ARMOR_PLATE_SET1",
		"soldier boots":    "T4_SHOES_PLATE_SET1",

		// Consumables
		"minor healing potion": "T3_POTION_HEAL",
		"healing potion":       "T4_POTION_HEAL",
		"major healing potion": "T5_POTION_HEAL",
		"pork pie":             "T3_MEAL",
		"goose pie":            "T4_MEAL",
		"pork omelette":        "T5_MEAL",

		// Mounts
		"riding horse":    "T3_MOUNT_HORSE",
		"armored horse":   "T4_MOUNT_HORSE",
		"heavy war horse": "T5_MOUNT_HORSE",
		"ox":              "T4_MOUNT_OX",
		"giant stag":      "T5_MOUNT_STAG",

		"premium": "PREMIUM",
	}
}
