package testutil

import (
	"time"

	"killboard/models"
)

// CreateTestKillEvent creates a kill event row with default values
func CreateTestKillEvent(eventID int64, involvedMember string, isKill bool) *models.KillEvent {
	return &models.KillEvent{
		EventID:        eventID,
		KillerName:     "Killer",
		KillerID:       "K1",
		VictimName:     "Victim",
		VictimID:       "V1",
		Fame:           12345,
		EventTime:      time.Now().UTC().Truncate(time.Second),
		InvolvedMember: involvedMember,
		IsKill:         isKill,
	}
}

// CreateTestTrackedEntity creates a tracker with default values
func CreateTestTrackedEntity(guildID int64, entityID, name string) *models.TrackedEntity {
	return &models.TrackedEntity{
		GuildID:    guildID,
		EntityID:   entityID,
		EntityName: name,
		EntityType: models.EntityTypePlayer,
	}
}

// CreateTestBuild creates a build with default values
func CreateTestBuild(guildID int64, name string, creatorID int64) *models.Build {
	return &models.Build{
		GuildID:     guildID,
		BuildName:   name,
		CreatorID:   creatorID,
		Weapon:      "T4_2H_CLAYMORE",
		Helmet:      "T4_HEAD_PLATE_SET1",
		Armor:       "T4_ARMOR_PLATE_SET1",
		Shoes:       "T4_SHOES_PLATE_SET1",
		Spells:      []string{"Charge", "Mighty Swing"},
		Description: "Test loadout",
	}
}
