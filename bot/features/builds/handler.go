package builds

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"killboard/bot/common"
	"killboard/models"
	"killboard/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleBuild handles the /build command
func (f *Feature) HandleBuild(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer build response: %v", err)
		return
	}
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error fetching build data")
		return
	}

	build, err := f.buildService.GetBuild(ctx, guildID, name)
	if err != nil {
		log.Errorf("Failed to fetch build: %v", err)
		common.EditWithMessage(s, i, "Error fetching build data")
		return
	}
	if build == nil {
		common.EditWithMessage(s, i, fmt.Sprintf("Build %q not found", name))
		return
	}

	common.EditWithEmbed(s, i, buildDetailEmbed(s, build))
}

// HandleNewBuild handles the /new-build command
func (f *Feature) HandleNewBuild(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Acknowledge before the role check; it hits the database and the
	// Discord API, and the interaction ack window is short.
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer new-build response: %v", err)
		return
	}
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Failed to process command")
		return
	}
	if !f.canManageBuilds(ctx, s, i, guildID) {
		common.EditWithMessage(s, i, "You need the builder role to manage builds")
		return
	}

	creatorID, _ := strconv.ParseInt(i.Member.User.ID, 10, 64)
	build := &models.Build{
		GuildID:   guildID,
		CreatorID: creatorID,
	}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			build.BuildName = opt.StringValue()
		case "weapon":
			build.Weapon = opt.StringValue()
		case "helmet":
			build.Helmet = opt.StringValue()
		case "armor":
			build.Armor = opt.StringValue()
		case "shoes":
			build.Shoes = opt.StringValue()
		case "description":
			build.Description = opt.StringValue()
		}
	}

	if err := f.buildService.CreateBuild(ctx, build); err != nil {
		if errors.Is(err, service.ErrBuildExists) {
			common.EditWithMessage(s, i, fmt.Sprintf("Build %q already exists", build.BuildName))
			return
		}
		log.Errorf("Failed to create build: %v", err)
		common.EditWithMessage(s, i, "Error creating build")
		return
	}

	common.EditWithEmbed(s, i, buildCreatedEmbed(build, i.Member.User.Username))
}

// HandleRemoveBuild handles the /remove-build command
func (f *Feature) HandleRemoveBuild(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer remove-build response: %v", err)
		return
	}
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Failed to process command")
		return
	}
	if !f.canManageBuilds(ctx, s, i, guildID) {
		common.EditWithMessage(s, i, "You need the builder role to manage builds")
		return
	}

	creatorID, _ := strconv.ParseInt(i.Member.User.ID, 10, 64)
	removed, err := f.buildService.RemoveBuild(ctx, guildID, name, creatorID)
	if err != nil {
		log.Errorf("Failed to remove build: %v", err)
		common.EditWithMessage(s, i, "Error removing build")
		return
	}
	if !removed {
		common.EditWithMessage(s, i, fmt.Sprintf("Build %q not found or you don't have permission to delete it", name))
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Build Removed",
		Description: fmt.Sprintf("Build %q has been deleted", name),
		Color:       common.ColorSuccess,
	})
}

// HandleRandomator handles the /randomator command
func (f *Feature) HandleRandomator(s *discordgo.Session, i *discordgo.InteractionCreate) {
	weaponTypes := []string{
		"SWORD", "AXE", "HAMMER", "SPEAR", "BOW", "CROSSBOW", "FIRESTAFF",
		"FROSTSTAFF", "HOLYSTAFF", "ARCANESTAFF", "CURSESTAFF", "NATURESTAFF", "DAGGER",
	}
	tiers := []string{"T4", "T5", "T6", "T7", "T8"}
	enchantments := []string{"", "@1", "@2", "@3"}

	weaponType := weaponTypes[rand.Intn(len(weaponTypes))]
	tier := tiers[rand.Intn(len(tiers))]
	weaponID := tier + "_" + weaponType + enchantments[rand.Intn(len(enchantments))]

	embed := &discordgo.MessageEmbed{
		Title: "🎲 Random Build Generator",
		Color: common.ColorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Weapon", Value: weaponID, Inline: true},
			{Name: "Type", Value: weaponType, Inline: true},
			{Name: "Tier", Value: tier, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Use /new-build to save this as a custom build!"},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send randomator response: %v", err)
	}
}

// canManageBuilds enforces the builder role when one is configured.
// Without a configured role anyone may manage builds.
func (f *Feature) canManageBuilds(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64) bool {
	settings, err := f.settingsService.GetSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to load settings for builder role check: %v", err)
		return false
	}
	if settings.BuilderRoleID == nil {
		return true
	}
	roleID := strconv.FormatInt(*settings.BuilderRoleID, 10)
	return common.HasRole(s, i.GuildID, i.Member.User.ID, roleID)
}
