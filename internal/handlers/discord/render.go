package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
)

// Button custom ID prefixes, the game ID follows the colon
const (
	ButtonCallLiar = "liar:"
	ButtonMyDice   = "dice:"
)

// parseButtonID splits a custom ID into its prefix and game ID
func parseButtonID(customID string) (string, string, bool) {
	for _, prefix := range []string{ButtonCallLiar, ButtonMyDice} {
		if strings.HasPrefix(customID, prefix) {
			gameID := strings.TrimPrefix(customID, prefix)
			return prefix, gameID, gameID != ""
		}
	}
	return "", "", false
}

// turnButtons are attached to every message that leaves a bid open
func turnButtons(gameID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Call Liar",
			Style:    discordgo.DangerButton,
			CustomID: ButtonCallLiar + gameID,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🤥",
			},
		},
		discordgo.Button{
			Label:    "My Dice",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonMyDice + gameID,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		},
	}
}

// renderGameEmbed renders the public view of a game, dice stay hidden
func renderGameEmbed(g *models.Game, statusLine string) *discordgo.MessageEmbed {
	title := "Liar's Dice"
	color := colorGreen
	switch {
	case g.Status.IsFinished():
		title = "Liar's Dice: Game Over"
		color = colorGold
	case g.Status.IsCancelled():
		title = "Liar's Dice: Cancelled"
		color = colorGrey
	}

	next := 0
	if g.Status.IsInProgress() {
		next = game.NextBidderSlot(g.ActiveBidderSlot, g.PlayerCount)
	}

	var players strings.Builder
	for _, slot := range g.Slots {
		marker := ""
		if slot.Slot == next {
			marker = " ⬅️"
		}
		fmt.Fprintf(&players, "%d. <@%s>%s\n", slot.Slot, slot.UserID, marker)
	}

	bid := "No bids yet"
	if g.Turn > 0 {
		bid = messaging.FormatBid(g.CurrentBid.Face, g.CurrentBid.Total)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: statusLine,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Current Bid",
				Value:  bid,
				Inline: true,
			},
			{
				Name:   "Turn",
				Value:  fmt.Sprintf("%d", g.Turn),
				Inline: true,
			},
			{
				Name:   "Dice",
				Value:  fmt.Sprintf("%d per player, %d faces", g.DicePerPlayer, g.DieFaces),
				Inline: true,
			},
			{
				Name:   "Players",
				Value:  players.String(),
				Inline: false,
			},
		},
	}
}

// renderResolutionEmbed reveals every pool after a liar call
func renderResolutionEmbed(g *models.Game, summary string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(g.Slots))
	for _, slot := range g.Slots {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   slot.UserName,
			Value:  formatFaces(slot.Pool.Faces()),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Liar called!",
		Description: summary,
		Color:       colorGold,
		Fields:      fields,
	}
}

func formatFaces(faces []models.FaceCount) string {
	if len(faces) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(faces))
	for _, fc := range faces {
		parts = append(parts, fmt.Sprintf("%d × %d", fc.Count, fc.Face))
	}
	return strings.Join(parts, "\n")
}

// renderGamesEmbed lists a user's games
func renderGamesEmbed(games []*models.Game) *discordgo.MessageEmbed {
	if len(games) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Your Games",
			Description: "You're not in any games right now.",
			Color:       colorGrey,
		}
	}

	var sb strings.Builder
	for _, g := range games {
		where := "game " + g.ID
		if g.ChannelID != "" {
			where = "<#" + g.ChannelID + ">"
		}
		fmt.Fprintf(&sb, "%s: %d players, turn %d, %s\n", where, g.PlayerCount, g.Turn, g.Status)
	}

	return &discordgo.MessageEmbed{
		Title:       "Your Games",
		Description: sb.String(),
		Color:       colorGreen,
	}
}
