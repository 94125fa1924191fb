package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommand struct {
	BaseCommand
	handled    []string
	components []string
}

func (c *recordingCommand) Handle(s Session, i *discordgo.InteractionCreate) error {
	c.handled = append(c.handled, i.ApplicationCommandData().Name)
	return nil
}

func (c *recordingCommand) HandleComponent(s Session, i *discordgo.InteractionCreate) (bool, error) {
	customID := i.MessageComponentData().CustomID
	if _, _, ok := parseButtonID(customID); !ok {
		return false, nil
	}
	c.components = append(c.components, customID)
	return true, nil
}

func TestNewSession_RequiresToken(t *testing.T) {
	_, err := NewSession("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestNew_Validation(t *testing.T) {
	session, err := NewSession("token")
	require.NoError(t, err)

	_, err = New(session, nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(nil, &Config{})
	assert.ErrorIs(t, err, ErrNilSession)
}

func TestBot_Dispatch(t *testing.T) {
	session, err := NewSession("token")
	require.NoError(t, err)

	cmd := &recordingCommand{BaseCommand: BaseCommand{Name: "liarsdice"}}
	bot, err := New(session, &Config{Commands: []CommandHandler{cmd}})
	require.NoError(t, err)

	fake := newFakeSession()

	bot.dispatch(fake, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "liarsdice"},
	}})
	bot.dispatch(fake, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "other"},
	}})
	assert.Equal(t, []string{"liarsdice"}, cmd.handled)

	bot.dispatch(fake, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: ButtonMyDice + "game-1"},
	}})
	assert.Equal(t, []string{ButtonMyDice + "game-1"}, cmd.components)
	assert.Nil(t, fake.lastResponse())

	bot.dispatch(fake, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "roll_dice"},
	}})
	resp := fake.lastResponse()
	require.NotNil(t, resp)
	assert.Equal(t, "Unknown button: roll_dice", resp.Data.Embeds[0].Description)
}

func TestParseButtonID(t *testing.T) {
	prefix, gameID, ok := parseButtonID("liar:game-1")
	assert.True(t, ok)
	assert.Equal(t, ButtonCallLiar, prefix)
	assert.Equal(t, "game-1", gameID)

	_, _, ok = parseButtonID("liar:")
	assert.False(t, ok)

	_, _, ok = parseButtonID("join_game")
	assert.False(t, ok)
}
