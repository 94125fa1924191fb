package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
)

const maxOpponents = 5

// CommandConfig holds the dependencies of the /liarsdice command
type CommandConfig struct {
	GameService      game.Service
	UserService      user.Service
	ScoreService     score.Service
	MessagingService messaging.Service

	// Defaults for options left out of /liarsdice new
	DefaultDicePerPlayer int
	DefaultDieFaces      int
	DefaultWildFace      int
}

// LiarsDiceCommand handles the /liarsdice command and its buttons
type LiarsDiceCommand struct {
	BaseCommand
	gameService      game.Service
	userService      user.Service
	scoreService     score.Service
	messagingService messaging.Service

	defaultDicePerPlayer int
	defaultDieFaces      int
	defaultWildFace      int
}

// NewLiarsDiceCommand creates a new liarsdice command handler
func NewLiarsDiceCommand(cfg *CommandConfig) (*LiarsDiceCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.UserService == nil {
		return nil, ErrNilUserService
	}

	if cfg.ScoreService == nil {
		return nil, ErrNilScoreService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	c := &LiarsDiceCommand{
		BaseCommand: BaseCommand{
			Name:        "liarsdice",
			Description: "Play Liar's Dice",
			Options:     commandOptions(),
		},
		gameService:          cfg.GameService,
		userService:          cfg.UserService,
		scoreService:         cfg.ScoreService,
		messagingService:     cfg.MessagingService,
		defaultDicePerPlayer: cfg.DefaultDicePerPlayer,
		defaultDieFaces:      cfg.DefaultDieFaces,
		defaultWildFace:      cfg.DefaultWildFace,
	}

	if c.defaultDicePerPlayer == 0 {
		c.defaultDicePerPlayer = 5
	}
	if c.defaultDieFaces == 0 {
		c.defaultDieFaces = 6
	}

	return c, nil
}

func commandOptions() []*discordgo.ApplicationCommandOption {
	minOne := float64(1)

	newOptions := make([]*discordgo.ApplicationCommandOption, 0, maxOpponents+3)
	for n := 1; n <= maxOpponents; n++ {
		newOptions = append(newOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        fmt.Sprintf("opponent%d", n),
			Description: "A player to challenge",
		})
	}
	newOptions = append(newOptions,
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dice",
			Description: "Dice per player",
			MinValue:    &minOne,
			MaxValue:    20,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "faces",
			Description: "Faces per die",
			MinValue:    &minOne,
			MaxValue:    20,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "wild",
			Description: "Wild face, recorded with the game",
		},
	)

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "new",
			Description: "Start a game in this channel",
			Options:     newOptions,
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "bid",
			Description: "Raise the bid",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "total",
					Description: "How many dice",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "face",
					Description: "Showing which face",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "liar",
			Description: "Call the current bid a lie",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "dice",
			Description: "Look at your dice",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "status",
			Description: "Show the game in this channel",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "history",
			Description: "Show every bid of the game in this channel",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "cancel",
			Description: "Cancel the game in this channel",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "games",
			Description: "List your games in progress",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "rankings",
			Description: "Show the rankings",
		},
	}
}

// Handle processes a Discord interaction for the liarsdice command
func (c *LiarsDiceCommand) Handle(s Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)

	// Discord has verified the caller, record them before anything reads users
	if _, err := c.userService.EnsureUser(ctx, &user.EnsureUserInput{ID: userID, Name: username}); err != nil {
		return c.respondError(s, i, err)
	}

	sub := data.Options[0]
	switch sub.Name {
	case "new":
		return c.handleNew(ctx, s, i, userID, sub, data.Resolved)
	case "bid":
		return c.handleBid(ctx, s, i, userID, sub)
	case "liar":
		return c.withChannelGame(ctx, s, i, func(gameID string) error {
			return c.callLiar(ctx, s, i, gameID, userID)
		})
	case "dice":
		return c.withChannelGame(ctx, s, i, func(gameID string) error {
			return c.showDice(ctx, s, i, gameID, userID)
		})
	case "status":
		return c.handleStatus(ctx, s, i)
	case "history":
		return c.withChannelGame(ctx, s, i, func(gameID string) error {
			return c.showHistory(ctx, s, i, gameID)
		})
	case "cancel":
		return c.withChannelGame(ctx, s, i, func(gameID string) error {
			return c.cancel(ctx, s, i, gameID, userID)
		})
	case "games":
		return c.handleGames(ctx, s, i, userID)
	case "rankings":
		return c.handleRankings(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// HandleComponent processes the Call Liar and My Dice buttons
func (c *LiarsDiceCommand) HandleComponent(s Session, i *discordgo.InteractionCreate) (bool, error) {
	if i.Type != discordgo.InteractionMessageComponent {
		return false, nil
	}

	prefix, gameID, ok := parseButtonID(i.MessageComponentData().CustomID)
	if !ok {
		return false, nil
	}

	ctx := context.Background()
	userID, _ := interactionUser(i)

	switch prefix {
	case ButtonCallLiar:
		return true, c.callLiar(ctx, s, i, gameID, userID)
	case ButtonMyDice:
		return true, c.showDice(ctx, s, i, gameID, userID)
	}

	return false, nil
}

// handleNew seats the caller and the named opponents
func (c *LiarsDiceCommand) handleNew(ctx context.Context, s Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption, resolved *discordgo.ApplicationCommandInteractionDataResolved) error {
	playerIDs := []string{userID}
	dicePerPlayer := c.defaultDicePerPlayer
	dieFaces := c.defaultDieFaces
	wildFace := c.defaultWildFace

	for _, opt := range sub.Options {
		switch opt.Name {
		case "dice":
			dicePerPlayer = int(opt.IntValue())
		case "faces":
			dieFaces = int(opt.IntValue())
		case "wild":
			wildFace = int(opt.IntValue())
		default:
			if opt.Type != discordgo.ApplicationCommandOptionUser {
				continue
			}

			opponentID, _ := opt.Value.(string)
			if opponentID == "" {
				continue
			}

			if err := c.ensureOpponent(ctx, opponentID, resolved); err != nil {
				return c.respondError(s, i, err)
			}
			playerIDs = append(playerIDs, opponentID)
		}
	}

	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChannelID:     i.ChannelID,
		CreatorID:     userID,
		PlayerIDs:     playerIDs,
		DicePerPlayer: dicePerPlayer,
		DieFaces:      dieFaces,
		WildFace:      wildFace,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	status, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		Game: output.Game,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	embed := renderGameEmbed(output.Game, status.Message)
	embed.Title = "New Game of Liar's Dice!"

	return RespondWithEmbed(s, i, embed, discordgo.Button{
		Label:    "My Dice",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonMyDice + output.Game.ID,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	})
}

// ensureOpponent records an opponent picked from Discord, using the resolved name when present
func (c *LiarsDiceCommand) ensureOpponent(ctx context.Context, opponentID string, resolved *discordgo.ApplicationCommandInteractionDataResolved) error {
	name := opponentID
	if resolved != nil {
		if member, ok := resolved.Members[opponentID]; ok && member.Nick != "" {
			name = member.Nick
		} else if u, ok := resolved.Users[opponentID]; ok {
			name = displayName(u)
		}
	}

	_, err := c.userService.EnsureUser(ctx, &user.EnsureUserInput{ID: opponentID, Name: name})
	return err
}

func (c *LiarsDiceCommand) handleBid(ctx context.Context, s Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	var face, total int
	for _, opt := range sub.Options {
		switch opt.Name {
		case "face":
			face = int(opt.IntValue())
		case "total":
			total = int(opt.IntValue())
		}
	}

	return c.withChannelGame(ctx, s, i, func(gameID string) error {
		output, err := c.gameService.SubmitBid(ctx, &game.SubmitBidInput{
			GameID:   gameID,
			PlayerID: userID,
			Face:     face,
			Total:    total,
		})
		if err != nil {
			return c.respondError(s, i, err)
		}

		status, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
			Game: output.Game,
		})
		if err != nil {
			return c.respondError(s, i, err)
		}

		return RespondWithEmbed(s, i, renderGameEmbed(output.Game, status.Message), turnButtons(output.Game.ID)...)
	})
}

func (c *LiarsDiceCommand) callLiar(ctx context.Context, s Session, i *discordgo.InteractionCreate, gameID, userID string) error {
	output, err := c.gameService.CallLiar(ctx, &game.CallLiarInput{
		GameID:   gameID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	summary, err := c.messagingService.GetResolutionMessage(ctx, &messaging.GetResolutionMessageInput{
		Game:       output.Game,
		Resolution: output.Resolution,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderResolutionEmbed(output.Game, summary.Message))
}

func (c *LiarsDiceCommand) showDice(ctx context.Context, s Session, i *discordgo.InteractionCreate, gameID, userID string) error {
	output, err := c.gameService.GetDice(ctx, &game.GetDiceInput{
		GameID:   gameID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	dice, err := c.messagingService.GetDiceMessage(ctx, &messaging.GetDiceMessageInput{
		Faces: output.Faces,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, dice.Message)
}

func (c *LiarsDiceCommand) handleStatus(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	status, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		Game: output.Game,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	var buttons []discordgo.MessageComponent
	if output.Game.Status.IsInProgress() && output.Game.Turn > 0 {
		buttons = turnButtons(output.Game.ID)
	}

	return RespondWithEmbed(s, i, renderGameEmbed(output.Game, status.Message), buttons...)
}

func (c *LiarsDiceCommand) showHistory(ctx context.Context, s Session, i *discordgo.InteractionCreate, gameID string) error {
	output, err := c.gameService.GetHistory(ctx, &game.GetHistoryInput{
		GameID: gameID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	history, err := c.messagingService.GetHistoryMessage(ctx, &messaging.GetHistoryMessageInput{
		Entries: output.Entries,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Bid History",
		Description: history.Message,
		Color:       colorGreen,
	})
}

func (c *LiarsDiceCommand) cancel(ctx context.Context, s Session, i *discordgo.InteractionCreate, gameID, userID string) error {
	output, err := c.gameService.CancelGame(ctx, &game.CancelGameInput{
		GameID:   gameID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if !output.Cancelled {
		return RespondWithEphemeralMessage(s, i, "This game is already over.")
	}

	return RespondWithMessage(s, i, "Game cancelled. Start a new one with `/liarsdice new`.")
}

func (c *LiarsDiceCommand) handleGames(ctx context.Context, s Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.gameService.ListUserGames(ctx, &game.ListUserGamesInput{
		PlayerID:   userID,
		ActiveOnly: true,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEphemeralEmbed(s, i, renderGamesEmbed(output.Games))
}

func (c *LiarsDiceCommand) handleRankings(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	output, err := c.scoreService.GetRankings(ctx, &score.GetRankingsInput{
		Limit: 10,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	rankings, err := c.messagingService.GetRankingsMessage(ctx, &messaging.GetRankingsMessageInput{
		Rankings: output.Rankings,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🏆 Rankings 🏆",
		Description: rankings.Message,
		Color:       colorGold,
	})
}

// withChannelGame runs fn with the ID of the latest game in the interaction's channel
func (c *LiarsDiceCommand) withChannelGame(ctx context.Context, s Session, i *discordgo.InteractionCreate, fn func(gameID string) error) error {
	output, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			return RespondWithError(s, i, "No game in this channel. Start one with `/liarsdice new`.")
		}
		return c.respondError(s, i, err)
	}

	return fn(output.Game.ID)
}

func (c *LiarsDiceCommand) respondError(s Session, i *discordgo.InteractionCreate, err error) error {
	output, msgErr := c.messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		return RespondWithError(s, i, "Something went wrong. Try again later.")
	}

	if output.Code == messaging.CodeInternal {
		log.Printf("Error handling liarsdice interaction: %v", err)
	}

	return RespondWithError(s, i, output.Message)
}
