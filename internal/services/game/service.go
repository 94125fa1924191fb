package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/lock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
	gameRepo "github.com/KirkDiggler/liarsdice/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/liarsdice/internal/repositories/history"
	notificationRepo "github.com/KirkDiggler/liarsdice/internal/repositories/notification"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
)

// service implements the Service interface
type service struct {
	maxPlayers       int
	gameRepo         gameRepo.Repository
	userRepo         userRepo.Repository
	historyRepo      historyRepo.Repository
	notificationRepo notificationRepo.Repository
	scoreService     score.Service
	diceRoller       dice.Roller
	clock            clock.Clock
	uuidGenerator    uuid.UUID
	locker           *lock.KeyedMutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.NotificationRepo == nil {
		return nil, ErrNilNotificationRepo
	}

	if cfg.ScoreService == nil {
		return nil, ErrNilScoreService
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	locker := cfg.Locker
	if locker == nil {
		locker = lock.New()
	}

	return &service{
		maxPlayers:       cfg.MaxPlayers,
		gameRepo:         cfg.GameRepo,
		userRepo:         cfg.UserRepo,
		historyRepo:      cfg.HistoryRepo,
		notificationRepo: cfg.NotificationRepo,
		scoreService:     cfg.ScoreService,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		locker:           locker,
	}, nil
}

// CreateGame validates the table, rolls every pool and persists the new game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Validate everything before any side effect
	if len(input.PlayerIDs) == 0 {
		return nil, ErrNoPlayers
	}

	if s.maxPlayers > 0 && len(input.PlayerIDs) > s.maxPlayers {
		return nil, ErrTooManyPlayers
	}

	if input.DicePerPlayer < 1 {
		return nil, ErrInsufficientDice
	}

	if input.DieFaces < 1 {
		return nil, ErrInvalidFaceSpace
	}

	seen := make(map[string]bool, len(input.PlayerIDs))
	for _, playerID := range input.PlayerIDs {
		if seen[playerID] {
			return nil, ErrDuplicatePlayer
		}
		seen[playerID] = true
	}

	users, err := s.userRepo.GetUsers(ctx, &userRepo.GetUsersInput{
		UserIDs: input.PlayerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	if len(users.Missing) > 0 {
		return nil, ErrUnknownPlayer
	}

	// One game in progress per channel
	if input.ChannelID != "" {
		unlock := s.locker.Lock("channel:" + input.ChannelID)
		defer unlock()

		existing, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
			ChannelID: input.ChannelID,
		})
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to check channel: %w", err)
		}

		if err == nil && existing.Status.IsInProgress() {
			return nil, ErrChannelHasGame
		}
	}

	now := s.clock.Now()
	creatorID := input.CreatorID
	if creatorID == "" {
		creatorID = input.PlayerIDs[0]
	}

	game := &models.Game{
		ID:               s.uuidGenerator.NewUUID(),
		ChannelID:        input.ChannelID,
		CreatorID:        creatorID,
		Status:           models.GameStatusInProgress,
		PlayerCount:      len(input.PlayerIDs),
		DieFaces:         input.DieFaces,
		DicePerPlayer:    input.DicePerPlayer,
		WildFace:         input.WildFace,
		Turn:             0,
		ActiveBidderSlot: 0,
		CurrentBid:       models.InitialBid(),
		Slots:            make([]*models.PlayerSlot, 0, len(input.PlayerIDs)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	names := make(map[string]string, len(users.Users))
	for _, user := range users.Users {
		names[user.ID] = user.Name
	}

	// Slots follow the order the players were given in
	for i, playerID := range input.PlayerIDs {
		pool, err := dice.Generate(s.diceRoller, input.DieFaces, input.DicePerPlayer)
		if err != nil {
			return nil, fmt.Errorf("failed to roll dice: %w", err)
		}

		game.Slots = append(game.Slots, &models.PlayerSlot{
			Slot:     i + 1,
			UserID:   playerID,
			UserName: names[playerID],
			Pool:     pool,
		})
	}

	if err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame returns a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return newGetGameOutput(game), nil
}

// GetGameByChannel returns the latest game of a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game for channel: %w", err)
	}

	return newGetGameOutput(game), nil
}

// SubmitBid validates and records a bid, then notifies the next bidder
func (s *service) SubmitBid(ctx context.Context, input *SubmitBidInput) (*SubmitBidOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.locker.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsTerminal() {
		return &SubmitBidOutput{Game: game}, ErrGameAlreadyOver
	}

	bidder := game.SlotForUser(input.PlayerID)
	if bidder == nil {
		return nil, ErrPlayerNotInGame
	}

	proposed := models.Bid{Face: input.Face, Total: input.Total}
	next, err := applyBid(game, bidder.Slot, proposed)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	next.UpdatedAt = now

	if err := s.saveGame(ctx, next); err != nil {
		return nil, err
	}

	err = s.historyRepo.AddEntry(ctx, &historyRepo.AddEntryInput{
		Entry: &models.BidHistoryEntry{
			GameID:     next.ID,
			Turn:       next.Turn,
			BidderSlot: bidder.Slot,
			UserID:     bidder.UserID,
			UserName:   bidder.UserName,
			Face:       proposed.Face,
			Total:      proposed.Total,
			CreatedAt:  now,
		},
	})
	if err != nil {
		log.Printf("Failed to record bid history for game %s turn %d: %v", next.ID, next.Turn, err)
	}

	nextPlayer := NextPlayer(next)
	s.notify(ctx, &models.TurnNotification{
		Type:          models.NotificationTypeYourTurn,
		RecipientID:   nextPlayer.UserID,
		RecipientName: nextPlayer.UserName,
		GameID:        next.ID,
		ChannelID:     next.ChannelID,
		BidFace:       proposed.Face,
		BidTotal:      proposed.Total,
		BidderName:    bidder.UserName,
		CreatedAt:     now,
	})

	return &SubmitBidOutput{
		Game:       next,
		NextPlayer: nextPlayer,
	}, nil
}

// CallLiar resolves the current bid and credits the winner
func (s *service) CallLiar(ctx context.Context, input *CallLiarInput) (*CallLiarOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.locker.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsTerminal() {
		return &CallLiarOutput{Game: game, Resolution: game.Resolution}, ErrGameAlreadyOver
	}

	challenger := game.SlotForUser(input.PlayerID)
	if challenger == nil {
		return nil, ErrPlayerNotInGame
	}

	next, resolution, err := resolveChallenge(game, challenger.Slot)
	if err != nil {
		return nil, err
	}

	next.UpdatedAt = s.clock.Now()

	if err := s.saveGame(ctx, next); err != nil {
		return nil, err
	}

	// The game is settled either way; a failed score write can be replayed safely
	if _, err := s.scoreService.RecordGameEnd(ctx, &score.RecordGameEndInput{
		Game: next,
	}); err != nil {
		log.Printf("Failed to record result of game %s: %v", next.ID, err)
	}

	return &CallLiarOutput{
		Game:       next,
		Resolution: resolution,
	}, nil
}

// CancelGame marks a game cancelled; terminal games are returned as they are
func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.locker.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.SlotForUser(input.PlayerID) == nil {
		return nil, ErrPlayerNotInGame
	}

	next, changed := cancel(game)
	if !changed {
		return &CancelGameOutput{Game: game}, nil
	}

	next.UpdatedAt = s.clock.Now()

	if err := s.saveGame(ctx, next); err != nil {
		return nil, err
	}

	return &CancelGameOutput{
		Game:      next,
		Cancelled: true,
	}, nil
}

// GetDice reveals the caller's own pool
func (s *service) GetDice(ctx context.Context, input *GetDiceInput) (*GetDiceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	slot := game.SlotForUser(input.PlayerID)
	if slot == nil {
		return nil, ErrPlayerNotInGame
	}

	return &GetDiceOutput{
		Slot:  slot.Slot,
		Faces: slot.Pool.Faces(),
	}, nil
}

// GetHistory lists a game's accepted bids
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Make sure the game exists so unknown IDs are reported as such
	if _, err := s.loadGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	output, err := s.historyRepo.GetEntriesForGame(ctx, &historyRepo.GetEntriesForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Entries: output.Entries,
	}, nil
}

// ListUserGames lists the games a user is seated in
func (s *service) ListUserGames(ctx context.Context, input *ListUserGamesInput) (*ListUserGamesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	output, err := s.gameRepo.GetGamesForUser(ctx, &gameRepo.GetGamesForUserInput{
		UserID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get games for user: %w", err)
	}

	games := make([]*models.Game, 0, len(output.Games))
	for _, game := range output.Games {
		if input.ActiveOnly && !game.Status.IsInProgress() {
			continue
		}
		games = append(games, game)
	}

	return &ListUserGamesOutput{
		Games: games,
	}, nil
}

// GetPendingTurns lists the seat owing a move in every game in progress
func (s *service) GetPendingTurns(ctx context.Context, input *GetPendingTurnsInput) (*GetPendingTurnsOutput, error) {
	output, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	turns := make([]*PendingTurn, 0, len(output.Games))
	for _, game := range output.Games {
		// The active set can briefly lag a status change
		if !game.Status.IsInProgress() {
			continue
		}

		player := NextPlayer(game)
		if player == nil {
			continue
		}

		turns = append(turns, &PendingTurn{
			Game:   game,
			Player: player,
		})
	}

	return &GetPendingTurnsOutput{
		Turns: turns,
	}, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		Game: game,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gameRepo.ErrVersionConflict):
		return ErrConcurrentUpdate
	case errors.Is(err, gameRepo.ErrGameNotFound):
		return ErrGameNotFound
	default:
		return fmt.Errorf("failed to save game: %w", err)
	}
}

// notify hands a notification to the queue without failing the caller
func (s *service) notify(ctx context.Context, notification *models.TurnNotification) {
	err := s.notificationRepo.Enqueue(ctx, &notificationRepo.EnqueueInput{
		Notification: notification,
	})
	if err != nil {
		log.Printf("Failed to enqueue %s notification for %s in game %s: %v",
			notification.Type, notification.RecipientID, notification.GameID, err)
	}
}

func newGetGameOutput(game *models.Game) *GetGameOutput {
	output := &GetGameOutput{
		Game: game,
	}
	if game.Status.IsInProgress() {
		output.NextPlayer = NextPlayer(game)
	}
	return output
}
