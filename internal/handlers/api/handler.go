package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
)

// Handler serves the HTTP API
type Handler struct {
	gameService      game.Service
	userService      user.Service
	scoreService     score.Service
	messagingService messaging.Service
	jwtService       *JWTService

	defaultDicePerPlayer int
	defaultDieFaces      int
	defaultWildFace      int
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
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

	if cfg.JWTService == nil {
		return nil, ErrNilJWTService
	}

	h := &Handler{
		gameService:          cfg.GameService,
		userService:          cfg.UserService,
		scoreService:         cfg.ScoreService,
		messagingService:     cfg.MessagingService,
		jwtService:           cfg.JWTService,
		defaultDicePerPlayer: cfg.DefaultDicePerPlayer,
		defaultDieFaces:      cfg.DefaultDieFaces,
		defaultWildFace:      cfg.DefaultWildFace,
	}

	if h.defaultDicePerPlayer == 0 {
		h.defaultDicePerPlayer = 5
	}
	if h.defaultDieFaces == 0 {
		h.defaultDieFaces = 6
	}

	return h, nil
}

// Register adds every route to router
func (h *Handler) Register(router *gin.Engine) {
	router.Use(CORSMiddleware())

	router.POST("/users", h.CreateUser)
	router.POST("/auth/login", h.Login)

	protected := router.Group("/api")
	protected.Use(AuthMiddleware(h.jwtService))
	{
		games := protected.Group("/games")
		{
			games.POST("", h.CreateGame)
			games.GET("", h.ListGames)
		}

		byID := games.Group("/:id")
		byID.Use(h.requireGameID)
		{
			byID.GET("", h.GetGame)
			byID.PUT("/bid", h.SubmitBid)
			byID.PUT("/liar", h.CallLiar)
			byID.PUT("/cancel", h.CancelGame)
			byID.GET("/dice", h.GetDice)
			byID.GET("/history", h.GetHistory)
		}

		protected.GET("/rankings", h.GetRankings)
	}
}

// requireGameID answers 404 for ids that were never issued as game IDs
func (h *Handler) requireGameID(c *gin.Context) {
	if !uuid.IsValid(c.Param("id")) {
		h.respondError(c, game.ErrGameNotFound)
		c.Abort()
		return
	}

	c.Next()
}

// CreateUser registers a new account
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "InvalidInput", "details": err.Error()})
		return
	}

	output, err := h.userService.CreateUser(c.Request.Context(), &user.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(output.User)})
}

// Login exchanges a name and password for a token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "InvalidInput", "details": err.Error()})
		return
	}

	output, err := h.userService.Authenticate(c.Request.Context(), &user.AuthenticateInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(output.User.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(output.User),
	})
}

// CreateGame seats the caller and the requested opponents
func (h *Handler) CreateGame(c *gin.Context) {
	userID := c.GetString(userIDKey)

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "InvalidInput", "details": err.Error()})
		return
	}

	playerIDs := append([]string{userID}, req.OpponentIDs...)

	output, err := h.gameService.CreateGame(c.Request.Context(), &game.CreateGameInput{
		CreatorID:     userID,
		PlayerIDs:     playerIDs,
		DicePerPlayer: intOrDefault(req.DicePerPlayer, h.defaultDicePerPlayer),
		DieFaces:      intOrDefault(req.DieFaces, h.defaultDieFaces),
		WildFace:      intOrDefault(req.WildFace, h.defaultWildFace),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": h.toGameResponse(c, output.Game)})
}

// ListGames returns the caller's games
func (h *Handler) ListGames(c *gin.Context) {
	userID := c.GetString(userIDKey)
	activeOnly, _ := strconv.ParseBool(c.Query("active"))

	output, err := h.gameService.ListUserGames(c.Request.Context(), &game.ListUserGamesInput{
		PlayerID:   userID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	games := make([]*GameResponse, 0, len(output.Games))
	for _, g := range output.Games {
		games = append(games, h.toGameResponse(c, g))
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetGame returns a game snapshot without private dice
func (h *Handler) GetGame(c *gin.Context) {
	output, err := h.gameService.GetGame(c.Request.Context(), &game.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": h.toGameResponse(c, output.Game)})
}

// SubmitBid raises the current bid
func (h *Handler) SubmitBid(c *gin.Context) {
	var req BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "InvalidInput", "details": err.Error()})
		return
	}

	output, err := h.gameService.SubmitBid(c.Request.Context(), &game.SubmitBidInput{
		GameID:   c.Param("id"),
		PlayerID: c.GetString(userIDKey),
		Face:     req.Face,
		Total:    req.Total,
	})
	if err != nil {
		if output != nil {
			h.respondErrorWithGame(c, err, output.Game)
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": h.toGameResponse(c, output.Game)})
}

// CallLiar challenges the current bid
func (h *Handler) CallLiar(c *gin.Context) {
	output, err := h.gameService.CallLiar(c.Request.Context(), &game.CallLiarInput{
		GameID:   c.Param("id"),
		PlayerID: c.GetString(userIDKey),
	})
	if err != nil {
		if output != nil {
			h.respondErrorWithGame(c, err, output.Game)
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": h.toGameResponse(c, output.Game)})
}

// CancelGame abandons a game, repeating the call is harmless
func (h *Handler) CancelGame(c *gin.Context) {
	output, err := h.gameService.CancelGame(c.Request.Context(), &game.CancelGameInput{
		GameID:   c.Param("id"),
		PlayerID: c.GetString(userIDKey),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":      h.toGameResponse(c, output.Game),
		"cancelled": output.Cancelled,
	})
}

// GetDice returns the caller's own dice
func (h *Handler) GetDice(c *gin.Context) {
	output, err := h.gameService.GetDice(c.Request.Context(), &game.GetDiceInput{
		GameID:   c.Param("id"),
		PlayerID: c.GetString(userIDKey),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &DiceResponse{
		Slot: output.Slot,
		Dice: toFaceResponses(output.Faces),
	})
}

// GetHistory returns the accepted bids of a game
func (h *Handler) GetHistory(c *gin.Context) {
	output, err := h.gameService.GetHistory(c.Request.Context(), &game.GetHistoryInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries := make([]*HistoryEntryResponse, 0, len(output.Entries))
	for _, entry := range output.Entries {
		entries = append(entries, &HistoryEntryResponse{
			Turn:       entry.Turn,
			BidderSlot: entry.BidderSlot,
			UserID:     entry.UserID,
			UserName:   entry.UserName,
			Face:       entry.Face,
			Total:      entry.Total,
			CreatedAt:  entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetRankings returns the leaderboard
func (h *Handler) GetRankings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative number", "code": "InvalidInput"})
		return
	}

	output, err := h.scoreService.GetRankings(c.Request.Context(), &score.GetRankingsInput{
		Limit: limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	rankings := make([]*RankingResponse, 0, len(output.Rankings))
	for _, ranked := range output.Rankings {
		rankings = append(rankings, &RankingResponse{
			Rank:            ranked.Rank,
			UserID:          ranked.Record.UserID,
			UserName:        ranked.UserName,
			GamesPlayed:     ranked.Record.GamesPlayed,
			Wins:            ranked.Record.Wins,
			CumulativeScore: ranked.Record.CumulativeScore,
		})
	}

	c.JSON(http.StatusOK, gin.H{"rankings": rankings})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	h.respondErrorWithGame(c, err, nil)
}

// respondErrorWithGame attaches the unchanged game, e.g. the summary of a game already over
func (h *Handler) respondErrorWithGame(c *gin.Context, err error, g *models.Game) {
	output, msgErr := h.messagingService.GetErrorMessage(c.Request.Context(), &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		output = &messaging.GetErrorMessageOutput{Code: messaging.CodeInternal, Message: "Something went wrong. Try again later."}
	}

	status := statusForCode(output.Code)
	if status == http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
	}

	body := gin.H{"error": output.Message, "code": output.Code}
	if g != nil {
		body["game"] = h.toGameResponse(c, g)
	}

	c.JSON(status, body)
}

func (h *Handler) toGameResponse(c *gin.Context, g *models.Game) *GameResponse {
	response := &GameResponse{
		ID:               g.ID,
		Status:           g.Status,
		PlayerCount:      g.PlayerCount,
		DieFaces:         g.DieFaces,
		DicePerPlayer:    g.DicePerPlayer,
		WildFace:         g.WildFace,
		Turn:             g.Turn,
		ActiveBidderSlot: g.ActiveBidderSlot,
		CurrentBid:       BidResponse{Face: g.CurrentBid.Face, Total: g.CurrentBid.Total},
		WinnerSlot:       g.WinnerSlot,
		Slots:            make([]SlotResponse, 0, len(g.Slots)),
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}

	if g.Status.IsInProgress() {
		response.NextSlot = game.NextBidderSlot(g.ActiveBidderSlot, g.PlayerCount)
	}

	// Dice stay private until a liar call reveals them
	for _, slot := range g.Slots {
		slotResponse := SlotResponse{
			Slot:     slot.Slot,
			UserID:   slot.UserID,
			UserName: slot.UserName,
		}
		if g.Status.IsFinished() {
			slotResponse.Dice = toFaceResponses(slot.Pool.Faces())
		}
		response.Slots = append(response.Slots, slotResponse)
	}

	if g.Resolution != nil {
		response.Resolution = &ResolutionResponse{
			BidFace:        g.Resolution.BidFace,
			BidTotal:       g.Resolution.BidTotal,
			ActualTotal:    g.Resolution.ActualTotal,
			BidderSlot:     g.Resolution.BidderSlot,
			ChallengerSlot: g.Resolution.ChallengerSlot,
			WinnerSlot:     g.Resolution.WinnerSlot,
		}

		summary, err := h.messagingService.GetResolutionMessage(c.Request.Context(), &messaging.GetResolutionMessageInput{
			Game:       g,
			Resolution: g.Resolution,
		})
		if err == nil {
			response.Resolution.Summary = summary.Message
		}
	}

	status, err := h.messagingService.GetGameStatusMessage(c.Request.Context(), &messaging.GetGameStatusMessageInput{
		Game: g,
	})
	if err == nil {
		response.StatusMessage = status.Message
	}

	return response
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toFaceResponses(faces []models.FaceCount) []FaceResponse {
	responses := make([]FaceResponse, 0, len(faces))
	for _, fc := range faces {
		responses = append(responses, FaceResponse{Face: fc.Face, Count: fc.Count})
	}
	return responses
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
