package api

import (
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
)

// Config for the HTTP handler
type Config struct {
	GameService      game.Service
	UserService      user.Service
	ScoreService     score.Service
	MessagingService messaging.Service
	JWTService       *JWTService

	// Defaults applied when a create request leaves a setting out
	DefaultDicePerPlayer int
	DefaultDieFaces      int
	DefaultWildFace      int
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateGameRequest struct {
	// OpponentIDs are seated after the caller, in order
	OpponentIDs   []string `json:"opponent_ids"`
	DicePerPlayer *int     `json:"dice_per_player"`
	DieFaces      *int     `json:"die_faces"`
	WildFace      *int     `json:"wild_face"`
}

type BidRequest struct {
	Face  int `json:"face"`
	Total int `json:"total"`
}

type BidResponse struct {
	Face  int `json:"face"`
	Total int `json:"total"`
}

type SlotResponse struct {
	Slot     int            `json:"slot"`
	UserID   string         `json:"user_id"`
	UserName string         `json:"user_name"`
	Dice     []FaceResponse `json:"dice,omitempty"`
}

type ResolutionResponse struct {
	BidFace        int    `json:"bid_face"`
	BidTotal       int    `json:"bid_total"`
	ActualTotal    int    `json:"actual_total"`
	BidderSlot     int    `json:"bidder_slot"`
	ChallengerSlot int    `json:"challenger_slot"`
	WinnerSlot     int    `json:"winner_slot"`
	Summary        string `json:"summary,omitempty"`
}

type GameResponse struct {
	ID               string              `json:"id"`
	Status           models.GameStatus   `json:"status"`
	PlayerCount      int                 `json:"player_count"`
	DieFaces         int                 `json:"die_faces"`
	DicePerPlayer    int                 `json:"dice_per_player"`
	WildFace         int                 `json:"wild_face"`
	Turn             int                 `json:"turn"`
	ActiveBidderSlot int                 `json:"active_bidder_slot"`
	CurrentBid       BidResponse         `json:"current_bid"`
	NextSlot         int                 `json:"next_slot,omitempty"`
	WinnerSlot       int                 `json:"winner_slot,omitempty"`
	Resolution       *ResolutionResponse `json:"resolution,omitempty"`
	Slots            []SlotResponse      `json:"slots"`
	StatusMessage    string              `json:"status_message,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type HistoryEntryResponse struct {
	Turn       int       `json:"turn"`
	BidderSlot int       `json:"bidder_slot"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Face       int       `json:"face"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

type RankingResponse struct {
	Rank            int    `json:"rank"`
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	GamesPlayed     int    `json:"games_played"`
	Wins            int    `json:"wins"`
	CumulativeScore int    `json:"cumulative_score"`
}

type FaceResponse struct {
	Face  int `json:"face"`
	Count int `json:"count"`
}

type DiceResponse struct {
	Slot int            `json:"slot"`
	Dice []FaceResponse `json:"dice"`
}
