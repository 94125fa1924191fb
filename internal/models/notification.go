package models

import (
	"time"
)

// NotificationType identifies what a notification is about
type NotificationType string

const (
	// NotificationTypeYourTurn is sent to the next bidder after a bid is accepted
	NotificationTypeYourTurn NotificationType = "your_turn"

	// NotificationTypeReminder is sent by the periodic sweep to users who owe a move
	NotificationTypeReminder NotificationType = "reminder"
)

// TurnNotification is the payload handed to the notification collaborator
type TurnNotification struct {
	// Type identifies the notification
	Type NotificationType

	// RecipientID is the user who must act next
	RecipientID string

	// RecipientName is the display name of the recipient
	RecipientName string

	// GameID is the game the notification is about
	GameID string

	// ChannelID is the chat channel the game is played in, if any
	ChannelID string

	// BidFace is the face of the bid the recipient must answer
	BidFace int

	// BidTotal is the total of the bid the recipient must answer
	BidTotal int

	// BidderName is the display name of the player who made the bid
	BidderName string

	// CreatedAt is when the notification was emitted
	CreatedAt time.Time
}
