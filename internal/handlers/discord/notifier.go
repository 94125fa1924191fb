package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/repositories/notification"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
)

// NotifierConfig holds the dependencies of the notifier
type NotifierConfig struct {
	Session          Session
	NotificationRepo notification.Repository
	GameService      game.Service
	MessagingService messaging.Service
	Clock            clock.Clock

	// PollTimeout bounds each blocking read of the queue
	PollTimeout time.Duration

	// ReminderInterval is how often pending turns are re-announced, zero disables reminders
	ReminderInterval time.Duration
}

// Notifier delivers queued turn notifications as direct messages
type Notifier struct {
	session          Session
	notificationRepo notification.Repository
	gameService      game.Service
	messagingService messaging.Service
	clock            clock.Clock
	pollTimeout      time.Duration
	reminderInterval time.Duration
}

// NewNotifier creates a new notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.NotificationRepo == nil {
		return nil, ErrNilNotificationRepo
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}

	return &Notifier{
		session:          cfg.Session,
		notificationRepo: cfg.NotificationRepo,
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		clock:            cfg.Clock,
		pollTimeout:      pollTimeout,
		reminderInterval: cfg.ReminderInterval,
	}, nil
}

// Run delivers notifications and schedules reminders until ctx is done
func (n *Notifier) Run(ctx context.Context) {
	if n.reminderInterval > 0 {
		go n.runReminders(ctx)
	}

	for {
		if ctx.Err() != nil {
			return
		}

		if _, err := n.DeliverNext(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Error delivering notification: %v", err)

			// Back off so a broken queue does not spin
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
	}
}

func (n *Notifier) runReminders(ctx context.Context) {
	ticker := time.NewTicker(n.reminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := n.QueueReminders(ctx)
			if err != nil {
				log.Printf("Error queueing reminders: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("Queued %d turn reminders", count)
			}
		}
	}
}

// DeliverNext sends the oldest queued notification, returning false when the queue stayed empty
func (n *Notifier) DeliverNext(ctx context.Context) (bool, error) {
	output, err := n.notificationRepo.Dequeue(ctx, &notification.DequeueInput{
		Timeout: n.pollTimeout,
	})
	if err != nil {
		return false, err
	}

	if output.Notification == nil {
		return false, nil
	}

	// A lost DM is not retried, the reminder sweep covers it
	if err := n.deliver(ctx, output.Notification); err != nil {
		log.Printf("Error sending notification to %s for game %s: %v", output.Notification.RecipientID, output.Notification.GameID, err)
	}

	return true, nil
}

func (n *Notifier) deliver(ctx context.Context, note *models.TurnNotification) error {
	var title, message string

	switch note.Type {
	case models.NotificationTypeReminder:
		reminder, err := n.messagingService.GetReminderMessage(ctx, &messaging.GetReminderMessageInput{
			RecipientName: note.RecipientName,
			OpeningBid:    note.BidTotal == 0,
			BidFace:       note.BidFace,
			BidTotal:      note.BidTotal,
		})
		if err != nil {
			return err
		}
		title = "Reminder"
		message = reminder.Message
	default:
		turn, err := n.messagingService.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
			RecipientName: note.RecipientName,
			BidderName:    note.BidderName,
			BidFace:       note.BidFace,
			BidTotal:      note.BidTotal,
		})
		if err != nil {
			return err
		}
		title = turn.Title
		message = turn.Message
	}

	if note.ChannelID != "" {
		message += fmt.Sprintf("\n\nGame in <#%s>, answer with `/liarsdice bid` there.", note.ChannelID)
	}

	var buttons []discordgo.MessageComponent
	if note.BidTotal > 0 {
		buttons = turnButtons(note.GameID)
	}

	channel, err := n.session.UserChannelCreate(note.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = n.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: message,
				Color:       colorGreen,
				Timestamp:   note.CreatedAt.Format(time.RFC3339),
			},
		},
		Components: actionRow(buttons),
	})
	if err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

// QueueReminders enqueues a reminder for every player who owes a move
func (n *Notifier) QueueReminders(ctx context.Context) (int, error) {
	output, err := n.gameService.GetPendingTurns(ctx, &game.GetPendingTurnsInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to get pending turns: %w", err)
	}

	now := n.clock.Now()
	queued := 0
	for _, turn := range output.Turns {
		note := &models.TurnNotification{
			Type:          models.NotificationTypeReminder,
			RecipientID:   turn.Player.UserID,
			RecipientName: turn.Player.UserName,
			GameID:        turn.Game.ID,
			ChannelID:     turn.Game.ChannelID,
			CreatedAt:     now,
		}
		if turn.Game.Turn > 0 {
			note.BidFace = turn.Game.CurrentBid.Face
			note.BidTotal = turn.Game.CurrentBid.Total
			if bidder := turn.Game.Slot(turn.Game.ActiveBidderSlot); bidder != nil {
				note.BidderName = bidder.UserName
			}
		}

		if err := n.notificationRepo.Enqueue(ctx, &notification.EnqueueInput{Notification: note}); err != nil {
			return queued, fmt.Errorf("failed to queue reminder: %w", err)
		}
		queued++
	}

	return queued, nil
}
