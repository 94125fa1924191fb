package notification

import (
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

type EnqueueInput struct {
	Notification *models.TurnNotification
}

type DequeueInput struct {
	// Timeout bounds how long to wait for a notification, zero means do not block
	Timeout time.Duration
}

type DequeueOutput struct {
	// Notification is nil when the queue stayed empty for the timeout
	Notification *models.TurnNotification
}
