package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/notification Repository

import (
	"context"
)

// Repository is a FIFO queue of turn notifications awaiting delivery
type Repository interface {
	// Enqueue adds a notification to the tail of the queue
	Enqueue(ctx context.Context, input *EnqueueInput) error

	// Dequeue removes the oldest notification, waiting up to the input timeout
	Dequeue(ctx context.Context, input *DequeueInput) (*DequeueOutput, error)

	// Len returns the number of queued notifications
	Len(ctx context.Context) (int64, error)
}
