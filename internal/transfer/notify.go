package transfer

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github/chapool/mht-transfers/internal/util"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

const maxToasts = 10

type Toast struct {
	ID        string
	Kind      ToastKind
	Message   string
	CreatedAt time.Time
}

// ToastBox keeps notifications for display until they auto-close after ttl.
type ToastBox struct {
	clock time2.Clock
	ttl   time.Duration

	mu     sync.Mutex
	toasts []Toast
}

func NewToastBox(clock time2.Clock, ttl time.Duration) *ToastBox {
	return &ToastBox{clock: clock, ttl: ttl}
}

func (b *ToastBox) Success(_ context.Context, msg string) {
	b.push(ToastSuccess, msg)
}

func (b *ToastBox) Failure(_ context.Context, msg string) {
	b.push(ToastError, msg)
}

// Active returns the toasts that have not closed yet, oldest first.
func (b *ToastBox) Active() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked()

	res := make([]Toast, len(b.toasts))
	copy(res, b.toasts)
	return res
}

// Dismiss closes the toast with id, reporting whether it was open.
func (b *ToastBox) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, toast := range b.toasts {
		if toast.ID == id {
			b.toasts = append(b.toasts[:i], b.toasts[i+1:]...)
			return true
		}
	}

	return false
}

func (b *ToastBox) push(kind ToastKind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked()

	b.toasts = append(b.toasts, Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: b.clock.Now(),
	})

	if len(b.toasts) > maxToasts {
		b.toasts = b.toasts[len(b.toasts)-maxToasts:]
	}
}

func (b *ToastBox) pruneLocked() {
	now := b.clock.Now()

	kept := b.toasts[:0]
	for _, toast := range b.toasts {
		if now.Sub(toast.CreatedAt) < b.ttl {
			kept = append(kept, toast)
		}
	}
	b.toasts = kept
}

// LogNotifier writes notifications to the request logger.
type LogNotifier struct{}

func (LogNotifier) Success(ctx context.Context, msg string) {
	util.LogFromContext(ctx).Info().Str("notification", msg).Msg("Transfer notification")
}

func (LogNotifier) Failure(ctx context.Context, msg string) {
	util.LogFromContext(ctx).Warn().Str("notification", msg).Msg("Transfer notification")
}

// Notifiers fans a notification out to all of its members.
type Notifiers []Notifier

func (n Notifiers) Success(ctx context.Context, msg string) {
	for _, notifier := range n {
		notifier.Success(ctx, msg)
	}
}

func (n Notifiers) Failure(ctx context.Context, msg string) {
	for _, notifier := range n {
		notifier.Failure(ctx, msg)
	}
}
