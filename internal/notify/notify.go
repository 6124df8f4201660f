// Package notify delivers a message to configured notification
// channels: Pushover, HTTP webhooks and the desktop notification
// service.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Message is the notification payload shared by all channels.
type Message struct {
	Title    string
	Body     string
	Priority *int
}

// Notifier delivers a message to a single channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg Message) error
}

// Dispatcher fans a message out to all configured notifiers.
type Dispatcher struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher for the given notifiers.
func NewDispatcher(notifiers []Notifier, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		notifiers: notifiers,
		logger:    logger,
	}
}

// Send dispatches msg to every notifier concurrently. Delivery
// failures are logged, not returned; one channel failing must not
// stop the others. The returned function blocks until all deliveries
// have finished.
func (d *Dispatcher) Send(ctx context.Context, msg Message) func() {
	var wg sync.WaitGroup
	for _, n := range d.notifiers {
		wg.Add(1)
		go func(n Notifier) {
			defer wg.Done()
			start := time.Now()
			if err := n.Notify(ctx, msg); err != nil {
				d.logger.Warn("notification failed",
					"notifier", n.Name(),
					"error", err)
				return
			}
			d.logger.Debug("notification sent",
				"notifier", n.Name(),
				"took", time.Since(start))
		}(n)
	}
	return wg.Wait
}
