//go:build !linux

package notify

import (
	"context"
	"errors"
)

// Desktop is a placeholder on platforms without the freedesktop
// notification service.
type Desktop struct {
	appName string
}

// NewDesktop creates a desktop notifier. An empty appName defaults to
// "ding".
func NewDesktop(appName string) *Desktop {
	if appName == "" {
		appName = "ding"
	}
	return &Desktop{appName: appName}
}

// Name returns the channel name.
func (d *Desktop) Name() string {
	return "desktop"
}

// Notify reports that desktop notifications are unavailable.
func (d *Desktop) Notify(ctx context.Context, msg Message) error {
	return errors.New("desktop notifications are not supported on this platform")
}
