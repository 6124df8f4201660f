//go:build linux

package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Desktop shows a notification through the org.freedesktop.Notifications
// D-Bus service.
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

// Notify calls the notification daemon on the session bus.
func (d *Desktop) Notify(ctx context.Context, msg Message) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	// Don't close the connection as it's shared (SessionBus)

	summary := msg.Title
	if summary == "" {
		summary = d.appName
	}
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyFor(msg.Priority)),
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.CallWithContext(ctx, "org.freedesktop.Notifications.Notify", 0,
		d.appName,  // app_name
		uint32(0),  // replaces_id
		"",         // app_icon
		summary,    // summary
		msg.Body,   // body
		[]string{}, // actions
		hints,      // hints
		int32(-1),  // expire_timeout: server default
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send desktop notification: %w", call.Err)
	}
	return nil
}

// urgencyFor maps the message priority onto D-Bus urgency levels:
// 0 low, 1 normal, 2 critical.
func urgencyFor(priority *int) byte {
	if priority == nil {
		return 1
	}
	switch {
	case *priority >= 1:
		return 2
	case *priority <= -1:
		return 0
	default:
		return 1
	}
}
