// Package notify sends desktop notifications on behalf of the UI layer.
// It uses github.com/gen2brain/beeep for cross-platform notification support.
package notify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/takma/takma-desktop/internal/logging"
)

const (
	maxTitleLen   = 64
	maxMessageLen = 256
)

// Notifier handles desktop notifications.
type Notifier struct {
	logger  *logging.Logger
	enabled bool
	mu      sync.RWMutex

	// send delivers one notification; replaced in tests.
	send func(title, message string) error
}

// NewNotifier creates a notifier. A disabled notifier drops every message.
func NewNotifier(enabled bool, logger *logging.Logger) *Notifier {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Notifier{
		logger:  logger.Component("notify"),
		enabled: enabled,
		send:    beeepSend,
	}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// Notify shows a notification. Over-long text is truncated. When
// notifications are disabled nothing is shown and nil is returned.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}

	if err := n.send(truncate(title, maxTitleLen), truncate(message, maxMessageLen)); err != nil {
		n.logger.Warn().Err(err).Str("title", title).Msg("Failed to send notification")
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// beeepSend is cross-platform:
// - Windows: toast notifications
// - macOS: notification center via osascript
// - Linux: org.freedesktop.Notifications over D-Bus
func beeepSend(title, message string) error {
	return beeep.Notify(title, message, "")
}

// truncate shortens s to at most maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
