package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"hexgames/prefs"
)

// Display surfaces one notification to the user. The default implementation
// logs it; the presentation layer substitutes its own.
type Display func(title, body string)

// Listener subscribes to the inbound push channel and surfaces payloads as
// local notifications, unless the user has opted out.
type Listener struct {
	notifier *Notifier
	store    *prefs.Store
	display  Display
	logger   *slog.Logger
}

func NewListener(notifier *Notifier, store *prefs.Store, display Display) *Listener {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	if display == nil {
		display = func(title, body string) {
			logger.Info("notification", slog.String("title", title), slog.String("body", body))
		}
	}
	return &Listener{notifier: notifier, store: store, display: display, logger: logger}
}

// Start consumes push payloads until ctx is cancelled. Malformed payloads
// are logged and dropped; the opt-out flag is re-read per message so a
// toggle takes effect immediately.
func (l *Listener) Start(ctx context.Context) error {
	sub := l.notifier.Subscribe(ctx, FeedChannel)
	if sub == nil {
		return nil
	}
	ch := sub.Channel()

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if !l.store.GetBool(prefs.KeyNotificationsEnabled) {
					continue
				}
				var payload Message
				if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
					l.logger.Error("invalid notification payload", slog.String("error", err.Error()))
					continue
				}
				l.display(payload.Title, payload.Body)
			}
		}
	}()

	return nil
}
