//go:generate go tool mockgen -source=reply_dispatcher.go -destination=reply_dispatcher_mock_test.go -package=replydispatcher
package replydispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIMO-Network/line-reply-bot/internal/lineevents"
	"github.com/rs/zerolog"
)

var (
	// ErrUnsupportedEvent is returned for event variants the dispatcher does not reply to.
	ErrUnsupportedEvent = errors.New("unsupported event")
	// ErrMissingUserID is returned for a follow event that carries no user id.
	ErrMissingUserID = errors.New("follow event has no user id")
)

// LineClient is the subset of the LINE Messaging API the dispatcher calls.
type LineClient interface {
	GetDisplayName(ctx context.Context, userID string) (string, error)
	ReplyText(ctx context.Context, replyToken, text string) error
}

// Dispatcher selects and sends exactly one reply per handled event.
type Dispatcher struct {
	client LineClient
	table  *Table
}

// New creates a Dispatcher. A nil table uses the default reply table.
func New(client LineClient, table *Table) *Dispatcher {
	if table == nil {
		table = DefaultTable()
	}
	return &Dispatcher{
		client: client,
		table:  table,
	}
}

// Dispatch replies to a single event. Errors from the LINE API are returned
// unchanged in kind and are not retried.
func (d *Dispatcher) Dispatch(ctx context.Context, event lineevents.Event) error {
	switch e := event.(type) {
	case lineevents.FollowEvent:
		return d.handleFollow(ctx, e)
	case lineevents.TextMessageEvent:
		return d.handleText(ctx, e)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, event.Type())
	}
}

func (d *Dispatcher) handleFollow(ctx context.Context, e lineevents.FollowEvent) error {
	if e.UserID == "" {
		return ErrMissingUserID
	}
	name, err := d.client.GetDisplayName(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("failed to get follower profile: %w", err)
	}
	if err := d.client.ReplyText(ctx, e.ReplyToken, WelcomeMessage(name)); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("webhook_event_id", e.EventID).Msg("Sent welcome message")
	return nil
}

func (d *Dispatcher) handleText(ctx context.Context, e lineevents.TextMessageEvent) error {
	reply := d.table.Match(e.Text)
	if err := d.client.ReplyText(ctx, e.ReplyToken, reply); err != nil {
		return fmt.Errorf("failed to send text reply: %w", err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("webhook_event_id", e.EventID).
		Bool("fallback", reply == d.table.Fallback()).
		Msg("Sent text reply")
	return nil
}

// WelcomeMessage renders the follow greeting for a display name.
func WelcomeMessage(displayName string) string {
	return fmt.Sprintf(WelcomeTemplate, displayName)
}
