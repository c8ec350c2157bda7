// Package lineevents converts LINE webhook callbacks into the small set of
// event variants the bot acts on.
package lineevents

import (
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// Event is a sealed union over FollowEvent, TextMessageEvent and OtherEvent.
type Event interface {
	// Type returns the LINE event type tag.
	Type() string
	// WebhookEventID returns the provider's id for the event, used for logging only.
	WebhookEventID() string
	isEvent()
}

// FollowEvent is sent when a user adds the bot as a friend or unblocks it.
type FollowEvent struct {
	ReplyToken string
	UserID     string
	EventID    string
}

// TextMessageEvent is a text message sent to the bot.
type TextMessageEvent struct {
	ReplyToken string
	UserID     string
	Text       string
	EventID    string
}

// OtherEvent is any event the bot does not handle, including non-text messages.
type OtherEvent struct {
	EventType  string
	ReplyToken string
	EventID    string
}

func (FollowEvent) Type() string      { return "follow" }
func (TextMessageEvent) Type() string { return "message" }
func (e OtherEvent) Type() string     { return e.EventType }

func (e FollowEvent) WebhookEventID() string      { return e.EventID }
func (e TextMessageEvent) WebhookEventID() string { return e.EventID }
func (e OtherEvent) WebhookEventID() string       { return e.EventID }

func (FollowEvent) isEvent()      {}
func (TextMessageEvent) isEvent() {}
func (OtherEvent) isEvent()       {}

// FromCallback converts every event of a parsed callback, keeping delivery order.
func FromCallback(cb *webhook.CallbackRequest) []Event {
	if cb == nil {
		return nil
	}
	out := make([]Event, 0, len(cb.Events))
	for _, e := range cb.Events {
		out = append(out, fromSDKEvent(e))
	}
	return out
}

func fromSDKEvent(e webhook.EventInterface) Event {
	switch ev := e.(type) {
	case webhook.FollowEvent:
		return FollowEvent{
			ReplyToken: ev.ReplyToken,
			UserID:     sourceUserID(ev.Source),
			EventID:    ev.WebhookEventId,
		}
	case webhook.MessageEvent:
		if msg, ok := ev.Message.(webhook.TextMessageContent); ok {
			return TextMessageEvent{
				ReplyToken: ev.ReplyToken,
				UserID:     sourceUserID(ev.Source),
				Text:       msg.Text,
				EventID:    ev.WebhookEventId,
			}
		}
		return OtherEvent{EventType: "message", ReplyToken: ev.ReplyToken, EventID: ev.WebhookEventId}
	default:
		return OtherEvent{EventType: e.GetType()}
	}
}

func sourceUserID(src webhook.SourceInterface) string {
	switch s := src.(type) {
	case webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.UserId
	case webhook.RoomSource:
		return s.UserId
	default:
		return ""
	}
}
