//go:generate go tool mockgen -source=callback_controller.go -destination=callback_controller_mock_test.go -package=callback
package callback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/line-reply-bot/internal/lineevents"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/rs/zerolog"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the request body.
const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature is returned when the body does not match X-Line-Signature.
var ErrInvalidSignature = errors.New("invalid signature")

// Dispatcher replies to a single inbound event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event lineevents.Event) error
}

// CallbackController receives LINE webhook callbacks.
type CallbackController struct {
	channelSecret string
	dispatcher    Dispatcher
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(channelSecret string, dispatcher Dispatcher) (*CallbackController, error) {
	if channelSecret == "" {
		return nil, errors.New("channel secret is empty")
	}
	if dispatcher == nil {
		return nil, errors.New("dispatcher is nil")
	}
	return &CallbackController{
		channelSecret: channelSecret,
		dispatcher:    dispatcher,
	}, nil
}

// HandleCallback godoc
// @Summary      Receive LINE webhook events
// @Description  Verifies the X-Line-Signature header against the channel secret, then replies to every follow and text message event in the payload. Other event types are acknowledged and ignored.
// @Tags         Callback
// @Accept       json
// @Produce      plain
// @Param        X-Line-Signature  header  string  true  "Base64 HMAC-SHA256 of the body"
// @Success      200  {string}  string  "OK"
// @Failure      400  "Invalid signature or request payload"
// @Failure      500  "Reply could not be sent"
// @Router       /callback [post]
func (cc *CallbackController) HandleCallback(c *fiber.Ctx) error {
	body := c.Body()
	if !webhook.ValidateSignature(cc.channelSecret, c.Get(SignatureHeader), body) {
		return richerrors.Error{
			ExternalMsg: "Invalid signature",
			Err:         ErrInvalidSignature,
			Code:        fiber.StatusBadRequest,
		}
	}

	var cb webhook.CallbackRequest
	if err := json.Unmarshal(body, &cb); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	ctx := c.UserContext()
	logger := zerolog.Ctx(ctx)
	events := lineevents.FromCallback(&cb)
	logger.Debug().Int("events", len(events)).Msg("Received callback")

	var errs []error
	for _, event := range events {
		switch event.(type) {
		case lineevents.FollowEvent, lineevents.TextMessageEvent:
		default:
			logger.Debug().
				Str("event_type", event.Type()).
				Str("webhook_event_id", event.WebhookEventID()).
				Msg("Ignoring unhandled event")
			continue
		}

		if err := cc.dispatcher.Dispatch(ctx, event); err != nil {
			logger.Error().Err(err).
				Str("event_type", event.Type()).
				Str("webhook_event_id", event.WebhookEventID()).
				Msg("Failed to handle event")
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to handle %d of %d events: %w", len(errs), len(events), errors.Join(errs...))
	}

	return c.SendString("OK")
}
