package line

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DIMO-Network/line-reply-bot/internal/services/richmenu"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// ErrExternalAPI wraps every failure returned by the LINE platform.
var ErrExternalAPI = errors.New("LINE API request failed")

// Client for the LINE Messaging API. It is read-only after construction and
// safe for concurrent use.
type Client struct {
	api  *messaging_api.MessagingApiAPI
	blob *messaging_api.MessagingApiBlobAPI
}

// New creates a new Client authorized by the channel access token.
func New(channelAccessToken string) (*Client, error) {
	if channelAccessToken == "" {
		return nil, errors.New("channel access token is empty")
	}
	api, err := messaging_api.NewMessagingApiAPI(channelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging API client: %w", err)
	}
	blob, err := messaging_api.NewMessagingApiBlobAPI(channelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging blob API client: %w", err)
	}
	return &Client{
		api:  api,
		blob: blob,
	}, nil
}

// GetDisplayName fetches the profile of a user who has added the bot.
func (c *Client) GetDisplayName(ctx context.Context, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	profile, err := c.api.GetProfile(userID)
	if err != nil {
		return "", fmt.Errorf("%w: get profile: %w", ErrExternalAPI, err)
	}
	return profile.DisplayName, nil
}

// ReplyText sends a single text message using a reply token.
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: reply message: %w", ErrExternalAPI, err)
	}
	return nil
}

// CreateRichMenu registers a rich menu layout and returns its id.
func (c *Client) CreateRichMenu(ctx context.Context, menu richmenu.Menu) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	resp, err := c.api.CreateRichMenu(toRichMenuRequest(menu))
	if err != nil {
		return "", fmt.Errorf("%w: create rich menu: %w", ErrExternalAPI, err)
	}
	return resp.RichMenuId, nil
}

// UploadRichMenuImage attaches the menu image.
func (c *Client) UploadRichMenuImage(ctx context.Context, richMenuID, contentType string, image io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.blob.SetRichMenuImage(richMenuID, contentType, image); err != nil {
		return fmt.Errorf("%w: set rich menu image: %w", ErrExternalAPI, err)
	}
	return nil
}

// SetDefaultRichMenu makes the menu the default for every user of the account.
func (c *Client) SetDefaultRichMenu(ctx context.Context, richMenuID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.api.SetDefaultRichMenu(richMenuID); err != nil {
		return fmt.Errorf("%w: set default rich menu: %w", ErrExternalAPI, err)
	}
	return nil
}

func toRichMenuRequest(menu richmenu.Menu) *messaging_api.RichMenuRequest {
	areas := make([]messaging_api.RichMenuArea, 0, len(menu.Areas))
	for _, a := range menu.Areas {
		areas = append(areas, messaging_api.RichMenuArea{
			Bounds: &messaging_api.RichMenuBounds{
				X:      int64(a.X),
				Y:      int64(a.Y),
				Width:  int64(a.Width),
				Height: int64(a.Height),
			},
			Action: &messaging_api.UriAction{
				Label: a.Label,
				Uri:   a.URI,
			},
		})
	}
	return &messaging_api.RichMenuRequest{
		Size: &messaging_api.RichMenuSize{
			Width:  int64(menu.Width),
			Height: int64(menu.Height),
		},
		Selected:    menu.Selected,
		Name:        menu.Name,
		ChatBarText: menu.ChatBarText,
		Areas:       areas,
	}
}
