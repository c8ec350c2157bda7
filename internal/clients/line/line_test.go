package line

import (
	"context"
	"testing"

	"github.com/DIMO-Network/line-reply-bot/internal/services/richmenu"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New("")
	require.Error(t, err)

	client, err := New("token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClient_CanceledContext(t *testing.T) {
	t.Parallel()

	client, err := New("token")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.GetDisplayName(ctx, "U1")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, client.ReplyText(ctx, "token", "text"), context.Canceled)
	require.ErrorIs(t, client.SetDefaultRichMenu(ctx, "richmenu-1"), context.Canceled)
}

func TestToRichMenuRequest(t *testing.T) {
	t.Parallel()

	menu := richmenu.Menu{
		Name:        "menu",
		ChatBarText: "メニュー",
		Width:       2500,
		Height:      1686,
		Selected:    true,
		Areas: []richmenu.Area{
			{X: 0, Y: 0, Width: 1250, Height: 843, Label: "予約", URI: "https://a.example"},
			{X: 1250, Y: 843, Width: 1250, Height: 843, Label: "Web", URI: "https://d.example"},
		},
	}

	req := toRichMenuRequest(menu)
	require.NotNil(t, req.Size)
	assert.EqualValues(t, 2500, req.Size.Width)
	assert.EqualValues(t, 1686, req.Size.Height)
	assert.True(t, req.Selected)
	assert.Equal(t, "menu", req.Name)
	assert.Equal(t, "メニュー", req.ChatBarText)
	require.Len(t, req.Areas, 2)

	second := req.Areas[1]
	assert.EqualValues(t, 1250, second.Bounds.X)
	assert.EqualValues(t, 843, second.Bounds.Y)
	action, ok := second.Action.(*messaging_api.UriAction)
	require.True(t, ok)
	assert.Equal(t, "Web", action.Label)
	assert.Equal(t, "https://d.example", action.Uri)
}
