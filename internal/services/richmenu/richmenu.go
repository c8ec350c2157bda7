//go:generate go tool mockgen -source=richmenu.go -destination=richmenu_mock_test.go -package=richmenu
package richmenu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/DIMO-Network/line-reply-bot/internal/config"
	"github.com/rs/zerolog"
)

const (
	// MenuWidth and MenuHeight are the full-size LINE rich menu dimensions.
	MenuWidth  = 2500
	MenuHeight = 1686

	sniffLen = 512
)

// ErrInvalidConfig is returned when rich menu settings cannot produce a menu.
var ErrInvalidConfig = errors.New("invalid rich menu configuration")

// Menu is a rich menu layout.
type Menu struct {
	Name        string
	ChatBarText string
	Width       int
	Height      int
	Selected    bool
	Areas       []Area
}

// Area is a tappable rectangle bound to a URI action.
type Area struct {
	X, Y, Width, Height int
	Label               string
	URI                 string
}

// API is the subset of the LINE rich menu endpoints used at startup.
type API interface {
	CreateRichMenu(ctx context.Context, menu Menu) (string, error)
	UploadRichMenuImage(ctx context.Context, richMenuID, contentType string, image io.Reader) error
	SetDefaultRichMenu(ctx context.Context, richMenuID string) error
}

// Provisioner creates the account-wide default rich menu.
type Provisioner struct {
	api      API
	settings config.RichMenuSettings
}

// NewProvisioner creates a Provisioner.
func NewProvisioner(api API, settings config.RichMenuSettings) *Provisioner {
	return &Provisioner{
		api:      api,
		settings: settings,
	}
}

// BuildMenu lays out four URI actions on a 2x2 grid.
func BuildMenu(settings config.RichMenuSettings) (Menu, error) {
	if len(settings.ActionURLs) != config.RichMenuActionCount {
		return Menu{}, fmt.Errorf("%w: expected %d action URLs, got %d", ErrInvalidConfig, config.RichMenuActionCount, len(settings.ActionURLs))
	}
	if len(settings.ActionLabels) != config.RichMenuActionCount {
		return Menu{}, fmt.Errorf("%w: expected %d action labels, got %d", ErrInvalidConfig, config.RichMenuActionCount, len(settings.ActionLabels))
	}

	const cols, rows = 2, 2
	cellW, cellH := MenuWidth/cols, MenuHeight/rows
	areas := make([]Area, 0, config.RichMenuActionCount)
	for i, uri := range settings.ActionURLs {
		if uri == "" {
			return Menu{}, fmt.Errorf("%w: action URL %d is empty", ErrInvalidConfig, i)
		}
		areas = append(areas, Area{
			X:      (i % cols) * cellW,
			Y:      (i / cols) * cellH,
			Width:  cellW,
			Height: cellH,
			Label:  settings.ActionLabels[i],
			URI:    uri,
		})
	}

	return Menu{
		Name:        settings.Name,
		ChatBarText: settings.ChatBarText,
		Width:       MenuWidth,
		Height:      MenuHeight,
		Selected:    true,
		Areas:       areas,
	}, nil
}

// Provision validates the settings and image, then creates the menu, uploads
// the image and sets it as default. It stops at the first failing step and
// returns the rich menu id created so far.
func (p *Provisioner) Provision(ctx context.Context) (string, error) {
	menu, err := BuildMenu(p.settings)
	if err != nil {
		return "", err
	}

	image, contentType, err := openImage(p.settings.ImagePath)
	if err != nil {
		return "", err
	}
	defer image.Close() //nolint:errcheck

	logger := zerolog.Ctx(ctx)

	richMenuID, err := p.api.CreateRichMenu(ctx, menu)
	if err != nil {
		return "", fmt.Errorf("failed to create rich menu: %w", err)
	}
	logger.Info().Str("rich_menu_id", richMenuID).Msg("Created rich menu")

	if err := p.api.UploadRichMenuImage(ctx, richMenuID, contentType, image); err != nil {
		return richMenuID, fmt.Errorf("failed to upload rich menu image: %w", err)
	}

	if err := p.api.SetDefaultRichMenu(ctx, richMenuID); err != nil {
		return richMenuID, fmt.Errorf("failed to set default rich menu: %w", err)
	}
	logger.Info().Str("rich_menu_id", richMenuID).Msg("Default rich menu set")

	return richMenuID, nil
}

// openImage opens a PNG or JPEG file and rewinds it after sniffing the content type.
func openImage(path string) (*os.File, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: image path is empty", ErrInvalidConfig)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to open image: %w", ErrInvalidConfig, err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = f.Close()
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if contentType != "image/png" && contentType != "image/jpeg" {
		_ = f.Close()
		return nil, "", fmt.Errorf("%w: image must be PNG or JPEG, got %s", ErrInvalidConfig, contentType)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, "", fmt.Errorf("failed to rewind image: %w", err)
	}
	return f, contentType, nil
}
