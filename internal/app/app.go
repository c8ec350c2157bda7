package app

import (
	"context"
	"fmt"

	_ "github.com/DIMO-Network/line-reply-bot/docs" // Import Swagger docs
	"github.com/DIMO-Network/line-reply-bot/internal/clients/line"
	"github.com/DIMO-Network/line-reply-bot/internal/config"
	"github.com/DIMO-Network/line-reply-bot/internal/controllers/callback"
	"github.com/DIMO-Network/line-reply-bot/internal/services/replydispatcher"
	"github.com/DIMO-Network/line-reply-bot/internal/services/richmenu"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// RootMessage is returned by GET /.
const RootMessage = "LINE Bot is running!"

// CreateServers builds the LINE client and reply table, provisions the rich
// menu when enabled and returns the web app.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	lineClient, err := line.New(settings.LineChannelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}

	table, err := replydispatcher.LoadTable(settings.ReplyRulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load reply rules: %w", err)
	}
	logger.Info().Int("rules", table.Len()).Msg("Reply table loaded")

	if settings.RichMenu.Enabled {
		provisionRichMenu(ctx, logger, lineClient, settings.RichMenu)
	}

	dispatcher := replydispatcher.New(lineClient, table)

	app, err := CreateFiberApp(logger, settings, dispatcher)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings, dispatcher callback.Dispatcher) (*fiber.App, error) {
	logger.Info().Msg("Starting LINE reply bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RootMessage)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	callbackController, err := callback.NewCallbackController(settings.LineChannelSecret, dispatcher)
	if err != nil {
		return nil, fmt.Errorf("failed to create callback controller: %w", err)
	}
	logger.Info().Msg("Registering routes...")

	app.Post("/callback", callbackController.HandleCallback)

	return app, nil
}

// provisionRichMenu is best effort: failures are logged and startup continues.
func provisionRichMenu(ctx context.Context, logger zerolog.Logger, api richmenu.API, settings config.RichMenuSettings) {
	provisioner := richmenu.NewProvisioner(api, settings)
	richMenuID, err := provisioner.Provision(logger.WithContext(ctx))
	if err != nil {
		logger.Warn().Err(err).Str("rich_menu_id", richMenuID).Msg("Rich menu provisioning failed; continuing without default rich menu")
		return
	}
	logger.Info().Str("rich_menu_id", richMenuID).Msg("Rich menu provisioned")
}
