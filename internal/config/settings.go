package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSetting is returned when a required setting is empty.
	ErrMissingSetting = errors.New("missing required setting")
	// ErrInvalidSetting is returned when a setting has an unusable value.
	ErrInvalidSetting = errors.New("invalid setting")
)

const (
	defaultPort        = 8080
	defaultMonPort     = 8888
	defaultLogLevel    = "info"
	defaultServiceName = "line-reply-bot"

	defaultRichMenuName        = "default-rich-menu"
	defaultRichMenuChatBarText = "メニュー"

	// RichMenuActionCount is the number of tappable areas on the default rich menu.
	RichMenuActionCount = 4
)

// DefaultRichMenuActionLabels are used when RICH_MENU_ACTION_LABELS is not set.
var DefaultRichMenuActionLabels = []string{"予約", "営業時間", "お問い合わせ", "Webサイト"}

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	LineChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineChannelSecret      string `env:"LINE_CHANNEL_SECRET"`

	// ReplyRulesFile optionally replaces the built-in reply table.
	ReplyRulesFile string `env:"REPLY_RULES_FILE"`

	RichMenu RichMenuSettings `envPrefix:"RICH_MENU_"`
}

// RichMenuSettings configures the optional startup rich menu provisioning.
type RichMenuSettings struct {
	Enabled      bool     `env:"ENABLED"`
	ImagePath    string   `env:"IMAGE_PATH"`
	Name         string   `env:"NAME"`
	ChatBarText  string   `env:"CHAT_BAR_TEXT"`
	ActionURLs   []string `env:"ACTION_URLS"`
	ActionLabels []string `env:"ACTION_LABELS"`
}

// ApplyDefaults fills optional settings that were left empty.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.RichMenu.Name == "" {
		s.RichMenu.Name = defaultRichMenuName
	}
	if s.RichMenu.ChatBarText == "" {
		s.RichMenu.ChatBarText = defaultRichMenuChatBarText
	}
	if len(s.RichMenu.ActionLabels) == 0 {
		s.RichMenu.ActionLabels = append([]string(nil), DefaultRichMenuActionLabels...)
	}
}

// Validate reports configuration that would prevent the bot from working.
// Both LINE credentials are required; the service must not start without them.
func (s *Settings) Validate() error {
	var errs []error
	if s.LineChannelAccessToken == "" {
		errs = append(errs, fmt.Errorf("%w: LINE_CHANNEL_ACCESS_TOKEN", ErrMissingSetting))
	}
	if s.LineChannelSecret == "" {
		errs = append(errs, fmt.Errorf("%w: LINE_CHANNEL_SECRET", ErrMissingSetting))
	}
	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: PORT %d out of range", ErrInvalidSetting, s.Port))
	}
	if s.MonPort < 0 || s.MonPort > 65535 {
		errs = append(errs, fmt.Errorf("%w: MON_PORT %d out of range", ErrInvalidSetting, s.MonPort))
	}
	return errors.Join(errs...)
}
