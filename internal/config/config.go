package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	AdminEmail                    string `mapstructure:"ADMIN_EMAIL"`
	SiteMail                      string `mapstructure:"SITE_MAIL"`
	AdminNotificationEnabled      bool   `mapstructure:"ADMIN_NOTIFICATION_ENABLED"`
	SMTPAddr                      string `mapstructure:"SMTP_ADDR"`
	SMTPFrom                      string `mapstructure:"SMTP_FROM"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "events.db")
	viper.SetDefault("SMTP_FROM", "noreply@localhost")

	viper.BindEnv("ADMIN_EMAIL")
	viper.BindEnv("SITE_MAIL")
	viper.BindEnv("ADMIN_NOTIFICATION_ENABLED")
	viper.BindEnv("SMTP_ADDR")
	viper.BindEnv("SMTP_FROM")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// AdminRecipient resolves the admin notification address: the configured
// admin email, falling back to the site-wide mail address.
func (c *Config) AdminRecipient() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.SiteMail
}
