package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8480",
			BotToken:      "123456:real-token",
			SessionSecret: "secure-secret-at-least-32-chars-long",
			DBPassword:    "secure-password",
			DBSSLMode:     "require",
			Env:           "development",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing bot token", func(c *Config) { c.BotToken = "" }, true},
		{"missing session secret", func(c *Config) { c.SessionSecret = "" }, true},
		{"default bot token in development", func(c *Config) { c.BotToken = DefaultBotToken }, false},
		{"default bot token in production", func(c *Config) {
			c.Env = "production"
			c.BotToken = DefaultBotToken
		}, true},
		{"short session secret in production", func(c *Config) {
			c.Env = "production"
			c.SessionSecret = "short"
		}, true},
		{"default db password in production", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = "password"
		}, true},
		{"strong production config", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8480", c.Port)
	assert.Equal(t, "test", c.Env)
	assert.NotEmpty(t, c.RedisURL)
}
