package bot

import (
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"

	"github.com/starshine-sys/mirror/state"
)

type Config struct {
	Auth  AuthConfig       `toml:"auth"`
	Bot   BotConfig        `toml:"bot"`
	Cache state.CacheFlags `toml:"cache"`
}

type AuthConfig struct {
	Discord string `toml:"discord"`
	Sentry  string `toml:"sentry"`
}

type BotConfig struct {
	// MaxMessages caps each channel's message cache. Zero means unlimited.
	MaxMessages int `toml:"max_messages"`
	// TypingTimeoutSeconds overrides the typing indicator expiry.
	TypingTimeoutSeconds int `toml:"typing_timeout_seconds"`
	// BridgeTimeoutSeconds overrides how long deleted guilds stay queryable.
	BridgeTimeoutSeconds int `toml:"bridge_timeout_seconds"`
}

func (c BotConfig) TypingTimeout() time.Duration {
	return time.Duration(c.TypingTimeoutSeconds) * time.Second
}

func (c BotConfig) BridgeTimeout() time.Duration {
	return time.Duration(c.BridgeTimeoutSeconds) * time.Second
}

func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}

	err = toml.Unmarshal(b, &c)
	if err != nil {
		return c, errors.Wrap(err, "unmarshal config file")
	}

	if c.Auth.Discord == "" {
		c.Auth.Discord = os.Getenv("TOKEN")
	}
	return c, nil
}
