package bot

import (
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/tracreed/ebina/metrics"
	"github.com/tracreed/ebina/options"
	"github.com/tracreed/ebina/webhook"
)

type Config struct {
	Auth    AuthConfig    `toml:"auth"`
	Bot     BotConfig     `toml:"bot"`
	Web     WebConfig     `toml:"web"`
	Webhook WebhookConfig `toml:"webhook"`
}

type AuthConfig struct {
	Discord  string `toml:"discord"`
	Postgres string `toml:"postgres"`
	Redis    string `toml:"redis"`
	Sentry   string `toml:"sentry"`

	Influx metrics.InfluxConfig `toml:"influx"`
	Osu    OsuConfig            `toml:"osu"`

	SauceNAO    string `toml:"saucenao"`
	OpenWeather string `toml:"openweather"`
	Wolfram     string `toml:"wolfram"`
}

type OsuConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

type BotConfig struct {
	Owners   []discord.UserID `toml:"owners"`
	Prefixes []string         `toml:"prefixes"`

	// NoAutoMigrate specifies if migrations should be done automatically when the bot starts.
	// If this is set to true, migrations must be done manually by running the `./ebina migrate` command.
	NoAutoMigrate bool `toml:"no_auto_migrate"`

	// OptionsTimeout overrides how long option lists wait for a reply, in seconds.
	// Unset means the protocol default of 60 seconds; mostly useful for testing.
	OptionsTimeout int `toml:"options_timeout"`
	// PrefixCacheTTL is how long guild prefixes are cached, in seconds.
	PrefixCacheTTL int `toml:"prefix_cache_ttl"`
}

// Timeout returns the option list timeout.
func (c BotConfig) Timeout() time.Duration {
	if c.OptionsTimeout <= 0 {
		return options.DefaultTimeout
	}
	return time.Duration(c.OptionsTimeout) * time.Second
}

// CacheTTL returns how long guild prefixes are cached.
func (c BotConfig) CacheTTL() time.Duration {
	if c.PrefixCacheTTL <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.PrefixCacheTTL) * time.Second
}

type WebConfig struct {
	Listen string `toml:"listen"`
	Name   string `toml:"name"`
}

type WebhookConfig struct {
	Listen string `toml:"listen"`
	Secret string `toml:"secret"`
	// Branch is the ref that triggers a redeploy, such as "refs/heads/main".
	Branch string `toml:"branch"`

	Steps []webhook.Step `toml:"steps"`
}

const (
	defaultPrefix = "!"
	defaultWeb    = ":8080"
	defaultHook   = ":8081"
	defaultBranch = "refs/heads/master"
	defaultName   = "Ebina"
)

func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}

	c, err = ParseConfig(string(b))
	if err != nil {
		return c, err
	}

	c.overrideFromEnv(os.LookupEnv)
	return c, nil
}

// ParseConfig parses a TOML configuration and fills in defaults.
func ParseConfig(s string) (c Config, err error) {
	_, err = toml.Decode(s, &c)
	if err != nil {
		return c, errors.Wrap(err, "unmarshal config")
	}

	if len(c.Bot.Prefixes) == 0 {
		c.Bot.Prefixes = []string{defaultPrefix}
	}
	if c.Web.Listen == "" {
		c.Web.Listen = defaultWeb
	}
	if c.Web.Name == "" {
		c.Web.Name = defaultName
	}
	if c.Webhook.Listen == "" {
		c.Webhook.Listen = defaultHook
	}
	if c.Webhook.Branch == "" {
		c.Webhook.Branch = defaultBranch
	}
	return c, nil
}

func (c *Config) overrideFromEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("EBINA_TOKEN"); ok && v != "" {
		c.Auth.Discord = v
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.Auth.Postgres = v
	}
	if v, ok := lookup("REDIS"); ok && v != "" {
		c.Auth.Redis = v
	}
}
