// File: config.go
// Title: Verifier Configuration
// Description: Loads verifier settings from an optional TOML, YAML or JSON
//              file, VERIFIER_ environment variables and command-line flags,
//              and maps them to verify options.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation on viper and pflag

package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/log"
	"github.com/msto63/verifier/verify"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "VERIFIER"

// ConfigName is the base name of the configuration file searched for when no
// path is given
const ConfigName = "verifier"

// Config holds the verifier settings
type Config struct {
	// Locale is the BCP 47 tag messages are rendered in.
	Locale string `mapstructure:"locale"`

	// LocalesDir is a directory with bundles that override the embedded ones.
	LocalesDir string `mapstructure:"locales_dir"`

	// Fallback enables the english fallback for missing keys.
	Fallback bool `mapstructure:"fallback"`

	// Watch reloads LocalesDir when its files change.
	Watch bool `mapstructure:"watch"`

	// DefaultName names values verified without a name.
	DefaultName string `mapstructure:"default_name"`

	// PanicOnFailure makes a failing check panic.
	PanicOnFailure bool `mapstructure:"panic_on_failure"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds the logging settings
type LogConfig struct {
	Level  log.Level  `mapstructure:"level"`
	Format log.Format `mapstructure:"format"`
}

// keys lists every setting. Flags use the same names in kebab case.
var keys = []string{
	"locale",
	"locales_dir",
	"fallback",
	"watch",
	"default_name",
	"panic_on_failure",
	"log.level",
	"log.format",
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Locale:   verify.DefaultLocale.String(),
		Fallback: true,
		Log: LogConfig{
			Level:  log.LevelWarn,
			Format: log.FormatConsole,
		},
	}
}

// FlagName returns the command-line flag bound to key
func FlagName(key string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(key)
}

// RegisterFlags adds a flag for every setting to flags
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.String(FlagName("locale"), def.Locale, "message `locale`")
	flags.String(FlagName("locales_dir"), def.LocalesDir, "`directory` with bundles overriding the embedded ones")
	flags.Bool(FlagName("fallback"), def.Fallback, "fall back to english for missing messages")
	flags.Bool(FlagName("watch"), def.Watch, "reload the locales directory on change")
	flags.String(FlagName("default_name"), def.DefaultName, "`name` of values verified without a name")
	flags.Bool(FlagName("panic_on_failure"), def.PanicOnFailure, "panic on the first failing check")
	flags.String(FlagName("log.level"), def.Log.Level.String(), "severity `level` of log messages")
	flags.String(FlagName("log.format"), def.Log.Format.String(), "log `format` (json or console)")
}

// Load reads the configuration. An empty path searches the working directory
// for a verifier.{toml,yaml,yml,json} file, which may be missing. flags may be
// nil; only flags registered under a setting's flag name are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("locales_dir", def.LocalesDir)
	v.SetDefault("fallback", def.Fallback)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("default_name", def.DefaultName)
	v.SetDefault("panic_on_failure", def.PanicOnFailure)
	v.SetDefault("log.level", def.Log.Level.String())
	v.SetDefault("log.format", def.Log.Format.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range keys {
			flag := flags.Lookup(FlagName(key))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, mdwerror.Wrap(err, "failed to bind flag").
					WithCode(mdwerror.CodeConfigError).
					WithOperation("config.Load").
					WithDetail("flag", flag.Name)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, mdwerror.Wrap(err, "failed to read configuration file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)),
	}

	var config Config
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", v.ConfigFileUsed())
	}
	return &config, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vf, err := verify.New(verify.WithLogger(log.Nop()))
	if err != nil {
		return err
	}
	defer vf.Close()

	if err := vf.String(c.Locale, "locale").Not().Blank().Err(); err != nil {
		return invalid(err)
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("locale", c.Locale)
	}
	if err := vf.LocaleOf(tag, "locale").Not().Root().Err(); err != nil {
		return invalid(err)
	}
	if c.Watch {
		if err := vf.String(c.LocalesDir, "locales_dir").Not().Blank().Err(); err != nil {
			return invalid(err)
		}
	}
	if c.LocalesDir != "" {
		info, err := os.Stat(c.LocalesDir)
		if err != nil {
			return mdwerror.Wrap(err, "locales directory not accessible").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("locales_dir", c.LocalesDir)
		}
		isDir := func(string) bool { return info.IsDir() }
		if err := vf.String(c.LocalesDir, "locales_dir").ThatWith(isDir, "be a directory").Err(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func invalid(err error) error {
	return mdwerror.Wrap(err, "invalid configuration").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate")
}

// Tag returns the parsed locale, or the default locale if it does not parse
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil || tag == language.Und {
		return verify.DefaultLocale
	}
	return tag
}

// Logger builds the logger described by the log settings
func (c *Config) Logger(w io.Writer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Output: w,
		Name:   "verifier",
	})
}

// Options maps the settings to verify options. logger may be nil.
func (c *Config) Options(logger *log.Logger) []verify.Option {
	opts := []verify.Option{
		verify.WithLocale(c.Tag()),
		verify.WithFallback(c.Fallback),
		verify.WithPanicOnFailure(c.PanicOnFailure),
	}
	if c.LocalesDir != "" {
		opts = append(opts, verify.WithLocalesDir(c.LocalesDir), verify.WithWatch(c.Watch))
	}
	if c.DefaultName != "" {
		opts = append(opts, verify.WithDefaultName(c.DefaultName))
	}
	if logger != nil {
		opts = append(opts, verify.WithLogger(logger))
	}
	return opts
}

// NewVerifier validates the configuration and creates a verifier from it
func (c *Config) NewVerifier(logger *log.Logger) (*verify.Verifier, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return verify.New(c.Options(logger)...)
}
