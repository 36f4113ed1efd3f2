package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g. USERFORM_DISMISS_AFTER.
const EnvPrefix = "USERFORM"

// Keys shared by flags, environment variables and config files.
const (
	KeyAddr           = "addr"
	KeyDismissAfter   = "dismiss-after"
	KeySessionTTL     = "session-ttl"
	KeyLogLevel       = "log-level"
	KeyLogDevelopment = "log-development"
	KeyThemeVariant   = "theme-variant"
	KeyUISchema       = "uischema"
	KeyFormDocument   = "form-document"
	KeyOperationID    = "operation-id"
	KeyTemplatesDir   = "templates-dir"
	KeyAssetPrefix    = "asset-prefix"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved runtime configuration.
type Config struct {
	Addr           string
	DismissAfter   time.Duration
	SessionTTL     time.Duration
	LogLevel       string
	LogDevelopment bool
	ThemeVariant   string
	UISchemaDir    string
	FormDocument   string
	OperationID    string
	TemplatesDir   string
	AssetPrefix    string
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyDismissAfter, 3*time.Second)
	v.SetDefault(KeySessionTTL, 30*time.Minute)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyThemeVariant, "light")
	v.SetDefault(KeyUISchema, "")
	v.SetDefault(KeyFormDocument, "")
	v.SetDefault(KeyOperationID, "submitUserInfo")
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyAssetPrefix, "/assets")
}

// RegisterFlags declares the command line flags for every key.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyAddr, ":8080", "HTTP listen address")
	flags.Duration(KeyDismissAfter, 3*time.Second, "how long the success notice stays visible (0 disables auto-dismiss)")
	flags.Duration(KeySessionTTL, 30*time.Minute, "idle time after which a visitor's form is discarded")
	flags.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.Bool(KeyLogDevelopment, false, "human-friendly development logging")
	flags.String(KeyThemeVariant, "light", "theme variant (light, dark)")
	flags.String(KeyUISchema, "", "directory of UI overlay files (default: bundled overlay)")
	flags.String(KeyFormDocument, "", "OpenAPI document describing the form (default: bundled document)")
	flags.String(KeyOperationID, "submitUserInfo", "operation in the form document to render")
	flags.String(KeyTemplatesDir, "", "directory overriding the bundled page templates")
	flags.String(KeyAssetPrefix, "/assets", "URL prefix serving the stylesheet (empty inlines it)")
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Addr:           strings.TrimSpace(v.GetString(KeyAddr)),
		DismissAfter:   v.GetDuration(KeyDismissAfter),
		SessionTTL:     v.GetDuration(KeySessionTTL),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
		ThemeVariant:   strings.TrimSpace(v.GetString(KeyThemeVariant)),
		UISchemaDir:    strings.TrimSpace(v.GetString(KeyUISchema)),
		FormDocument:   strings.TrimSpace(v.GetString(KeyFormDocument)),
		OperationID:    strings.TrimSpace(v.GetString(KeyOperationID)),
		TemplatesDir:   strings.TrimSpace(v.GetString(KeyTemplatesDir)),
		AssetPrefix:    strings.TrimRight(strings.TrimSpace(v.GetString(KeyAssetPrefix)), "/"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalid, KeyAddr))
	}
	if c.DismissAfter < 0 {
		errs = append(errs, fmt.Errorf("%w: %s must not be negative", ErrInvalid, KeyDismissAfter))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive", ErrInvalid, KeySessionTTL))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err))
	}
	if c.OperationID == "" {
		errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalid, KeyOperationID))
	}
	if c.AssetPrefix != "" && !strings.HasPrefix(c.AssetPrefix, "/") {
		errs = append(errs, fmt.Errorf("%w: %s must start with /", ErrInvalid, KeyAssetPrefix))
	}
	return errors.Join(errs...)
}
