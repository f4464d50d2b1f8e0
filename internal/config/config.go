package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/live"
	"github.com/vango-dev/vangoui/pkg/toast"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vangoui.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export directory.
	DefaultOutput = "dist"

	// DefaultRegion is the default S3 region for publish.
	DefaultRegion = "us-east-1"

	// DefaultMaxToasts is the default toast queue capacity.
	DefaultMaxToasts = 5
)

// Config represents the complete vangoui.json configuration.
type Config struct {
	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Live contains live session tuning.
	Live LiveConfig `json:"live,omitempty"`

	// Toast contains defaults for toast queues.
	Toast ToastConfig `json:"toast,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g. "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// LiveConfig contains live session settings. Durations are Go duration
// strings.
type LiveConfig struct {
	ReadTimeout       string `json:"readTimeout,omitempty"`
	WriteTimeout      string `json:"writeTimeout,omitempty"`
	HeartbeatInterval string `json:"heartbeatInterval,omitempty"`
	MaxMessageSize    int64  `json:"maxMessageSize,omitempty"`
	MaxEventQueue     int    `json:"maxEventQueue,omitempty"`
}

// ToastConfig contains toast queue defaults.
type ToastConfig struct {
	// MaxToasts caps the number of queued toasts.
	MaxToasts int `json:"maxToasts,omitempty"`

	// Position is one of top-right, top-left, bottom-right, bottom-left,
	// top-center, bottom-center.
	Position string `json:"position,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled removes the /metrics endpoint and all collectors.
	Disabled bool `json:"disabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Output is the export directory.
	Output string `json:"output,omitempty"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for vangoui.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// Find looks for vangoui.json in dir and its parents and loads the first
// one found.
func Find(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	for d := abs; ; d = filepath.Dir(d) {
		path := filepath.Join(d, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return nil, errors.New("E141").
		WithDetail("No " + ConfigFileName + " found in " + abs + " or its parents").
		WithSuggestion("Create " + ConfigFileName + " or pass --config")
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E121").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}

	d := live.DefaultConfig()
	if c.Live.ReadTimeout == "" {
		c.Live.ReadTimeout = d.ReadTimeout.String()
	}
	if c.Live.WriteTimeout == "" {
		c.Live.WriteTimeout = d.WriteTimeout.String()
	}
	if c.Live.HeartbeatInterval == "" {
		c.Live.HeartbeatInterval = d.HeartbeatInterval.String()
	}
	if c.Live.MaxMessageSize == 0 {
		c.Live.MaxMessageSize = d.MaxMessageSize
	}
	if c.Live.MaxEventQueue == 0 {
		c.Live.MaxEventQueue = d.MaxEventQueue
	}

	if c.Toast.MaxToasts == 0 {
		c.Toast.MaxToasts = DefaultMaxToasts
	}
	if c.Toast.Position == "" {
		c.Toast.Position = string(toast.TopRight)
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "vangoui"
	}

	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return outOfRange("server.port", strconv.Itoa(c.Server.Port), "Port must be between 0 and 65535")
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}
	if _, err := c.LiveConfig(); err != nil {
		return err
	}
	if c.Toast.MaxToasts < 1 {
		return outOfRange("toast.maxToasts", strconv.Itoa(c.Toast.MaxToasts), "maxToasts must be at least 1")
	}
	if _, ok := toast.ParsePosition(c.Toast.Position); !ok {
		return outOfRange("toast.position", c.Toast.Position, "Use one of "+joinPositions())
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return outOfRange("log.level", c.Log.Level, "Use debug, info, warn or error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return outOfRange("log.format", c.Log.Format, "Use text or json")
	}
	return nil
}

func outOfRange(field, value, suggestion string) error {
	return errors.New("E122").
		WithDetailf("%s = %q", field, value).
		WithSuggestion(suggestion)
}

func joinPositions() string {
	names := make([]string, len(toast.Positions))
	for i, p := range toast.Positions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Address returns the listen address of the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ShutdownTimeout parses server.shutdownTimeout.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	return parseDuration("server.shutdownTimeout", c.Server.ShutdownTimeout)
}

// OutputPath returns the export directory, resolved against the config
// file's directory when relative.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Export.Output) {
		return c.Export.Output
	}
	return filepath.Join(c.Dir(), c.Export.Output)
}

// LiveConfig converts the live section into a live.Config. Hooks
// (logger, middleware, observers) are left for the caller.
func (c *Config) LiveConfig() (live.Config, error) {
	cfg := live.Config{
		MaxMessageSize: c.Live.MaxMessageSize,
		MaxEventQueue:  c.Live.MaxEventQueue,
	}
	var err error
	if cfg.ReadTimeout, err = parseDuration("live.readTimeout", c.Live.ReadTimeout); err != nil {
		return live.Config{}, err
	}
	if cfg.WriteTimeout, err = parseDuration("live.writeTimeout", c.Live.WriteTimeout); err != nil {
		return live.Config{}, err
	}
	if cfg.HeartbeatInterval, err = parseDuration("live.heartbeatInterval", c.Live.HeartbeatInterval); err != nil {
		return live.Config{}, err
	}
	if cfg.HeartbeatInterval >= cfg.ReadTimeout {
		return live.Config{}, outOfRange("live.heartbeatInterval", c.Live.HeartbeatInterval,
			"heartbeatInterval must be shorter than readTimeout")
	}
	return cfg, nil
}

// ToastOptions returns provider options for the toast section. Invalid
// values are skipped; Validate reports them.
func (c *Config) ToastOptions() []toast.Option {
	opts := []toast.Option{toast.WithMaxToasts(c.Toast.MaxToasts)}
	if pos, ok := toast.ParsePosition(c.Toast.Position); ok {
		opts = append(opts, toast.WithPosition(pos))
	}
	return opts
}

// Logger builds the slog logger described by the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, outOfRange(field, s, `Use a positive Go duration such as "30s"`)
	}
	return d, nil
}
