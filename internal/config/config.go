package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/chatters/internal/engine"
	"github.com/matheus3301/chatters/internal/export"
	"github.com/matheus3301/chatters/internal/hooks"
	"go.uber.org/zap/zapcore"
)

// Backend kinds.
const (
	KindLocal    = "local"
	KindWhatsApp = "whatsapp"
	KindMatrix   = "matrix"
	KindRelay    = "relay"
)

// Global represents ~/.chatters/config.toml.
type Global struct {
	DefaultProfile string `toml:"default_profile"`
}

// Config is a profile's config.toml.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Engine   Engine        `toml:"engine"`
	Archive  Archive       `toml:"archive"`
	Hooks    hooks.Config  `toml:"hooks"`
	Export   export.Config `toml:"export"`
	HTTP     HTTP          `toml:"http"`
	Backends []Backend     `toml:"backends"`
}

// Engine holds the sync engine tunables. Zero values take the engine defaults.
type Engine struct {
	BackfillDepth int           `toml:"backfill_depth"`
	PageSize      int           `toml:"page_size"`
	Lanes         int           `toml:"lanes"`
	LaneBuffer    int           `toml:"lane_buffer"`
	SendTimeout   time.Duration `toml:"send_timeout"`
	ParkedUpdates int           `toml:"parked_updates"`
	Backoff       Backoff       `toml:"backoff"`
}

type Backoff struct {
	Initial    time.Duration `toml:"initial"`
	Max        time.Duration `toml:"max"`
	Multiplier float64       `toml:"multiplier"`
	MaxRetries int           `toml:"max_retries"`
}

// Archive configures the SQLite message archive.
type Archive struct {
	Enabled bool `toml:"enabled"`
	// Path defaults to archive.db in the profile directory.
	Path string `toml:"path"`
	// RestoreMessages bounds the messages per conversation loaded at startup.
	RestoreMessages int `toml:"restore_messages"`
}

// HTTP configures the debug listener. An empty Addr disables it.
type HTTP struct {
	Addr string `toml:"addr"`
}

// Backend is one [[backends]] entry. Which fields apply depends on Kind.
type Backend struct {
	ID          string        `toml:"id"`
	Kind        string        `toml:"kind"`
	Disabled    bool          `toml:"disabled"`
	SendTimeout time.Duration `toml:"send_timeout"`

	// local
	EchoDelay time.Duration `toml:"echo_delay"`

	// whatsapp and matrix
	DeviceName string `toml:"device_name"`

	// matrix
	Homeserver  string `toml:"homeserver"`
	UserID      string `toml:"user_id"`
	AccessToken string `toml:"access_token"`
	Password    string `toml:"password"`

	// relay
	URL               string        `toml:"url"`
	Token             string        `toml:"token"`
	HeartbeatInterval time.Duration `toml:"heartbeat_interval"`
}

// Default is the configuration used when a profile has no config file: a
// single local backend, with the archive on.
func Default() *Config {
	cfg := &Config{
		Archive:  Archive{Enabled: true},
		Backends: []Backend{{ID: "local", Kind: KindLocal}},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a profile config.
func Load(path string) (*Config, error) {
	cfg := &Config{Archive: Archive{Enabled: true}}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Export.Prefix == "" {
		c.Export.Prefix = export.DefaultPrefix
	}
	for i := range c.Backends {
		b := &c.Backends[i]
		if b.DeviceName == "" {
			b.DeviceName = "Chatters"
		}
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	seen := make(map[string]bool)
	for i, b := range c.Backends {
		where := fmt.Sprintf("backends[%d]", i)
		switch {
		case b.ID == "":
			errs = append(errs, fmt.Errorf("%s: id is required", where))
		case strings.Contains(b.ID, ":"):
			errs = append(errs, fmt.Errorf("%s: id %q must not contain ':'", where, b.ID))
		case seen[b.ID]:
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, b.ID))
		}
		seen[b.ID] = true

		switch b.Kind {
		case KindLocal, KindWhatsApp:
		case KindMatrix:
			if b.Homeserver == "" || b.UserID == "" {
				errs = append(errs, fmt.Errorf("%s: matrix needs homeserver and user_id", where))
			}
			if b.AccessToken == "" && b.Password == "" {
				errs = append(errs, fmt.Errorf("%s: matrix needs access_token or password", where))
			}
		case KindRelay:
			if b.URL == "" || b.Token == "" {
				errs = append(errs, fmt.Errorf("%s: relay needs url and token", where))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: unknown kind %q", where, b.Kind))
		}
	}
	if c.Archive.RestoreMessages < 0 {
		errs = append(errs, errors.New("archive.restore_messages must not be negative"))
	}
	return errors.Join(errs...)
}

// Enabled returns the backends that are not disabled.
func (c *Config) Enabled() []Backend {
	var out []Backend
	for _, b := range c.Backends {
		if !b.Disabled {
			out = append(out, b)
		}
	}
	return out
}

// Policy converts the engine section into an engine policy.
func (e Engine) Policy() engine.Policy {
	return engine.Policy{
		BackfillDepth: e.BackfillDepth,
		PageSize:      e.PageSize,
		Lanes:         e.Lanes,
		LaneBuffer:    e.LaneBuffer,
		SendTimeout:   e.SendTimeout,
		ParkedUpdates: e.ParkedUpdates,
		Backoff: engine.BackoffPolicy{
			Initial:    e.Backoff.Initial,
			Max:        e.Backoff.Max,
			Multiplier: e.Backoff.Multiplier,
			MaxRetries: e.Backoff.MaxRetries,
		},
	}
}

// LoadGlobal reads the global config. Returns zero config and error if file missing.
func LoadGlobal(path string) (*Global, error) {
	var cfg Global
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveGlobal writes the global config, creating parent dirs as needed.
func SaveGlobal(path string, cfg *Global) error {
	return save(path, cfg)
}

// Save writes a profile config.
func Save(path string, cfg *Config) error {
	return save(path, cfg)
}

func save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(v)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
