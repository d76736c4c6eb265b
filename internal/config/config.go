package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/hevystats/pkg"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8000
	DefaultHevyBaseURL     = "https://api.hevyapp.com"
	DefaultHevyPageSize    = 10
	DefaultTimezone        = "Europe/Rome"
	DefaultSyncCooldownSec = 300
	DefaultCacheTTLSec     = 60
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// postgres
	DatabaseURL string `toml:"database_url"`
	// redis
	RedisEnabled bool   `toml:"redis_enabled"`
	RedisHost    string `toml:"redis_host"`
	RedisPort    string `toml:"redis_port"`
	RedisDB      int    `toml:"redis_db"`
	// metrics
	PrometheusMetricsPort string `toml:"prom_metrics_port"`
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	TracingEnabled        bool   `toml:"tracing_enabled"`
	// hevy upstream
	HevyAPIKey          string   `toml:"-"`
	HevyBaseURL         string   `toml:"hevy_base_url"`
	HevyPageSize        int      `toml:"hevy_page_size"`
	SyncCooldownSeconds int      `toml:"sync_cooldown"`
	SyncRateLimitPerMin int      `toml:"sync_rate_limit_per_min"`
	CacheTTLSeconds     int      `toml:"cache_ttl"`
	Timezone            string   `toml:"timezone"`
	AllowedOrigins      []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the toml file (a missing file yields the defaults), applies the
// first .env file found and then the environment overrides.
func Load(env, configPath string) (*Config, error) {
	cfg := &Config{}
	if configPath != "" {
		exists, err := pkg.FileExists(configPath)
		if err != nil {
			return nil, fmt.Errorf("check config file: %w", err)
		}
		if exists {
			var tomlCfg Toml
			if _, err := toml.DecodeFile(configPath, &tomlCfg); err != nil {
				return nil, fmt.Errorf("decode config file: %w", err)
			}
			envCfg, err := tomlCfg.Get(env)
			if err != nil {
				return nil, err
			}
			if envCfg != nil {
				cfg = envCfg
			}
		} else {
			log.Warnf("config file [%s] not found, using defaults", configPath)
		}
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	if dotEnv := LoadDotEnv(DotEnvCandidates()); dotEnv != "" {
		log.Debugf("loaded env file: %s", dotEnv)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return cfg, nil
}

// DotEnvCandidates lists where a .env file is looked up: the working
// directory, the executable directory and its parent.
func DotEnvCandidates() []string {
	var candidates []string
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, ".env"))
	}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(exeDir, ".env"),
			filepath.Join(filepath.Dir(exeDir), ".env"),
		)
	}
	return candidates
}

// LoadDotEnv loads the first existing file and returns its path.
// Variables already present in the environment are not overwritten.
func LoadDotEnv(candidates []string) string {
	for _, c := range candidates {
		exists, err := pkg.FileExists(c)
		if err != nil || !exists {
			continue
		}
		if err := godotenv.Load(c); err != nil {
			log.Errorf("load env file %s: %s", c, err)
			continue
		}
		return c
	}
	return ""
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv("HEVY_API_KEY"); v != "" {
		c.HevyAPIKey = v
	}
	if v := getenv("HEVY_HOST"); v != "" {
		c.Host = v
	}
	if v := getenv("HEVY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HEVY_PORT [%s]: %w", v, err)
		}
		c.Port = port
	}
	if v := getenv("TZ"); v != "" {
		c.Timezone = v
	}
	if v := getenv("SYNC_COOLDOWN_SECONDS"); v != "" {
		cooldown, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SYNC_COOLDOWN_SECONDS [%s]: %w", v, err)
		}
		c.SyncCooldownSeconds = cooldown
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.HevyBaseURL == "" {
		c.HevyBaseURL = DefaultHevyBaseURL
	}
	if c.HevyPageSize <= 0 {
		c.HevyPageSize = DefaultHevyPageSize
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.SyncCooldownSeconds <= 0 {
		c.SyncCooldownSeconds = DefaultSyncCooldownSec
	}
	if c.CacheTTLSeconds <= 0 {
		c.CacheTTLSeconds = DefaultCacheTTLSec
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
}

func (c *Config) SyncCooldown() time.Duration {
	return time.Duration(c.SyncCooldownSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Location falls back to UTC when the zone database does not know the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Errorf("load location [%s]: %s, falling back to UTC", c.Timezone, err)
		return time.UTC
	}
	return loc
}
