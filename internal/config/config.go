package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server      ServerConfig
	Site        SiteConfig
	Interaction InteractionConfig
	Session     SessionConfig
	RateLimit   RateLimitConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Addr 由 Port 归一化得到。
	Addr string
}

// SiteConfig 描述页面展示相关配置。
type SiteConfig struct {
	Name     string `env:"SITE_NAME" envDefault:"NexusAI"`
	Timezone string `env:"SITE_TIMEZONE" envDefault:"Local"`

	location *time.Location
}

// Location 返回聊天时间戳使用的时区。
func (c SiteConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// InteractionConfig 描述模拟交互的延迟。
type InteractionConfig struct {
	AuthDelay      time.Duration `env:"AUTH_DELAY" envDefault:"1500ms"`
	ContactDelay   time.Duration `env:"CONTACT_DELAY" envDefault:"1500ms"`
	ChatReplyDelay time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"2s"`
	// ChatReplySeed 为 0 时按时间播种。
	ChatReplySeed uint64 `env:"CHAT_REPLY_SEED" envDefault:"0"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// RateLimitConfig 限制每个客户端 IP 的 POST 频率；PerMinute 为 0 表示关闭。
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

type LogConfig struct {
	Level       zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	Development bool          `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom 从给定的键值对加载配置，主要用于测试。
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	addr, err := normalizeAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	loc, err := time.LoadLocation(cfg.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_TIMEZONE value %q: %w", cfg.Site.Timezone, err)
	}
	cfg.Site.location = loc

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for name, d := range map[string]time.Duration{
		"AUTH_DELAY":       c.Interaction.AuthDelay,
		"CONTACT_DELAY":    c.Interaction.ContactDelay,
		"CHAT_REPLY_DELAY": c.Interaction.ChatReplyDelay,
	} {
		if d < 0 {
			return fmt.Errorf("invalid %s value: %s", name, d)
		}
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("invalid SESSION_SWEEP_INTERVAL value: %s", c.Session.SweepInterval)
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("invalid rate limit: %d/min burst %d", c.RateLimit.PerMinute, c.RateLimit.Burst)
	}
	return nil
}

// normalizeAddr 解析服务器监听地址。
func normalizeAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}
