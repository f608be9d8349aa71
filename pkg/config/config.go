package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Protecto ProtectoConfig `mapstructure:"protecto"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Port        int           `mapstructure:"port"`
	MetricsPort int           `mapstructure:"metrics_port"`
	SecretKey   string        `mapstructure:"secret_key"`
	JWTIssuer   string        `mapstructure:"jwt_issuer"`
	BodyLimit   int           `mapstructure:"body_limit"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	SwaggerUI   bool          `mapstructure:"swagger_ui"`
	CORS        CORSConfig    `mapstructure:"cors"`
}

// CORSConfig lists the console origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type MetricsConfig struct {
	Enabled                   bool `mapstructure:"enabled"`
	EnableLatency             bool `mapstructure:"enable_latency"`
	EnableCollaboratorMetrics bool `mapstructure:"enable_collaborator_metrics"`
}

// DatabaseConfig backs the action ledger. With Enabled false the ledger is
// only streamed to the event exporters.
type DatabaseConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ProtectoConfig struct {
	BaseURL            string          `mapstructure:"base_url"`
	APIKey             string          `mapstructure:"api_key"`
	Timeout            time.Duration   `mapstructure:"timeout"`
	MaxConnsPerHost    int             `mapstructure:"max_conns_per_host"`
	InsecureSkipVerify bool            `mapstructure:"insecure_skip_verify"`
	Breaker            BreakerConfig   `mapstructure:"breaker"`
	OAuth              OAuthConfig     `mapstructure:"oauth"`
	TLS                ClientTLSConfig `mapstructure:"tls"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// OAuthConfig switches Protecto authentication from the static API key to
// client-credentials tokens.
type OAuthConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TokenURL     string        `mapstructure:"token_url"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	UseBasicAuth bool          `mapstructure:"use_basic_auth"`
	Scopes       []string      `mapstructure:"scopes"`
	Audience     string        `mapstructure:"audience"`
	RefreshSkew  time.Duration `mapstructure:"refresh_skew"`
}

type WorkflowConfig struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	FieldPageSize int           `mapstructure:"field_page_size"`
	CatalogueTTL  time.Duration `mapstructure:"catalogue_ttl"`
	// LockBackend is "memory" for a single replica or "redis" when several
	// replicas share the same Protecto tenant.
	LockBackend string        `mapstructure:"lock_backend"`
	LockTTL     time.Duration `mapstructure:"lock_ttl"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

type EventsConfig struct {
	QueueSize int              `mapstructure:"queue_size"`
	Workers   int              `mapstructure:"workers"`
	Exporters []ExporterConfig `mapstructure:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

// Load reads config.yaml from configPath (then ./config and .) and applies
// environment overrides such as PROTECTO_BASE_URL.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.jwt_issuer", "maskflow")
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.swagger_ui", true)
	v.SetDefault("server.cors.max_age", 43200)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.file", "maskflow.log")
	v.SetDefault("log.console", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_collaborator_metrics", true)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("protecto.timeout", 10*time.Second)
	v.SetDefault("protecto.max_conns_per_host", 64)
	v.SetDefault("protecto.breaker.max_failures", 5)
	v.SetDefault("protecto.breaker.open_timeout", 30*time.Second)

	v.SetDefault("workflow.session_ttl", time.Hour)
	v.SetDefault("workflow.field_page_size", 7)
	v.SetDefault("workflow.catalogue_ttl", 5*time.Minute)
	v.SetDefault("workflow.lock_backend", "memory")
	v.SetDefault("workflow.lock_ttl", 30*time.Second)
	v.SetDefault("workflow.lock_timeout", 15*time.Second)

	v.SetDefault("events.queue_size", 1000)
	v.SetDefault("events.workers", 2)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Protecto.BaseURL) == "" {
		return errors.New("protecto.base_url is required")
	}
	if c.Server.SecretKey == "" {
		return errors.New("server.secret_key is required")
	}
	if c.Protecto.OAuth.Enabled && (c.Protecto.OAuth.TokenURL == "" || c.Protecto.OAuth.ClientID == "") {
		return errors.New("protecto.oauth requires token_url and client_id")
	}
	switch c.Workflow.LockBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("workflow.lock_backend must be 'memory' or 'redis', got '%s'", c.Workflow.LockBackend)
	}
	if c.Workflow.LockBackend == "redis" && c.Workflow.LockTTL <= c.Protecto.Timeout {
		return errors.New("workflow.lock_ttl must be longer than protecto.timeout")
	}
	if c.Workflow.FieldPageSize < 1 {
		return errors.New("workflow.field_page_size must be positive")
	}
	return nil
}
