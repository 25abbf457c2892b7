package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
)

const (
	PhoneticsDictionary = "dictionary"
	PhoneticsNats       = "nats"
)

type Config struct {
	DB *gorm.DB `toml:"-"`

	Prod_env bool

	// required in the Access header of mutating routes, disabled when empty
	PrivateKey string `toml:"private_key"`

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}
	Redis struct {
		Addr      string
		Password  string
		DB        int    `toml:"db"`
		KeyPrefix string `toml:"key_prefix"`
		ScanCount int64  `toml:"scan_count"`
	}
	S3 struct {
		Bucket         string
		Region         string
		Endpoint       string // localstack / minio
		AccessKey      string `toml:"access_key"`
		SecretKey      string `toml:"secret_key"`
		IdNamespace    string `toml:"id_namespace"`
		EmailNamespace string `toml:"email_namespace"`
	}
	Nats struct {
		Servers     string   `toml:"-"`
		TomlServers []string `toml:"servers"`
	}
	Phonetics struct {
		Provider string        // dictionary or nats
		BaseUrl  string        `toml:"base_url"`
		Timeout  time.Duration `toml:"timeout"`
	}
	Api struct {
		Ipv4      string
		Proto     string
		RateLimit int `toml:"rate_limit"` // merchant creations per client per window
	} `toml:"merchant_web"`
}

// Secrets override values of the config file, read from MERCHANT_* variables.
type Secrets struct {
	PrivateKey       string `envconfig:"PRIVATE_KEY"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD"`
	RedisPassword    string `envconfig:"REDIS_PASSWORD"`
	S3AccessKey      string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey      string `envconfig:"S3_SECRET_KEY"`
	NatsUser         string `envconfig:"NATS_USER"`
	NatsPassword     string `envconfig:"NATS_PASSWORD"`
}

const EnvPrefix = "merchant"

func ReadConfig() *Config {
	config, err := Load(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}
	return config
}

func Load(path string) (*Config, error) {
	byte_config, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	var secrets Secrets
	if err := envconfig.Process(EnvPrefix, &secrets); err != nil {
		return nil, fmt.Errorf("read secrets: %w", err)
	}
	config.applySecrets(secrets)
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applySecrets(s Secrets) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&c.PrivateKey, s.PrivateKey)
	override(&c.Postgres.Password, s.PostgresPassword)
	override(&c.Redis.Password, s.RedisPassword)
	override(&c.S3.AccessKey, s.S3AccessKey)
	override(&c.S3.SecretKey, s.S3SecretKey)

	var formatedServers string
	for _, x := range c.Nats.TomlServers {
		connectUrl := x
		if s.NatsUser != "" {
			connectUrl = fmt.Sprintf("nats://%s:%s@%s", s.NatsUser, s.NatsPassword, x)
		}
		if formatedServers != "" {
			formatedServers += ","
		}
		formatedServers += connectUrl
	}
	c.Nats.Servers = formatedServers
}

func (c *Config) applyDefaults() {
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.Ssl_mode == "" {
		c.Postgres.Ssl_mode = "disable"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "merchant:"
	}
	if c.Redis.ScanCount == 0 {
		c.Redis.ScanCount = 100
	}
	if c.S3.IdNamespace == "" {
		c.S3.IdNamespace = "merchants"
	}
	if c.S3.EmailNamespace == "" {
		c.S3.EmailNamespace = "merchants-email"
	}
	if c.Phonetics.Provider == "" {
		c.Phonetics.Provider = PhoneticsDictionary
	}
	if c.Phonetics.BaseUrl == "" {
		c.Phonetics.BaseUrl = "https://api.dictionaryapi.dev"
	}
	if c.Phonetics.Timeout == 0 {
		c.Phonetics.Timeout = 5 * time.Second
	}
	if c.Api.Ipv4 == "" {
		c.Api.Ipv4 = ":8080"
	}
	if c.Api.RateLimit == 0 {
		c.Api.RateLimit = 150
	}
}

func (c *Config) validate() error {
	switch c.Phonetics.Provider {
	case PhoneticsDictionary:
	case PhoneticsNats:
		if c.Nats.Servers == "" {
			return fmt.Errorf("phonetics provider %q requires nats servers", PhoneticsNats)
		}
	default:
		return fmt.Errorf("unknown phonetics provider: %q", c.Phonetics.Provider)
	}
	if c.S3.Bucket == "" {
		return fmt.Errorf("s3 bucket is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	return nil
}

func (c *Config) UsesNats() bool {
	return c.Phonetics.Provider == PhoneticsNats
}
