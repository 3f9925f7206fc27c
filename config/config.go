package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Crypto    CryptoConfig    `mapstructure:"crypto"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Rates     RatesConfig     `mapstructure:"rates"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig validates bearer tokens minted by the external auth service.
// An empty secret disables token checks on order routes.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

type CryptoConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex key sealing payout details at rest
}

type PaymentConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	ClientURL string        `mapstructure:"client_url"` // checkout redirect target
	Fincra    FincraConfig  `mapstructure:"fincra"`
	Paybox    PayboxConfig  `mapstructure:"paybox"`
}

type FincraConfig struct {
	APIURL        string `mapstructure:"api_url"`
	PublicKey     string `mapstructure:"public_key"`
	SecretKey     string `mapstructure:"secret_key"`
	BusinessID    string `mapstructure:"business_id"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

type PayboxConfig struct {
	APIURL        string `mapstructure:"api_url"`
	CollectionKey string `mapstructure:"collection_key"`
	TransferKey   string `mapstructure:"transfer_key"`
	Mode          string `mapstructure:"mode"` // Test or live mode name sent with every request
	WebhookSecret string `mapstructure:"webhook_secret"` // empty rejects every Paybox callback
}

type LedgerConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	ProgramID      string        `mapstructure:"program_id"`
	USDCMint       string        `mapstructure:"usdc_mint"`
	USDTMint       string        `mapstructure:"usdt_mint"`
	AuthorityKey   string        `mapstructure:"authority_key"` // base58 or JSON byte array
	TokenDecimals  int32         `mapstructure:"token_decimals"`
	RPCTimeout     time.Duration `mapstructure:"rpc_timeout"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
}

type RatesConfig struct {
	APIURL   string        `mapstructure:"api_url"`
	APIKey   string        `mapstructure:"api_key"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type NotifyConfig struct {
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is applied to the process environment first.
// Environment variables override file values. Prefix: RGW_ (Ramp GateWay).
// Nested keys use underscore: RGW_DATABASE_HOST, RGW_LEDGER_RPC_URL, etc.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("RGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3333)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "ramp_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("crypto.key", "")

	v.SetDefault("payment.timeout", "15s")
	v.SetDefault("payment.client_url", "http://localhost:3000")
	v.SetDefault("payment.fincra.api_url", "https://sandboxapi.fincra.com")
	v.SetDefault("payment.fincra.public_key", "")
	v.SetDefault("payment.fincra.secret_key", "")
	v.SetDefault("payment.fincra.business_id", "")
	v.SetDefault("payment.fincra.webhook_secret", "")
	v.SetDefault("payment.paybox.api_url", "https://paybox.com.co")
	v.SetDefault("payment.paybox.collection_key", "")
	v.SetDefault("payment.paybox.transfer_key", "")
	v.SetDefault("payment.paybox.mode", "Test")
	v.SetDefault("payment.paybox.webhook_secret", "")

	v.SetDefault("ledger.rpc_url", "https://api.devnet.solana.com")
	v.SetDefault("ledger.program_id", "")
	v.SetDefault("ledger.usdc_mint", "")
	v.SetDefault("ledger.usdt_mint", "")
	v.SetDefault("ledger.authority_key", "")
	v.SetDefault("ledger.token_decimals", 9)
	v.SetDefault("ledger.rpc_timeout", "10s")
	v.SetDefault("ledger.confirm_timeout", "30s")

	v.SetDefault("rates.api_url", "https://api.apilayer.com/exchangerates_data")
	v.SetDefault("rates.api_key", "")
	v.SetDefault("rates.cache_ttl", "5m")

	v.SetDefault("notify.kafka.enabled", false)
	v.SetDefault("notify.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("notify.kafka.topic", "ramp.transaction_status")

	v.SetDefault("ratelimit.enabled", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
