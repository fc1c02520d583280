package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// global configuration structure
type Config struct {
	Bot      BotConfig      `mapstructure:"bot"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Ping     PingConfig     `mapstructure:"ping"`
	Database DatabaseConfig `mapstructure:"database"`
}

// Telegram bot configuration
type BotConfig struct {
	Token string `mapstructure:"token"`
	// GroupID limits the bot to a single group when set; -1 means all groups.
	GroupID     int64 `mapstructure:"group_id"`
	PollTimeout int   `mapstructure:"poll_timeout"`
}

// logging configuration
type LoggerConfig struct {
	Directory string            `mapstructure:"directory"`
	Rotation  LogRotationConfig `mapstructure:"rotation"`
	Level     string            `mapstructure:"level"`
}

// log rotation settings
type LogRotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	// Path is the sqlite database file; ignored for mysql.
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// batched mention broadcast settings
type PingConfig struct {
	// StaleAfter drops commands whose originating message is older than this.
	StaleAfter     time.Duration `mapstructure:"stale_after"`
	MemberPageSize int           `mapstructure:"member_page_size"`
	ChunkSize      int           `mapstructure:"chunk_size"`
	ChunkDelay     time.Duration `mapstructure:"chunk_delay"`
	AdminChunkSize int           `mapstructure:"admin_chunk_size"`
	AdminDelay     time.Duration `mapstructure:"admin_chunk_delay"`
}

var cfg *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	v := viper.New()

	setDefaults(v)

	// The token may come from the environment instead of the config file.
	if err := v.BindEnv("bot.token", "PINGBOT_BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("error binding token env: %w", err)
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	log.Printf("Using config file: %s", v.ConfigFileUsed())

	// Unmarshal configuration
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return cfg, nil
}

func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not initialized, call Load() first")
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.token", "")
	v.SetDefault("bot.group_id", -1)
	v.SetDefault("bot.poll_timeout", 30)

	v.SetDefault("logger.directory", "logs")
	v.SetDefault("logger.rotation.max_size", 10)
	v.SetDefault("logger.rotation.max_backups", 30)
	v.SetDefault("logger.rotation.max_age", 90)
	v.SetDefault("logger.rotation.compress", true)
	v.SetDefault("logger.level", "INFO")

	v.SetDefault("database.enabled", true)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/pingbot.db")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")

	v.SetDefault("ping.stale_after", "300s")
	v.SetDefault("ping.member_page_size", 200)
	v.SetDefault("ping.chunk_size", 30)
	v.SetDefault("ping.chunk_delay", "1s")
	v.SetDefault("ping.admin_chunk_size", 10)
	v.SetDefault("ping.admin_chunk_delay", "3s")
}
