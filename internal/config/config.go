// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ritmolab/ritmo-engine/internal/core/engine"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser     string `env:"DB_USER" envDefault:"ritmo_user"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"ritmo_db"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"ritmo-engine"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"30m"`

	HabitStreakThreshold float64 `env:"HABIT_STREAK_THRESHOLD" envDefault:"0.8"`
	LookbackWindowDays   int     `env:"LOOKBACK_WINDOW_DAYS" envDefault:"21"`
	LevelBaseCost        int     `env:"LEVEL_BASE_COST" envDefault:"100"`
	LevelCostIncrement   int     `env:"LEVEL_COST_INCREMENT" envDefault:"25"`
	XPPerTodo            int     `env:"XP_PER_TODO" envDefault:"10"`
	XPPerHabit           int     `env:"XP_PER_HABIT" envDefault:"20"`
	StreakBonusPerDay    int     `env:"STREAK_BONUS_PER_DAY" envDefault:"10"`
	StreakBonusCap       int     `env:"STREAK_BONUS_CAP" envDefault:"200"`
	FeedLimit            int     `env:"ACTIVITY_FEED_LIMIT" envDefault:"8"`
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// EngineConfig maps the tunables onto the progress engine.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		StreakThreshold:    c.HabitStreakThreshold,
		LookbackWindowDays: c.LookbackWindowDays,
		LevelBaseCost:      c.LevelBaseCost,
		LevelCostIncrement: c.LevelCostIncrement,
		XPPerTodo:          c.XPPerTodo,
		XPPerHabit:         c.XPPerHabit,
		StreakBonusPerDay:  c.StreakBonusPerDay,
		StreakBonusCap:     c.StreakBonusCap,
		FeedLimit:          c.FeedLimit,
	}
}
