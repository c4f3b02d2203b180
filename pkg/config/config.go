package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
	Voice      VoiceConfig
	NATS       NATSConfig
	Security   SecurityConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type SimulationConfig struct {
	TickInterval    time.Duration
	HistoryCapacity int
	StartRunning    bool
	StartElevated   bool
	// Seed of the telemetry random source; 0 picks a time based seed.
	Seed uint64
}

type VoiceConfig struct {
	Enabled        bool
	Rate           float64
	WordsPerMinute int
}

type NATSConfig struct {
	Enabled       bool
	URL           string
	SubjectPrefix string
}

type SecurityConfig struct {
	AllowedOrigins   []string
	CommandRateLimit float64
	CommandBurst     int
}

type LogConfig struct {
	Level  string
	Format string
}

const minTickInterval = 100 * time.Millisecond

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	readTimeout, err := parseDuration("SERVER_READ_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	writeTimeout, err := parseDuration("SERVER_WRITE_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	idleTimeout, err := parseDuration("SERVER_IDLE_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SERVER_SHUTDOWN_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	tickInterval, err := parseDuration("SIMULATION_TICK_INTERVAL", "2.5s")
	if err != nil {
		return nil, err
	}
	if tickInterval < minTickInterval {
		return nil, fmt.Errorf("SIMULATION_TICK_INTERVAL must be >= %s", minTickInterval)
	}

	historyCapacity, err := getEnvInt("SIMULATION_HISTORY_CAPACITY", 10)
	if err != nil {
		return nil, err
	}
	if historyCapacity < 1 {
		return nil, fmt.Errorf("SIMULATION_HISTORY_CAPACITY must be >= 1")
	}

	seed, err := strconv.ParseUint(getEnv("SIMULATION_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATION_SEED: %w", err)
	}

	voiceRate, err := strconv.ParseFloat(getEnv("VOICE_RATE", "0.9"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid VOICE_RATE: %w", err)
	}
	if voiceRate <= 0 {
		return nil, fmt.Errorf("VOICE_RATE must be > 0")
	}

	wordsPerMinute, err := getEnvInt("VOICE_WORDS_PER_MINUTE", 150)
	if err != nil {
		return nil, err
	}
	if wordsPerMinute <= 0 {
		return nil, fmt.Errorf("VOICE_WORDS_PER_MINUTE must be > 0")
	}

	commandRate, err := strconv.ParseFloat(getEnv("COMMAND_RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid COMMAND_RATE_LIMIT_RPS: %w", err)
	}
	commandBurst, err := getEnvInt("COMMAND_RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			IdleTimeout:     idleTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Simulation: SimulationConfig{
			TickInterval:    tickInterval,
			HistoryCapacity: historyCapacity,
			StartRunning:    getEnvBool("SIMULATION_START_RUNNING", true),
			StartElevated:   getEnvBool("SIMULATION_ELEVATED_REGIME", false),
			Seed:            seed,
		},
		Voice: VoiceConfig{
			Enabled:        getEnvBool("VOICE_ENABLED", true),
			Rate:           voiceRate,
			WordsPerMinute: wordsPerMinute,
		},
		NATS: NATSConfig{
			Enabled:       getEnvBool("NATS_ENABLED", false),
			URL:           getEnv("NATS_URL", "nats://localhost:4222"),
			SubjectPrefix: strings.TrimSuffix(getEnv("NATS_SUBJECT_PREFIX", "vehicle.alerts"), "."),
		},
		Security: SecurityConfig{
			AllowedOrigins:   splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),
			CommandRateLimit: commandRate,
			CommandBurst:     commandBurst,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.NATS.Enabled && strings.TrimSpace(cfg.NATS.URL) == "" {
		return nil, fmt.Errorf("NATS_URL is required when NATS_ENABLED=true")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return parsed, nil
}

func splitCSV(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
