package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server. Values come from the
// environment, with an optional .env file loaded first.
type Config struct {
	HTTPAddr      string
	Workers       int
	QueueCapacity int
	SubmitDelay   time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
	PostgresDSN   string
}

// Load reads configuration from the environment. Missing variables fall back
// to defaults; Kafka and Postgres stay disabled unless configured.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		Workers:       getEnvInt("WORKER_COUNT", 4),
		QueueCapacity: getEnvInt("QUEUE_CAPACITY", 1024),
		SubmitDelay:   time.Duration(getEnvInt("SUBMIT_DELAY_MS", 0)) * time.Millisecond,
		KafkaTopic:    getEnv("KAFKA_TOPIC", "transaction_completed"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
