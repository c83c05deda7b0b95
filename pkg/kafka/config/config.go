package kafka_config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the booking event producer configuration.
type Config struct {
	Brokers []string

	BookingTopic    string
	BookingDLQTopic string

	ProducerMaxAttempts    int
	ProducerBatchTimeout   time.Duration
	ProducerRequireAcks    int    // -1 = all, 0 = none, 1 = leader only
	ProducerCompression    string // "none", "gzip", "snappy", "lz4", "zstd"
	ProducerPublishTimeout time.Duration
}

// Load creates a Kafka config from environment variables.
func Load() *Config {
	var brokers []string
	for _, broker := range strings.Split(getEnvStr(EnvKafkaBrokers, DefaultKafkaBrokers), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return &Config{
		Brokers: brokers,

		BookingTopic:    getEnvStr(EnvKafkaBookingTopic, DefaultBookingTopic),
		BookingDLQTopic: getEnvStr(EnvKafkaBookingDLQTopic, DefaultBookingDLQTopic),

		ProducerMaxAttempts:    getEnvInt(EnvKafkaProducerMaxAttempts, DefaultProducerMaxAttempts),
		ProducerBatchTimeout:   getEnvDuration(EnvKafkaProducerBatchTimeout, DefaultProducerBatchTimeout),
		ProducerRequireAcks:    getEnvInt(EnvKafkaProducerRequireAcks, DefaultProducerRequireAcks),
		ProducerCompression:    getEnvStr(EnvKafkaProducerCompression, DefaultProducerCompression),
		ProducerPublishTimeout: getEnvDuration(EnvKafkaProducerPublishTimeout, DefaultProducerPublishTimeout),
	}
}

// Enabled reports whether any broker is configured.
func (cfg *Config) Enabled() bool {
	return len(cfg.Brokers) > 0
}

// Validate checks producer settings. A disabled config is always valid.
func (cfg *Config) Validate() error {
	if !cfg.Enabled() {
		return nil
	}

	var errors []string

	if cfg.BookingTopic == "" {
		errors = append(errors, "Kafka BookingTopic cannot be empty")
	}
	if cfg.BookingDLQTopic != "" && cfg.BookingDLQTopic == cfg.BookingTopic {
		errors = append(errors, fmt.Sprintf("Kafka BookingDLQTopic must differ from BookingTopic, got: %s", cfg.BookingDLQTopic))
	}

	if cfg.ProducerMaxAttempts <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerMaxAttempts must be positive, got: %d", cfg.ProducerMaxAttempts))
	}
	if cfg.ProducerBatchTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerBatchTimeout must be positive, got: %s", cfg.ProducerBatchTimeout))
	}
	if cfg.ProducerPublishTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerPublishTimeout must be positive, got: %s", cfg.ProducerPublishTimeout))
	}

	validCompressions := map[string]bool{
		"none": true, "gzip": true, "snappy": true, "lz4": true, "zstd": true,
	}
	if !validCompressions[cfg.ProducerCompression] {
		errors = append(errors, fmt.Sprintf("ProducerCompression must be one of [none, gzip, snappy, lz4, zstd], got: %s", cfg.ProducerCompression))
	}

	validAcks := map[int]bool{-1: true, 0: true, 1: true}
	if !validAcks[cfg.ProducerRequireAcks] {
		errors = append(errors, fmt.Sprintf("ProducerRequireAcks must be -1, 0, or 1, got: %d", cfg.ProducerRequireAcks))
	}

	if len(errors) > 0 {
		return fmt.Errorf("kafka configuration invalid: %s", strings.Join(errors, "; "))
	}
	return nil
}

// LogConfiguration logs the Kafka configuration through the given log function.
func (cfg *Config) LogConfiguration(logFunc func(msg string, keysAndValues ...any)) {
	if logFunc == nil {
		return
	}
	if !cfg.Enabled() {
		logFunc("Kafka booking events disabled", "env", EnvKafkaBrokers)
		return
	}

	logFunc("Kafka configuration loaded successfully",
		"brokers", cfg.Brokers,
		"booking_topic", cfg.BookingTopic,
		"booking_dlq_topic", cfg.BookingDLQTopic,
		"producer_max_attempts", cfg.ProducerMaxAttempts,
		"producer_batch_timeout", cfg.ProducerBatchTimeout,
		"producer_require_acks", cfg.ProducerRequireAcks,
		"producer_compression", cfg.ProducerCompression,
		"producer_publish_timeout", cfg.ProducerPublishTimeout,
	)
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
