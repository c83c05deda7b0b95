package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "parking"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoTransactions = false

	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	// Billing falls back to this rate when a booking's lot cannot be resolved.
	DefaultPricePerHour = 5.0
	Currency            = "USD"

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
