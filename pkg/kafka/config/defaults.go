package kafka_config

import "time"

const (
	DefaultKafkaBrokers = ""

	DefaultBookingTopic    = "parking.bookings"
	DefaultBookingDLQTopic = "parking.bookings.dlq"

	DefaultProducerMaxAttempts    = 3
	DefaultProducerBatchTimeout   = 10 * time.Millisecond
	DefaultProducerRequireAcks    = -1 // Require all replicas
	DefaultProducerCompression    = "snappy"
	DefaultProducerPublishTimeout = 2 * time.Second
)
