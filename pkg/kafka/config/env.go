package kafka_config

const (
	// Empty brokers disable event publishing entirely.
	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvKafkaBookingTopic    = "KAFKA_BOOKING_TOPIC"
	EnvKafkaBookingDLQTopic = "KAFKA_BOOKING_DLQ_TOPIC"

	EnvKafkaProducerMaxAttempts    = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout   = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerRequireAcks    = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerCompression    = "KAFKA_PRODUCER_COMPRESSION"
	EnvKafkaProducerPublishTimeout = "KAFKA_PRODUCER_PUBLISH_TIMEOUT"
)
