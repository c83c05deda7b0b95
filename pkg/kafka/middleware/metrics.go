package kafka_middleware

import (
	"context"
	"time"

	"parkwise/pkg/kafka"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_messages_published_total",
		Help: "Kafka publish attempts grouped by topic, event type and outcome.",
	}, []string{"topic", "event_type", "result"})

	publishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kafka_publish_duration_seconds",
		Help:    "Time spent publishing a Kafka message.",
		Buckets: prometheus.DefBuckets,
	}, []string{"topic"})
)

// MetricsProducerMiddleware records publish counts and latency.
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		publishDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())

		result := "success"
		if err != nil {
			result = "failure"
		}
		publishedMessages.WithLabelValues(msg.Topic, msg.GetEventType(), result).Inc()
		return err
	}
}
