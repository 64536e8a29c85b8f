package kafka_middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/kafka"
)

const (
	DirectionConsume = "consume"
	DirectionPublish = "publish"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// MetricsProducerMiddleware counts publishes by {direction, topic, result}
// and observes their latency by {direction, topic}.
func MetricsProducerMiddleware(messages *prometheus.CounterVec, duration *prometheus.HistogramVec) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(messages, duration, DirectionPublish, msg.Topic, start, err)
		return err
	}
}

func MetricsConsumerMiddleware(messages *prometheus.CounterVec, duration *prometheus.HistogramVec) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(messages, duration, DirectionConsume, msg.Topic, start, err)
		return err
	}
}

func observe(messages *prometheus.CounterVec, duration *prometheus.HistogramVec, direction, topic string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	messages.WithLabelValues(direction, topic, result).Inc()
	duration.WithLabelValues(direction, topic).Observe(time.Since(start).Seconds())
}
