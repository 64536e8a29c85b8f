package kafka_middleware

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/kafka"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

func newVecs() (*prometheus.CounterVec, *prometheus.HistogramVec) {
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_kafka_messages_total", Help: "test"}, []string{"direction", "topic", "result"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_kafka_duration_seconds", Help: "test"}, []string{"direction", "topic"})
	return messages, duration
}

func TestMetricsConsumerMiddleware(t *testing.T) {
	messages, duration := newVecs()
	mw := MetricsConsumerMiddleware(messages, duration)
	msg := kafka.Message{Topic: "raw"}

	_ = mw(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return nil })
	_ = mw(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return errors.New("boom") })
	_ = mw(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return errors.New("boom") })

	if got := testutil.ToFloat64(messages.WithLabelValues(DirectionConsume, "raw", ResultSuccess)); got != 1 {
		t.Errorf("success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(messages.WithLabelValues(DirectionConsume, "raw", ResultFailure)); got != 2 {
		t.Errorf("failure = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestMetricsProducerMiddleware(t *testing.T) {
	messages, duration := newVecs()
	mw := MetricsProducerMiddleware(messages, duration)

	err := mw(context.Background(), kafka.Message{Topic: "normalized"}, func(ctx context.Context, m kafka.Message) error { return nil })
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if got := testutil.ToFloat64(messages.WithLabelValues(DirectionPublish, "normalized", ResultSuccess)); got != 1 {
		t.Errorf("success = %v, want 1", got)
	}
}

func TestLoggingConsumerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf, Level: logger.DEBUG})
	mw := LoggingConsumerMiddleware(log)
	cause := errors.New("bad payload")

	err := mw(context.Background(), kafka.Message{Topic: "raw", Offset: 42}, func(ctx context.Context, m kafka.Message) error { return cause })
	if !errors.Is(err, cause) {
		t.Errorf("middleware error = %v, want %v", err, cause)
	}

	out := buf.String()
	for _, want := range []string{"Failed to process message", `"offset":42`, "bad payload"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLoggingProducerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf, Level: logger.DEBUG})
	mw := LoggingProducerMiddleware(log)

	err := mw(context.Background(), kafka.Message{Topic: "normalized", Key: "evt-1"}, func(ctx context.Context, m kafka.Message) error { return nil })
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "Published message") || !strings.Contains(out, "evt-1") {
		t.Errorf("log output %q missing publish line", out)
	}
}
