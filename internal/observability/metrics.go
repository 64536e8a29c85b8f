package observability

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultMatched   = "matched"
	ResultUnmatched = "unmatched"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wrangler_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "wrangler_http_request_duration_seconds", Help: "HTTP request latency"},
		[]string{"method", "path"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "wrangler_http_rate_limited_total", Help: "Requests rejected by the rate limiter"},
	)
	ParseOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wrangler_parse_total", Help: "Phone number parse outcomes"},
		[]string{"source", "result"},
	)
	KafkaMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "wrangler_kafka_messages_total", Help: "Kafka messages by outcome"},
		[]string{"direction", "topic", "result"},
	)
	KafkaDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "wrangler_kafka_duration_seconds", Help: "Kafka publish and handle latency"},
		[]string{"direction", "topic"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, HTTPDuration, RateLimited, ParseOutcomes, KafkaMessages, KafkaDuration)
}

// ObserveParse counts a parse attempt from source.
func ObserveParse(source string, matched bool) {
	result := ResultUnmatched
	if matched {
		result = ResultMatched
	}
	ParseOutcomes.WithLabelValues(source, result).Inc()
}
