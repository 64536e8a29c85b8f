package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/winthrop-intelligence/phone-wrangler/internal/normalizer"
	"github.com/winthrop-intelligence/phone-wrangler/internal/observability"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/app"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/config"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/kafka"
	kafka_config "github.com/winthrop-intelligence/phone-wrangler/pkg/kafka/config"
	kafka_middleware "github.com/winthrop-intelligence/phone-wrangler/pkg/kafka/middleware"
)

const ServiceName = "phone-normalizer"

func main() {
	cfg := config.Load(ServiceName)
	observability.Register(prometheus.DefaultRegisterer)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.NormalizedPhoneTopic, "", cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	defer producer.Close()

	phoneHandler := normalizer.NewHandler(cfg.Normalizer(), producer, cfg.Log)
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.RawPhoneTopic,
		cfg.NormalizerGroupID,
		cfg.NormalizerDLQTopic,
		phoneHandler.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	defer consumer.Close()

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware(observability.KafkaMessages, observability.KafkaDuration))
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware(observability.KafkaMessages, observability.KafkaDuration))
	}

	cfg.Log.Info("Starting phone normalizer",
		"raw_topic", cfg.RawPhoneTopic,
		"normalized_topic", cfg.NormalizedPhoneTopic,
		"group_id", cfg.NormalizerGroupID,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.AddWorker("raw-phone-consumer", consumer.Start)
	serverApp.SetApp(nil, kafka.NewBrokerChecker(kafkaCfg.Brokers))
	serverApp.Run()
}
