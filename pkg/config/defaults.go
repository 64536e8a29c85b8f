package config

import (
	"time"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

const (
	DefaultPort = "8080"

	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40

	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRawPhoneTopic        = "phone-numbers.raw"
	DefaultNormalizedPhoneTopic = "phone-numbers.normalized"
	DefaultNormalizerGroupID    = "phone-normalizer"
	DefaultNormalizerDLQTopic   = "dlq-phone-normalizer"
)
