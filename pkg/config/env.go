package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvDefaultAreaCode = "DEFAULT_AREA_CODE"

	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvRawPhoneTopic        = "RAW_PHONE_TOPIC"
	EnvNormalizedPhoneTopic = "NORMALIZED_PHONE_TOPIC"
	EnvNormalizerGroupID    = "NORMALIZER_GROUP_ID"
	EnvNormalizerDLQTopic   = "NORMALIZER_DLQ_TOPIC"
)
