package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// BrokerChecker reports ready when at least one broker accepts a connection.
type BrokerChecker struct {
	brokers []string
}

func NewBrokerChecker(brokers []string) *BrokerChecker {
	return &BrokerChecker{brokers: brokers}
}

func (b *BrokerChecker) Name() string {
	return "kafka"
}

func (b *BrokerChecker) Check(ctx context.Context) error {
	if len(b.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	var errs []error
	for _, broker := range b.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return conn.Close()
	}
	return errors.Join(errs...)
}
