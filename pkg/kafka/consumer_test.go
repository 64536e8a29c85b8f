package kafka

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *fakeWriter) written() []kafka.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafka.Message(nil), w.messages...)
}

// fakeReader hands out queued messages, then reports io.EOF.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func newTestConsumer(reader *fakeReader, dlq *fakeWriter, handler MessageHandler) *Consumer {
	var dlqWriter messageWriter
	if dlq != nil {
		dlqWriter = dlq
	}
	c := newConsumer(reader, dlqWriter, "raw", "group", "dlq", handler, logger.Discard())
	c.maxRetries = 2
	c.retryBackoff = time.Millisecond
	return c
}

func queued(offsets ...int64) *fakeReader {
	r := &fakeReader{}
	for _, o := range offsets {
		r.queue = append(r.queue, kafka.Message{Topic: "raw", Offset: o, Key: []byte("k"), Value: []byte(`{}`)})
	}
	return r
}

func TestConsumer_CommitsHandledMessages(t *testing.T) {
	reader := queued(1, 2, 3)
	var seen []int64
	c := newTestConsumer(reader, &fakeWriter{}, func(ctx context.Context, msg Message) error {
		seen = append(seen, msg.Offset)
		return nil
	})

	if err := c.Start(context.Background()); !errors.Is(err, ErrConsumerClosed) {
		t.Fatalf("Start() error = %v, want %v", err, ErrConsumerClosed)
	}
	if len(seen) != 3 || len(reader.committed) != 3 {
		t.Errorf("handled %v committed %v, want 3 each", seen, reader.committed)
	}
}

func TestConsumer_RetriesTransientErrors(t *testing.T) {
	reader := queued(1)
	dlq := &fakeWriter{}
	attempts := 0
	c := newTestConsumer(reader, dlq, func(ctx context.Context, msg Message) error {
		attempts++
		if attempts < 2 {
			return NewTransientError("publish", errors.New("broker down"))
		}
		return nil
	})

	_ = c.Start(context.Background())

	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if len(dlq.written()) != 0 {
		t.Errorf("DLQ received %d messages, want 0", len(dlq.written()))
	}
	if len(reader.committed) != 1 {
		t.Errorf("committed = %v, want one offset", reader.committed)
	}
}

func TestConsumer_ExhaustedRetriesGoToDLQ(t *testing.T) {
	reader := queued(7)
	dlq := &fakeWriter{}
	attempts := 0
	c := newTestConsumer(reader, dlq, func(ctx context.Context, msg Message) error {
		attempts++
		return NewTransientError("publish", errors.New("broker down"))
	})

	_ = c.Start(context.Background())

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	written := dlq.written()
	if len(written) != 1 {
		t.Fatalf("DLQ received %d messages, want 1", len(written))
	}
	parked := fromKafkaMessage(written[0])
	if parked.Headers[HeaderOriginalTopic] != "raw" {
		t.Errorf("original topic = %q, want raw", parked.Headers[HeaderOriginalTopic])
	}
	if parked.Headers[HeaderDLQErrorType] != "transient" {
		t.Errorf("error type = %q, want transient", parked.Headers[HeaderDLQErrorType])
	}
	if parked.Headers[HeaderDLQConsumerGroup] != "group" {
		t.Errorf("consumer group = %q, want group", parked.Headers[HeaderDLQConsumerGroup])
	}
	if parked.GetRetryCount() != 2 {
		t.Errorf("retry count = %d, want 2", parked.GetRetryCount())
	}
	if len(reader.committed) != 1 {
		t.Errorf("committed = %v, want the parked offset", reader.committed)
	}
}

func TestConsumer_PermanentErrorSkipsRetries(t *testing.T) {
	reader := queued(1)
	dlq := &fakeWriter{}
	attempts := 0
	c := newTestConsumer(reader, dlq, func(ctx context.Context, msg Message) error {
		attempts++
		return NewPermanentError("decode", errors.New("bad json"))
	})

	_ = c.Start(context.Background())

	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if len(dlq.written()) != 1 {
		t.Errorf("DLQ received %d messages, want 1", len(dlq.written()))
	}
}

func TestConsumer_DLQFailureStopsWithoutCommit(t *testing.T) {
	reader := queued(1, 2)
	dlq := &fakeWriter{err: errors.New("dlq unavailable")}
	c := newTestConsumer(reader, dlq, func(ctx context.Context, msg Message) error {
		return NewPermanentError("decode", errors.New("bad json"))
	})

	err := c.Start(context.Background())
	if err == nil || errors.Is(err, ErrConsumerClosed) {
		t.Fatalf("Start() error = %v, want DLQ failure", err)
	}
	if len(reader.committed) != 0 {
		t.Errorf("committed = %v, want none", reader.committed)
	}
}

func TestConsumer_Middleware(t *testing.T) {
	var order []string
	c := newTestConsumer(queued(1), nil, func(ctx context.Context, msg Message) error {
		order = append(order, "handler")
		return nil
	})
	c.Use(func(ctx context.Context, msg Message, next MessageHandler) error {
		order = append(order, "first")
		return next(ctx, msg)
	})
	c.Use(func(ctx context.Context, msg Message, next MessageHandler) error {
		order = append(order, "second")
		return next(ctx, msg)
	})

	_ = c.Start(context.Background())

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestConsumer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestConsumer(queued(1), nil, func(ctx context.Context, msg Message) error { return nil })
	if err := c.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want %v", err, context.Canceled)
	}
}

func TestConsumer_Close(t *testing.T) {
	dlq := &fakeWriter{}
	c := newTestConsumer(queued(), dlq, func(ctx context.Context, msg Message) error { return nil })

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !dlq.closed {
		t.Errorf("DLQ writer not closed")
	}
	if err := c.Start(context.Background()); !errors.Is(err, ErrConsumerClosed) {
		t.Errorf("Start() after Close error = %v, want %v", err, ErrConsumerClosed)
	}
}
