package normalizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/kafka"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/model"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

type fakePublisher struct {
	published []kafka.Message
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestHandler(defaultAreaCode string, pub *fakePublisher) *Handler {
	h := NewHandler(phone.NewNormalizer(defaultAreaCode), pub, logger.Discard())
	h.now = func() time.Time { return fixedNow }
	return h
}

func rawMessage(t *testing.T, event model.RawPhoneEvent) kafka.Message {
	t.Helper()
	msg, err := kafka.NewMessage().WithKey("raw-key").WithEventID("raw-event").WithValue(event).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return msg
}

func decodeNormalized(t *testing.T, msg kafka.Message) model.NormalizedPhoneEvent {
	t.Helper()
	var out model.NormalizedPhoneEvent
	if err := msg.DecodeValue(&out); err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	return out
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name          string
		def           string
		event         model.RawPhoneEvent
		wantID        string
		wantMatched   bool
		wantFormatted string
		wantE164      string
	}{
		{
			name:          "full number",
			event:         model.RawPhoneEvent{ID: "n-1", Raw: "(800) 555-2468 ext 12"},
			wantID:        "n-1",
			wantMatched:   true,
			wantFormatted: "(800) 555-2468 x12",
			wantE164:      "+18005552468",
		},
		{
			name:          "default area code",
			def:           "256",
			event:         model.RawPhoneEvent{ID: "n-2", Raw: "555-2468"},
			wantID:        "n-2",
			wantMatched:   true,
			wantFormatted: "(256) 555-2468",
			wantE164:      "+12565552468",
		},
		{
			name:        "unmatched text",
			event:       model.RawPhoneEvent{ID: "n-3", Raw: "call me maybe"},
			wantID:      "n-3",
			wantMatched: false,
		},
		{
			name:          "id from header",
			event:         model.RawPhoneEvent{Raw: "800.555.2468"},
			wantID:        "raw-event",
			wantMatched:   true,
			wantFormatted: "(800) 555-2468",
			wantE164:      "+18005552468",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &fakePublisher{}
			if err := newTestHandler(tt.def, pub).Handle(context.Background(), rawMessage(t, tt.event)); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if len(pub.published) != 1 {
				t.Fatalf("published %d messages, want 1", len(pub.published))
			}

			msg := pub.published[0]
			if msg.Key != tt.wantID {
				t.Errorf("Key = %q, want %q", msg.Key, tt.wantID)
			}
			if msg.GetCorrelationID() != "raw-event" {
				t.Errorf("correlation id = %q, want raw-event", msg.GetCorrelationID())
			}
			if msg.GetEventType() != model.EventTypePhoneNormalized {
				t.Errorf("event type = %q, want %q", msg.GetEventType(), model.EventTypePhoneNormalized)
			}

			out := decodeNormalized(t, msg)
			if out.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", out.ID, tt.wantID)
			}
			if out.Original != tt.event.Raw {
				t.Errorf("Original = %q, want %q", out.Original, tt.event.Raw)
			}
			if out.Matched != tt.wantMatched {
				t.Errorf("Matched = %v, want %v", out.Matched, tt.wantMatched)
			}
			if out.Formatted != tt.wantFormatted {
				t.Errorf("Formatted = %q, want %q", out.Formatted, tt.wantFormatted)
			}
			if out.E164 != tt.wantE164 {
				t.Errorf("E164 = %q, want %q", out.E164, tt.wantE164)
			}
			if !out.NormalizedAt.Equal(fixedNow) {
				t.Errorf("NormalizedAt = %s, want %s", out.NormalizedAt, fixedNow)
			}
		})
	}
}

func TestHandle_UndecodablePayloadIsPermanent(t *testing.T) {
	pub := &fakePublisher{}
	msg := kafka.Message{Key: "k", Value: []byte(`{"id":`), Headers: map[string]string{}}

	err := newTestHandler("", pub).Handle(context.Background(), msg)
	if kafka.ClassifyError(err) != kafka.ErrorTypePermanent {
		t.Errorf("Handle() error = %v, want permanent", err)
	}
	if len(pub.published) != 0 {
		t.Errorf("published %d messages, want 0", len(pub.published))
	}
}

func TestHandle_MissingIDIsPermanent(t *testing.T) {
	msg := kafka.Message{Value: []byte(`{"raw":"800-555-2468"}`), Headers: map[string]string{}}

	err := newTestHandler("", &fakePublisher{}).Handle(context.Background(), msg)
	if !errors.Is(err, errMissingID) {
		t.Errorf("Handle() error = %v, want %v", err, errMissingID)
	}
}

func TestHandle_PublishFailureIsTransient(t *testing.T) {
	pub := &fakePublisher{err: errors.New("leader not available")}

	err := newTestHandler("", pub).Handle(context.Background(), rawMessage(t, model.RawPhoneEvent{ID: "n-1", Raw: "800-555-2468"}))
	if kafka.ClassifyError(err) != kafka.ErrorTypeTransient {
		t.Errorf("Handle() error = %v, want transient", err)
	}
}
