package normalizer

import (
	"context"
	"errors"
	"time"

	"github.com/winthrop-intelligence/phone-wrangler/internal/observability"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/kafka"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/model"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/sanitizer"
)

const (
	Source      = "phone-normalizer"
	parseSource = "kafka"
)

var errMissingID = errors.New("raw phone event has no id")

type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Handler turns RawPhoneEvents into NormalizedPhoneEvents. Every raw event
// produces exactly one normalized event, matched or not.
type Handler struct {
	norm      *phone.Normalizer
	publisher Publisher
	log       *logger.Logger
	now       func() time.Time
}

func NewHandler(norm *phone.Normalizer, publisher Publisher, log *logger.Logger) *Handler {
	return &Handler{
		norm:      norm,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (h *Handler) Handle(ctx context.Context, msg kafka.Message) error {
	var event model.RawPhoneEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("failed to decode raw phone event", err).
			WithDetail("offset", msg.Offset)
	}

	id := eventID(event, msg)
	if id == "" {
		return kafka.NewPermanentError("failed to identify raw phone event", errMissingID).
			WithDetail("offset", msg.Offset)
	}

	p := h.norm.Parse(sanitizer.SanitizeRaw(event.Raw))
	observability.ObserveParse(parseSource, !p.IsEmpty())

	normalized := model.NewNormalizedPhoneEvent(id, model.NewNumberView(event.Raw, p), h.now().UTC())
	out, err := kafka.NewMessage().
		WithKey(id).
		WithValue(normalized).
		WithEventType(model.EventTypePhoneNormalized).
		WithSchemaVersion(model.EventSchemaVersion).
		WithCorrelationID(msg.GetEventID()).
		WithSource(Source).
		Build()
	if err != nil {
		return kafka.NewPermanentError("failed to build normalized phone event", err)
	}

	if err := h.publisher.Publish(ctx, out); err != nil {
		return kafka.NewTransientError("failed to publish normalized phone event", err).
			WithDetail("id", id)
	}

	h.log.Debug("Phone number normalized",
		"id", id,
		"matched", normalized.Matched,
		"formatted", normalized.Formatted,
	)
	return nil
}

// eventID prefers the payload id, then the event-id header, then the key.
func eventID(event model.RawPhoneEvent, msg kafka.Message) string {
	if event.ID != "" {
		return event.ID
	}
	if id := msg.GetEventID(); id != "" {
		return id
	}
	return msg.Key
}
