package model

import (
	"time"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

const (
	EventTypePhoneNormalized = "phone.normalized"
	EventSchemaVersion       = "1"
)

// RawPhoneEvent carries free-form phone text to be normalized.
type RawPhoneEvent struct {
	ID  string `json:"id"`
	Raw string `json:"raw"`
}

// NormalizedPhoneEvent is published for every RawPhoneEvent, matched or not.
type NormalizedPhoneEvent struct {
	ID           string       `json:"id"`
	Original     string       `json:"original"`
	Fields       phone.Fields `json:"fields"`
	Formatted    string       `json:"formatted"`
	Digits       string       `json:"digits"`
	E164         string       `json:"e164,omitempty"`
	Region       string       `json:"region,omitempty"`
	Timezone     string       `json:"timezone,omitempty"`
	Matched      bool         `json:"matched"`
	NormalizedAt time.Time    `json:"normalized_at"`
}

func NewNormalizedPhoneEvent(id string, view NumberView, at time.Time) NormalizedPhoneEvent {
	return NormalizedPhoneEvent{
		ID:           id,
		Original:     view.Original,
		Fields:       view.Fields(),
		Formatted:    view.Formatted,
		Digits:       view.Digits,
		E164:         view.E164,
		Region:       view.Region,
		Timezone:     view.Timezone,
		Matched:      !view.Empty,
		NormalizedAt: at,
	}
}
