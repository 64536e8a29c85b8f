package model

import (
	"github.com/winthrop-intelligence/phone-wrangler/pkg/locale"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

// NumberFields is the wire form of a structured number. A null part is
// absent; an empty string is an explicitly blank part.
type NumberFields struct {
	AreaCode  *string `json:"area_code" validate:"omitempty,len=0|nanp_area_code"`
	Prefix    *string `json:"prefix" validate:"omitempty,len=0|nanp_exchange"`
	Number    *string `json:"number" validate:"omitempty,len=0|line_number"`
	Extension *string `json:"extension" validate:"omitempty,len=0|phone_extension"`
}

func (f NumberFields) ToFields() phone.Fields {
	return phone.Fields{
		AreaCode:  f.AreaCode,
		Prefix:    f.Prefix,
		Number:    f.Number,
		Extension: f.Extension,
	}
}

type ParseRequest struct {
	Raw string `json:"raw" validate:"required,max=128"`
}

type FormatRequest struct {
	NumberFields
	Format string `json:"format" validate:"max=64"`
}

type CompareRequest struct {
	Left  string `json:"left" validate:"required,max=128"`
	Right string `json:"right" validate:"required,max=128"`
}

type PackRequest struct {
	Parts []string `json:"parts" validate:"max=8,dive,max=16"`
}

type DefaultAreaCodeRequest struct {
	AreaCode *string `json:"area_code" validate:"omitempty,nanp_area_code"`
}

// NumberView is everything the service reports about one number.
type NumberView struct {
	Original  string  `json:"original"`
	AreaCode  *string `json:"area_code"`
	Prefix    *string `json:"prefix"`
	Number    *string `json:"number"`
	Extension *string `json:"extension"`
	Formatted string  `json:"formatted"`
	Digits    string  `json:"digits"`
	E164      string  `json:"e164,omitempty"`
	National  string  `json:"national,omitempty"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
	Empty     bool    `json:"empty"`
}

// NewNumberView renders p. E164, National and the locale fields stay empty
// unless the number has a full ten digit body.
func NewNumberView(original string, p *phone.PhoneNumber) NumberView {
	fs := p.Unpack()
	view := NumberView{
		Original:  original,
		AreaCode:  fs.AreaCode,
		Prefix:    fs.Prefix,
		Number:    fs.Number,
		Extension: fs.Extension,
		Formatted: p.String(),
		Digits:    p.Digits(),
		Empty:     p.IsEmpty(),
	}
	if e164, err := p.E164(); err == nil {
		view.E164 = e164
	}
	if national, err := p.National(); err == nil {
		view.National = national
	}
	if c := locale.InferCountry(p); c != nil {
		view.Region = c.Code
		view.Country = c.Name
		view.Timezone = c.DefaultTimezone
	}
	return view
}

func (v NumberView) Fields() phone.Fields {
	return phone.Fields{
		AreaCode:  v.AreaCode,
		Prefix:    v.Prefix,
		Number:    v.Number,
		Extension: v.Extension,
	}
}

type FormatResponse struct {
	Formatted string `json:"formatted"`
}

type CompareResponse struct {
	Equal bool       `json:"equal"`
	Left  NumberView `json:"left"`
	Right NumberView `json:"right"`
}

type PackResponse struct {
	Packed string `json:"packed"`
}

type DefaultAreaCodeResponse struct {
	AreaCode *string `json:"area_code"`
}
