package service

import (
	"context"
	"testing"

	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/validator"
	apperrors "github.com/winthrop-intelligence/phone-wrangler/pkg/errors"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/model"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

func s(v string) *string { return &v }

func newTestService(defaultAreaCode string) WranglerService {
	log := logger.Discard()
	return NewWranglerService(phone.NewNormalizer(defaultAreaCode), validator.NewPhoneValidator(log), log)
}

func TestParse(t *testing.T) {
	svc := newTestService("")
	ctx := context.Background()

	tests := []struct {
		name          string
		raw           string
		wantFormatted string
		wantDigits    string
		wantE164      string
		wantEmpty     bool
	}{
		{name: "dashes", raw: "800-555-2468", wantFormatted: "(800) 555-2468", wantDigits: "8005552468", wantE164: "+18005552468"},
		{name: "extension", raw: "800/555-2468 x012", wantFormatted: "(800) 555-2468 x012", wantDigits: "8005552468 x012", wantE164: "+18005552468"},
		{name: "full-width digits", raw: "８００ ５５５ ２４６８", wantFormatted: "(800) 555-2468", wantDigits: "8005552468", wantE164: "+18005552468"},
		{name: "no area code", raw: "555-2468", wantFormatted: "555-2468", wantDigits: "5552468"},
		{name: "no match", raw: "no digits here", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.Parse(ctx, &model.ParseRequest{Raw: tt.raw})
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.raw, err)
			}
			if view.Original != tt.raw {
				t.Errorf("Original = %q, want %q", view.Original, tt.raw)
			}
			if view.Formatted != tt.wantFormatted {
				t.Errorf("Formatted = %q, want %q", view.Formatted, tt.wantFormatted)
			}
			if view.Digits != tt.wantDigits {
				t.Errorf("Digits = %q, want %q", view.Digits, tt.wantDigits)
			}
			if view.E164 != tt.wantE164 {
				t.Errorf("E164 = %q, want %q", view.E164, tt.wantE164)
			}
			if view.Empty != tt.wantEmpty {
				t.Errorf("Empty = %v, want %v", view.Empty, tt.wantEmpty)
			}
		})
	}
}

func TestParse_Validation(t *testing.T) {
	_, err := newTestService("").Parse(context.Background(), &model.ParseRequest{})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("Parse() error = %v, want %s", err, apperrors.CodeValidation)
	}
}

func TestFormat(t *testing.T) {
	ctx := context.Background()
	full := model.NumberFields{AreaCode: s("800"), Prefix: s("555"), Number: s("2468"), Extension: s("12")}

	tests := []struct {
		name   string
		def    string
		fields model.NumberFields
		format string
		want   string
	}{
		{name: "dynamic", fields: full, want: "(800) 555-2468 x12"},
		{name: "preset", fields: full, format: phone.PresetUSShort, want: "(800) 555-2468"},
		{name: "literal", fields: full, format: "%a-%p-%n", want: "800-555-2468"},
		{name: "default area code applied", def: "256", fields: model.NumberFields{Prefix: s("555"), Number: s("2468")}, want: "(256) 555-2468"},
		{name: "blank area code blocks default", def: "256", fields: model.NumberFields{AreaCode: s(""), Prefix: s("555"), Number: s("2468")}, want: "555-2468"},
		{name: "empty number", fields: model.NumberFields{}, format: "(%a)", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestService(tt.def).Format(ctx, &model.FormatRequest{NumberFields: tt.fields, Format: tt.format})
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if resp.Formatted != tt.want {
				t.Errorf("Formatted = %q, want %q", resp.Formatted, tt.want)
			}
		})
	}
}

func TestFormat_Validation(t *testing.T) {
	_, err := newTestService("").Format(context.Background(), &model.FormatRequest{
		NumberFields: model.NumberFields{AreaCode: s("123")},
	})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("Format() error = %v, want %s", err, apperrors.CodeValidation)
	}
}

func TestCompare(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		def   string
		left  string
		right string
		want  bool
	}{
		{name: "same number different punctuation", left: "800-555-2468", right: "(800) 555.2468", want: true},
		{name: "different line", left: "800-555-2468", right: "800-555-2469", want: false},
		{name: "extension matters", left: "800-555-2468", right: "800-555-2468 x1", want: false},
		{name: "missing area code", left: "800-555-2468", right: "555-2468", want: false},
		{name: "default fills area code", def: "800", left: "800-555-2468", right: "555-2468", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestService(tt.def).Compare(ctx, &model.CompareRequest{Left: tt.left, Right: tt.right})
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if resp.Equal != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.left, tt.right, resp.Equal, tt.want)
			}
		})
	}
}

func TestPack(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "three parts", parts: []string{"800", "555", "2468"}, want: "8005552468"},
		{name: "with extension", parts: []string{"800", "555", "2468", "12"}, want: "800555246812"},
		{name: "trimmed", parts: []string{" 800", "555 ", "2468"}, want: "8005552468"},
		{name: "too short", parts: []string{"800"}, want: ""},
		{name: "none", parts: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestService("").Pack(ctx, &model.PackRequest{Parts: tt.parts})
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			if resp.Packed != tt.want {
				t.Errorf("Pack(%q) = %q, want %q", tt.parts, resp.Packed, tt.want)
			}
		})
	}
}

func TestDefaultAreaCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService("")

	if got := svc.DefaultAreaCode(ctx); got.AreaCode != nil {
		t.Fatalf("DefaultAreaCode() = %q, want nil", *got.AreaCode)
	}

	resp, err := svc.SetDefaultAreaCode(ctx, &model.DefaultAreaCodeRequest{AreaCode: s("256")})
	if err != nil {
		t.Fatalf("SetDefaultAreaCode() error = %v", err)
	}
	if resp.AreaCode == nil || *resp.AreaCode != "256" {
		t.Errorf("SetDefaultAreaCode() = %v, want 256", resp.AreaCode)
	}

	view, err := svc.Parse(ctx, &model.ParseRequest{Raw: "555-2468"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if view.AreaCode == nil || *view.AreaCode != "256" {
		t.Errorf("Parse() area code = %v, want 256", view.AreaCode)
	}

	if _, err := svc.SetDefaultAreaCode(ctx, &model.DefaultAreaCodeRequest{AreaCode: s("199")}); !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("SetDefaultAreaCode(199) error = %v, want %s", err, apperrors.CodeValidation)
	}

	resp, err = svc.SetDefaultAreaCode(ctx, &model.DefaultAreaCodeRequest{})
	if err != nil {
		t.Fatalf("SetDefaultAreaCode(nil) error = %v", err)
	}
	if resp.AreaCode != nil {
		t.Errorf("SetDefaultAreaCode(nil) = %q, want nil", *resp.AreaCode)
	}
}

func TestPresets(t *testing.T) {
	svc := newTestService("")
	presets := svc.Presets(context.Background())

	if presets[phone.PresetUSShort] != phone.Presets[phone.PresetUSShort] {
		t.Errorf("Presets()[%q] = %q, want %q", phone.PresetUSShort, presets[phone.PresetUSShort], phone.Presets[phone.PresetUSShort])
	}

	presets[phone.PresetUS] = "changed"
	if phone.Presets[phone.PresetUS] == "changed" {
		t.Errorf("Presets() returned the shared map")
	}
}
