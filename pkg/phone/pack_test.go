package phone

import (
	"testing"
)

func TestEquals(t *testing.T) {
	n := NewNormalizer("")
	parsed := n.Parse("800-555-2468")

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{name: "number from fields", other: n.FromFields(tollFree()), want: true},
		{name: "number value", other: *n.Parse("800.555.2468"), want: true},
		{name: "same text", other: "800-555-2468", want: true},
		{name: "differently punctuated text", other: "(800) 555 2468", want: true},
		{name: "fields", other: tollFree(), want: true},
		{name: "string map", other: map[string]string{"area_code": "800", "prefix": "555", "number": "2468"}, want: true},
		{name: "field map", other: map[Field]string{AreaCode: "800", Prefix: "555", Number: "2468"}, want: true},
		{name: "extension differs", other: "800-555-2468 x1", want: false},
		{name: "missing area code", other: "555-2468", want: false},
		{name: "empty extension is not absent", other: Fields{AreaCode: s("800"), Prefix: s("555"), Number: s("2468"), Extension: s("")}, want: false},
		{name: "integer", other: 8005552468, want: false},
		{name: "nil", other: nil, want: false},
		{name: "nil number", other: (*PhoneNumber)(nil), want: false},
		{name: "sequence", other: []string{"800", "555", "2468"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsed.Equals(tt.other); got != tt.want {
				t.Errorf("Equals(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestEquals_UsesNormalizerDefault(t *testing.T) {
	n := NewNormalizer("256")
	p := n.Parse("(256) 555-2468")

	if !p.Equals("555-2468") {
		t.Errorf("Equals(%q) = false, want true with default area code 256", "555-2468")
	}
	if NewNormalizer("").Parse("(256) 555-2468").Equals("555-2468") {
		t.Errorf("Equals(%q) = true, want false without default area code", "555-2468")
	}
}

func TestUnpack(t *testing.T) {
	p := NewNormalizer("").Parse("555-2468")
	fs := p.Unpack()

	if fs.AreaCode != nil || fs.Extension != nil {
		t.Errorf("Unpack() = %v, want nil area code and extension", fs.Map())
	}
	if fs.Get(Prefix) != "555" || fs.Get(Number) != "2468" {
		t.Errorf("Unpack() = %v, want prefix 555 and number 2468", fs.Map())
	}

	*fs.Prefix = "999"
	if got := p.Get(Prefix); got != "555" {
		t.Errorf("Prefix = %q after mutating unpacked fields, want %q", got, "555")
	}
}

func TestUnpack_RoundTrip(t *testing.T) {
	p := NewNormalizer("").FromFields(tollFree())
	q := NewNormalizer("").FromFields(p.Unpack())

	if !p.Equals(q) {
		t.Errorf("FromFields(Unpack()) = %v, want %v", q.Unpack().Map(), p.Unpack().Map())
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "nil", parts: nil, want: ""},
		{name: "too short", parts: []string{"800", "555"}, want: ""},
		{name: "three parts", parts: []string{"800", "555", "2468"}, want: "8005552468"},
		{name: "with extension", parts: []string{"800", "555", "2468", "12"}, want: "800555246812"},
		{name: "extra parts ignored", parts: []string{"800", "555", "2468", "12", "9"}, want: "8005552468"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.parts); got != tt.want {
				t.Errorf("Pack(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestPackInPlace(t *testing.T) {
	p := NewNormalizer("").Parse("555-2468")

	if got := p.Pack([]string{"800", "555", "2468"}); got != "8005552468" {
		t.Errorf("Pack() = %q, want %q", got, "8005552468")
	}
	if p.Packed() != "" {
		t.Errorf("Pack() stored %q, want receiver untouched", p.Packed())
	}

	p.PackInPlace([]string{"800", "555", "2468"})
	if p.Packed() != "8005552468" {
		t.Errorf("Packed() = %q, want %q", p.Packed(), "8005552468")
	}
	if p.AreaCode != nil || p.Get(Prefix) != "555" {
		t.Errorf("PackInPlace changed structured parts: %v", p.Unpack().Map())
	}
}

func TestFromSequence(t *testing.T) {
	p := FromSequence([]string{"800", "555", "2468"})

	if !p.IsEmpty() {
		t.Errorf("FromSequence().IsEmpty() = false, want true")
	}
	if p.Packed() != "8005552468" {
		t.Errorf("Packed() = %q, want %q", p.Packed(), "8005552468")
	}
}
