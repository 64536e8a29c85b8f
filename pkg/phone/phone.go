package phone

import (
	"fmt"

	apperrors "github.com/winthrop-intelligence/phone-wrangler/pkg/errors"
)

// PhoneNumber is a North-American number split into area code, prefix,
// line number and extension. The parts may be read and written directly;
// Original keeps the constructor input for diagnostics only.
type PhoneNumber struct {
	Fields

	original any
	packed   string
	norm     *Normalizer
}

func (p *PhoneNumber) normalizer() *Normalizer {
	if p.norm == nil {
		return std
	}
	return p.norm
}

// SetRaw re-runs input normalization in place. Original is left untouched.
func (p *PhoneNumber) SetRaw(input any) error {
	switch v := input.(type) {
	case string:
		p.parse(v)
	case Fields:
		p.assignFields(v)
	case *Fields:
		if v == nil {
			return apperrors.InvalidArgumentKind(fmt.Sprintf("%T", input))
		}
		p.assignFields(*v)
	case map[string]string:
		p.assignMap(v)
	case map[Field]string:
		var fs Fields
		for f, value := range v {
			fs.Set(f, value)
		}
		p.assignFields(fs)
	case []string:
		p.PackInPlace(v)
	case []any:
		p.PackInPlace(stringify(v))
	default:
		return apperrors.InvalidArgumentKind(fmt.Sprintf("%T", input))
	}
	return nil
}

func (p *PhoneNumber) assignFields(fs Fields) {
	if fs.AreaCode == nil {
		if code, ok := p.normalizer().DefaultAreaCode(); ok {
			fs.AreaCode = &code
		}
	}
	for _, f := range AllFields {
		if v, ok := fs.Lookup(f); ok {
			p.Set(f, v)
		}
	}
}

func (p *PhoneNumber) assignMap(m map[string]string) {
	var fs Fields
	for _, f := range AllFields {
		if v, ok := m[f.String()]; ok {
			fs.Set(f, v)
		}
	}
	p.assignFields(fs)
}

// Original returns the input the number was constructed from.
func (p *PhoneNumber) Original() any {
	return p.original
}

// HasAreaCode reports whether an area code is set, even an empty one.
func (p *PhoneNumber) HasAreaCode() bool {
	return p.AreaCode != nil
}

// IsEmpty reports whether every structured part is absent or empty.
func (p *PhoneNumber) IsEmpty() bool {
	for _, f := range AllFields {
		if p.Present(f) {
			return false
		}
	}
	return true
}

func stringify(parts []any) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		if part == nil {
			continue
		}
		out[i] = fmt.Sprint(part)
	}
	return out
}
