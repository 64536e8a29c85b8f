package phone

import (
	"strings"
)

// Equals compares structured parts only. Text and mappings are first
// normalized with the same Normalizer that built p; any other shape is
// never equal.
func (p *PhoneNumber) Equals(other any) bool {
	switch v := other.(type) {
	case *PhoneNumber:
		if v == nil {
			return false
		}
		return p.Equal(v.Fields)
	case PhoneNumber:
		return p.Equal(v.Fields)
	case string, Fields, *Fields, map[string]string, map[Field]string:
		q, err := p.normalizer().New(v)
		if err != nil {
			return false
		}
		return p.Equal(q.Fields)
	default:
		return false
	}
}

// Digits concatenates area code, prefix and line number, followed by
// " x<extension>" when an extension is set.
func (p *PhoneNumber) Digits() string {
	var b strings.Builder
	b.WriteString(p.Get(AreaCode))
	b.WriteString(p.Get(Prefix))
	b.WriteString(p.Get(Number))
	if ext, ok := p.Lookup(Extension); ok {
		b.WriteString(" x")
		b.WriteString(ext)
	}
	return b.String()
}

// Unpack exports the structured parts. Absent parts stay nil.
func (p *PhoneNumber) Unpack() Fields {
	return p.Fields.Clone()
}

// Pack flattens an ordered sequence of area code, prefix, line number and
// optional extension into one string. Sequences shorter than three yield "".
func Pack(parts []string) string {
	if len(parts) < 3 {
		return ""
	}
	var b strings.Builder
	for _, part := range parts[:3] {
		b.WriteString(part)
	}
	if len(parts) == 4 {
		b.WriteString(parts[3])
	}
	return b.String()
}

func (p *PhoneNumber) Pack(parts []string) string {
	return Pack(parts)
}

// PackInPlace stores the packed sequence in the number's flat form,
// leaving the structured parts alone.
func (p *PhoneNumber) PackInPlace(parts []string) {
	p.packed = Pack(parts)
}

func (p *PhoneNumber) Packed() string {
	return p.packed
}
