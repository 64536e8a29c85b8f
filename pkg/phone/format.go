package phone

import (
	"strings"
)

const (
	PresetUS        = "us"
	PresetUSShort   = "us_short"
	PresetNANPShort = "nanp_short"
)

// Presets maps preset names to templates. The us template keeps its %m and
// %x tokens, which are not placeholders and render verbatim. The short
// presets are "(%a) %p-%n" rather than the legacy "(%a) %m-%p", so us_short
// yields "(800) 555-2468".
var Presets = map[string]string{
	PresetUS:        "%c (%a) %m-%p x %x",
	PresetUSShort:   "(%a) %p-%n",
	PresetNANPShort: "(%a) %p-%n",
}

type placeholder struct {
	token string
	value func(p *PhoneNumber) string
}

// Country code is never populated, so %c always renders empty.
var placeholders = []placeholder{
	{"%c", func(*PhoneNumber) string { return "" }},
	{"%a", func(p *PhoneNumber) string { return p.Get(AreaCode) }},
	{"%p", func(p *PhoneNumber) string { return p.Get(Prefix) }},
	{"%n", func(p *PhoneNumber) string { return p.Get(Number) }},
	{"%e", func(p *PhoneNumber) string { return p.Get(Extension) }},
}

// Format renders the number with format, which may be empty (a template is
// built from the parts that are present), a preset name, or a literal
// template using %c, %a, %p, %n and %e. An empty number renders as "".
func (p *PhoneNumber) Format(format string) string {
	if p.IsEmpty() {
		return ""
	}

	switch {
	case format == "":
		format = p.dynamicTemplate()
	default:
		if preset, ok := Presets[format]; ok {
			format = preset
		}
	}

	return p.expand(format)
}

func (p *PhoneNumber) String() string {
	return p.Format("")
}

func (p *PhoneNumber) dynamicTemplate() string {
	var b strings.Builder
	if p.Present(AreaCode) {
		b.WriteString("(%a) ")
	}
	if p.Present(Prefix) {
		b.WriteString("%p-")
	}
	if p.Present(Number) {
		b.WriteString("%n")
	}
	if p.Present(Extension) {
		b.WriteString(" x%e")
	}
	return b.String()
}

func (p *PhoneNumber) expand(template string) string {
	for _, ph := range placeholders {
		template = strings.ReplaceAll(template, ph.token, ph.value(p))
	}
	return template
}
