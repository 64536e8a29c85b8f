package phone

import (
	"regexp"
)

// Optional +, optional 1, optional (area code), prefix, line number and an
// optional extension introduced by any of e, x, t (e.g. "ext", "x").
// Area codes and prefixes never start with 0 or 1 and an area code's middle
// digit is never 9.
var rePhone = regexp.MustCompile(
	`\+?\s*1?\s*[./-]?\s*` +
		`\(?([2-9][0-8]\d)?\)?\s*[./-]?\s*` +
		`([2-9]\d{2})\s*[./-]?\s*` +
		`(\d{4})\s*(?:\s*e?x?t?\s*(\d+))?`,
)

func (p *PhoneNumber) parse(text string) {
	if loc := rePhone.FindStringSubmatchIndex(text); loc != nil {
		for i, f := range AllFields {
			start, end := loc[2*(i+1)], loc[2*(i+1)+1]
			if start < 0 {
				p.Clear(f)
				continue
			}
			p.Set(f, text[start:end])
		}
	}

	if p.Present(AreaCode) {
		return
	}
	if code, ok := p.normalizer().DefaultAreaCode(); ok {
		p.Set(AreaCode, code)
	}
}

var (
	reAreaCode   = regexp.MustCompile(`^[2-9][0-8]\d$`)
	reExchange   = regexp.MustCompile(`^[2-9]\d{2}$`)
	reLineNumber = regexp.MustCompile(`^\d{4}$`)
	reDigits     = regexp.MustCompile(`^\d+$`)
)

// ValidAreaCode reports whether code is a three digit area code the parser
// would capture.
func ValidAreaCode(code string) bool {
	return reAreaCode.MatchString(code)
}

func ValidExchange(prefix string) bool {
	return reExchange.MatchString(prefix)
}

func ValidLineNumber(number string) bool {
	return reLineNumber.MatchString(number)
}

func ValidExtension(ext string) bool {
	return reDigits.MatchString(ext)
}
