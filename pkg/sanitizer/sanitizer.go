package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var rawPipeline = Pipeline{
	stripControl,
	asciiDigits,
	TrimAndNormalize,
}

// SanitizeRaw prepares phone text for parsing: control characters are
// dropped, full-width digits become ASCII and whitespace is collapsed.
func SanitizeRaw(raw string) string {
	return rawPipeline.Apply(raw)
}

// SanitizeParts trims every part of a pack sequence. Order and empty parts
// are preserved.
func SanitizeParts(parts []string) []string {
	if parts == nil {
		return nil
	}
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = asciiDigits(strings.TrimSpace(part))
	}
	return out
}

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// asciiDigits maps full-width digits (U+FF10..U+FF19) to 0-9.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, s)
}
