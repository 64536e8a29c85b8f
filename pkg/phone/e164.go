package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

const nanpRegion = "US"

var ErrIncompleteNumber = errors.New("phone number needs an area code, prefix and line number")

// E164 renders the number as +1NXXNXXXXXX. The extension is dropped.
func (p *PhoneNumber) E164() (string, error) {
	return p.render(phonenumbers.E164)
}

// National renders the number in libphonenumber's national layout,
// including the extension when one is set.
func (p *PhoneNumber) National() (string, error) {
	return p.render(phonenumbers.NATIONAL)
}

func (p *PhoneNumber) render(format phonenumbers.PhoneNumberFormat) (string, error) {
	num, err := p.parsed()
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, format), nil
}

func (p *PhoneNumber) parsed() (*phonenumbers.PhoneNumber, error) {
	if !p.Present(AreaCode) || !p.Present(Prefix) || !p.Present(Number) {
		return nil, ErrIncompleteNumber
	}

	raw := p.Get(AreaCode) + p.Get(Prefix) + p.Get(Number)
	if ext, ok := p.Lookup(Extension); ok && ext != "" {
		raw += " ext. " + ext
	}

	num, err := phonenumbers.Parse(raw, nanpRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number %q: %w", raw, err)
	}
	return num, nil
}

// Region reports the ISO 3166-1 region libphonenumber assigns to the number,
// or "" when no NANP member claims it.
func (p *PhoneNumber) Region() (string, error) {
	num, err := p.parsed()
	if err != nil {
		return "", err
	}
	return phonenumbers.GetRegionCodeForNumber(num), nil
}
