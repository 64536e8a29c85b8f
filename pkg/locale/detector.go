package locale

import "github.com/winthrop-intelligence/phone-wrangler/pkg/phone"

// InferCountry resolves the NANP country a complete number belongs to.
// It returns nil when the number is incomplete or its region is unknown.
func InferCountry(p *phone.PhoneNumber) *Country {
	region, err := p.Region()
	if err != nil || region == "" {
		return nil
	}
	c, ok := Lookup(region)
	if !ok {
		return nil
	}
	return &c
}

// InferTimezone is the default timezone of the number's country, or UTC.
func InferTimezone(p *phone.PhoneNumber) string {
	if c := InferCountry(p); c != nil {
		return c.DefaultTimezone
	}
	return DefaultTimezone
}
