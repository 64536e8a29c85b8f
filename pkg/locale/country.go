package locale

import "strings"

const DefaultTimezone = "UTC"

// Country is a NANP member reachable through country code +1.
type Country struct {
	Code            string // ISO 3166-1 alpha-2
	Name            string
	DefaultTimezone string // IANA identifier
}

var Countries = map[string]Country{
	"US": {Code: "US", Name: "United States", DefaultTimezone: "America/New_York"},
	"CA": {Code: "CA", Name: "Canada", DefaultTimezone: "America/Toronto"},
	"PR": {Code: "PR", Name: "Puerto Rico", DefaultTimezone: "America/Puerto_Rico"},
	"VI": {Code: "VI", Name: "U.S. Virgin Islands", DefaultTimezone: "America/St_Thomas"},
	"GU": {Code: "GU", Name: "Guam", DefaultTimezone: "Pacific/Guam"},
	"AS": {Code: "AS", Name: "American Samoa", DefaultTimezone: "Pacific/Pago_Pago"},
	"MP": {Code: "MP", Name: "Northern Mariana Islands", DefaultTimezone: "Pacific/Saipan"},
	"BS": {Code: "BS", Name: "Bahamas", DefaultTimezone: "America/Nassau"},
	"BB": {Code: "BB", Name: "Barbados", DefaultTimezone: "America/Barbados"},
	"BM": {Code: "BM", Name: "Bermuda", DefaultTimezone: "Atlantic/Bermuda"},
	"DO": {Code: "DO", Name: "Dominican Republic", DefaultTimezone: "America/Santo_Domingo"},
	"JM": {Code: "JM", Name: "Jamaica", DefaultTimezone: "America/Jamaica"},
	"TT": {Code: "TT", Name: "Trinidad and Tobago", DefaultTimezone: "America/Port_of_Spain"},
}

// Lookup finds a NANP country by region code, ignoring case.
func Lookup(region string) (Country, bool) {
	c, ok := Countries[strings.ToUpper(strings.TrimSpace(region))]
	return c, ok
}

// TimezoneFor returns the default timezone for region, or UTC when the
// region is not a known NANP member.
func TimezoneFor(region string) string {
	if c, ok := Lookup(region); ok {
		return c.DefaultTimezone
	}
	return DefaultTimezone
}
