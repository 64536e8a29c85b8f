package phone

type Field int

const (
	AreaCode Field = iota
	Prefix
	Number
	Extension
)

// AllFields is the fixed application order for mapping keys and placeholders.
var AllFields = []Field{AreaCode, Prefix, Number, Extension}

var fieldNames = map[Field]string{
	AreaCode:  "area_code",
	Prefix:    "prefix",
	Number:    "number",
	Extension: "extension",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

func ParseField(name string) (Field, bool) {
	for _, f := range AllFields {
		if fieldNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// Fields is the structured form of a number. A nil part is absent.
type Fields struct {
	AreaCode  *string `json:"area_code"`
	Prefix    *string `json:"prefix"`
	Number    *string `json:"number"`
	Extension *string `json:"extension"`
}

func (fs *Fields) ref(f Field) **string {
	switch f {
	case AreaCode:
		return &fs.AreaCode
	case Prefix:
		return &fs.Prefix
	case Number:
		return &fs.Number
	case Extension:
		return &fs.Extension
	}
	return nil
}

// Lookup reports the value of f and whether it is set.
func (fs Fields) Lookup(f Field) (string, bool) {
	p := fs.ref(f)
	if p == nil || *p == nil {
		return "", false
	}
	return **p, true
}

// Get returns the value of f, or "" when it is absent.
func (fs Fields) Get(f Field) string {
	v, _ := fs.Lookup(f)
	return v
}

func (fs *Fields) Set(f Field, value string) {
	if p := fs.ref(f); p != nil {
		*p = &value
	}
}

func (fs *Fields) Clear(f Field) {
	if p := fs.ref(f); p != nil {
		*p = nil
	}
}

// Present reports whether f is set to a non-empty value.
func (fs Fields) Present(f Field) bool {
	v, ok := fs.Lookup(f)
	return ok && v != ""
}

func (fs Fields) Equal(other Fields) bool {
	for _, f := range AllFields {
		a, aok := fs.Lookup(f)
		b, bok := other.Lookup(f)
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no pointers with fs.
func (fs Fields) Clone() Fields {
	var out Fields
	for _, f := range AllFields {
		if v, ok := fs.Lookup(f); ok {
			out.Set(f, v)
		}
	}
	return out
}

// Map returns the set parts keyed by field name.
func (fs Fields) Map() map[string]string {
	out := make(map[string]string, len(AllFields))
	for _, f := range AllFields {
		if v, ok := fs.Lookup(f); ok {
			out[f.String()] = v
		}
	}
	return out
}

// StringPtr is a convenience for building Fields literals.
func StringPtr(s string) *string {
	return &s
}
