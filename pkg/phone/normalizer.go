package phone

import (
	"sync"
)

// Normalizer builds PhoneNumbers and owns the default area code applied to
// inputs that carry none. The zero value has no default.
type Normalizer struct {
	mu              sync.RWMutex
	defaultAreaCode string
}

func NewNormalizer(defaultAreaCode string) *Normalizer {
	return &Normalizer{defaultAreaCode: defaultAreaCode}
}

func (n *Normalizer) DefaultAreaCode() (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.defaultAreaCode, n.defaultAreaCode != ""
}

// SetDefaultAreaCode replaces the default. An empty code unsets it.
func (n *Normalizer) SetDefaultAreaCode(code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.defaultAreaCode = code
}

func (n *Normalizer) Parse(text string) *PhoneNumber {
	p := &PhoneNumber{norm: n, original: text}
	p.parse(text)
	return p
}

func (n *Normalizer) FromFields(fs Fields) *PhoneNumber {
	p := &PhoneNumber{norm: n, original: fs}
	p.assignFields(fs)
	return p
}

// FromMap builds a number from a mapping keyed by field name. Unknown keys
// are ignored; a present key is assigned even when its value is empty.
func (n *Normalizer) FromMap(m map[string]string) *PhoneNumber {
	p := &PhoneNumber{norm: n, original: m}
	p.assignMap(m)
	return p
}

func (n *Normalizer) FromSequence(parts []string) *PhoneNumber {
	p := &PhoneNumber{norm: n, original: parts}
	p.PackInPlace(parts)
	return p
}

// New dispatches on the shape of input. Text is parsed, mappings are
// assigned part by part and sequences are packed; any other shape fails
// with an INVALID_ARGUMENT_KIND error.
func (n *Normalizer) New(input any) (*PhoneNumber, error) {
	p := &PhoneNumber{norm: n, original: input}
	if err := p.SetRaw(input); err != nil {
		return nil, err
	}
	return p, nil
}

var std = &Normalizer{}

// Default returns the process-wide Normalizer used by the package-level
// constructors.
func Default() *Normalizer {
	return std
}

func DefaultAreaCode() (string, bool) {
	return std.DefaultAreaCode()
}

func SetDefaultAreaCode(code string) {
	std.SetDefaultAreaCode(code)
}

func ResetDefaultAreaCode() {
	std.SetDefaultAreaCode("")
}

func Parse(text string) *PhoneNumber {
	return std.Parse(text)
}

func FromFields(fs Fields) *PhoneNumber {
	return std.FromFields(fs)
}

func FromMap(m map[string]string) *PhoneNumber {
	return std.FromMap(m)
}

func FromSequence(parts []string) *PhoneNumber {
	return std.FromSequence(parts)
}

func New(input any) (*PhoneNumber, error) {
	return std.New(input)
}
