package dispatchers

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Parsed is the input record a dispatcher resolves: the positional
// arguments plus whatever named options an external parser produced.
type Parsed struct {
	// Positional holds the non-flag tokens, in order.
	Positional []string
	// Options holds named options keyed without leading dashes.
	Options map[string]any
	// Sliced is Positional minus the tokens consumed by resolution. Set by Eval.
	Sliced []string
}

// NewParsed creates a Parsed from positional tokens and options.
func NewParsed(positional []string, options map[string]any) *Parsed {
	return &Parsed{Positional: positional, Options: options}
}

// Args wraps a raw token list.
func Args(tokens ...string) *Parsed {
	return &Parsed{Positional: tokens}
}

// Clone returns a shallow copy with its own slices and options map.
func (p *Parsed) Clone() *Parsed {
	if p == nil {
		return &Parsed{}
	}
	return &Parsed{
		Positional: slices.Clone(p.Positional),
		Options:    maps.Clone(p.Options),
		Sliced:     slices.Clone(p.Sliced),
	}
}

// Get returns the raw option value.
func (p *Parsed) Get(name string) (any, bool) {
	if p == nil || p.Options == nil {
		return nil, false
	}
	v, ok := p.Options[name]
	return v, ok
}

// Set assigns an option value.
func (p *Parsed) Set(name string, value any) {
	if p.Options == nil {
		p.Options = make(map[string]any)
	}
	p.Options[name] = value
}

// Has returns true if the option is present and truthy (for boolean flags).
func (p *Parsed) Has(name string) bool {
	v, ok := p.Get(name)
	return ok && Truthy(v)
}

// String returns the value of an option, or defaultVal if not present.
func (p *Parsed) String(name, defaultVal string) string {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Number returns the option as a float64 when it holds a numeric value.
// Strings are not converted; a parser that wants numbers must produce them.
func (p *Parsed) Number(name string) (float64, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Int returns the integer value of an option, or defaultVal if not present or invalid.
func (p *Parsed) Int(name string, defaultVal int) int {
	if n, ok := p.Number(name); ok {
		return int(n)
	}
	str := p.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Text returns the option's value as text. Boolean flags and nil values
// carry no text, so a bare --name reports false.
func (p *Parsed) Text(name string) (string, bool) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return "", false
	}
	switch v := v.(type) {
	case bool:
		return "", false
	case string:
		return v, v != ""
	default:
		return fmt.Sprint(v), true
	}
}

// First returns the first positional token, or "".
func (p *Parsed) First() string {
	if p == nil || len(p.Positional) == 0 {
		return ""
	}
	return p.Positional[0]
}
