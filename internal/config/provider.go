package config

import (
	"sort"

	"github.com/taskcmd/taskcmd/internal/usage"
)

// Provider wraps configuration operations for the config commands.
// Writes are validated against Keys and serialized with WithLock.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Entry is one key/value pair in display order.
type Entry struct {
	Key   Key
	Value string
}

// List returns every visible key with its effective value, in Keys order.
// Keys set in the file but unknown to Keys are appended sorted by name.
func (p *Provider) List() ([]Entry, error) {
	all, err := GetAll()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	known := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		known[k.Name] = true
		if k.Hidden {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: all[k.Name]})
	}

	var extra []string
	for name := range all {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		entries = append(entries, Entry{Key: Key{Name: name}, Value: all[name]})
	}

	return entries, nil
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	if _, ok := LookupKey(key); !ok {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes a configuration value, restoring its default.
func (p *Provider) Unset(key string) (bool, error) {
	removed := false
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, removed = Unset(lines, key)
		return WriteLines(lines)
	})
	return removed, err
}
