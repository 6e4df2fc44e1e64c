package config

import "strings"

// splitEntry returns the key and raw value of a key=value line.
// ok is false for blank lines, comments and malformed lines.
func splitEntry(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	parts := strings.SplitN(trimmed, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	return strings.TrimSpace(parts[0]), parts[1], true
}

// Set replaces the value of key in lines, or appends it. An inline comment
// after the old value is kept. The bool reports whether key already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		k, old, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(old, "#"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(old[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset removes every line setting key. The bool reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
