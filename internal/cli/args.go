package cli

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

var numeric = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// ParseArgs splits argv into positional tokens and options.
//
//	--key=value   option with a value; numeric values become int64 or float64
//	--flag        boolean option set to true
//	-abc          short booleans a, b and c
//	--            every later token is positional
//
// Numbers such as -5 stay positional. A repeated option collects its
// values into a []any in order.
func ParseArgs(argv []string) *dispatchers.Parsed {
	parsed := dispatchers.NewParsed([]string{}, map[string]any{})

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch {
		case arg == "--":
			parsed.Positional = append(parsed.Positional, argv[i+1:]...)
			return parsed

		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if hasValue {
				addOption(parsed, name, convertValue(value))
			} else {
				addOption(parsed, name, true)
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1 && !numeric.MatchString(arg):
			for _, r := range arg[1:] {
				addOption(parsed, string(r), true)
			}

		default:
			parsed.Positional = append(parsed.Positional, arg)
		}
	}

	return parsed
}

func addOption(parsed *dispatchers.Parsed, name string, value any) {
	prev, ok := parsed.Get(name)
	if !ok {
		parsed.Set(name, value)
		return
	}

	if list, isList := prev.([]any); isList {
		parsed.Set(name, append(list, value))
		return
	}
	parsed.Set(name, []any{prev, value})
}

func convertValue(value string) any {
	if !numeric.MatchString(value) {
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
