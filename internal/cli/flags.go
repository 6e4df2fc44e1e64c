package cli

import (
	"slices"
	"strings"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/usage"
)

// Flag describes an option a command accepts. Help lists it, and an
// executable command rejects any option no Flag of its own or of
// RootFlags declares.
type Flag struct {
	Names       []string
	ValueHint   string
	Description string
}

var (
	RootFlags = []Flag{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
		},
	}

	ConfigKeyFlags = []Flag{
		{
			Names:       []string{"--key"},
			ValueHint:   "<key>",
			Description: "Configuration key, instead of the first argument",
		},
	}

	ConfigSetFlags = []Flag{
		{
			Names:       []string{"--key"},
			ValueHint:   "<key>",
			Description: "Configuration key, instead of the first argument",
		},
		{
			Names:       []string{"--value"},
			ValueHint:   "<value>",
			Description: "Value to assign, instead of the second argument",
		},
	}

	SumFlags = []Flag{
		{
			Names:       []string{"--num"},
			ValueHint:   "<n>",
			Description: "Add a number; may be repeated",
		},
		{
			Names:       []string{"--precision"},
			ValueHint:   "<digits>",
			Description: "Round the total to this many decimal places (default 2)",
		},
	}
)

func optionNames(sets ...[]Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flags := range sets {
		for _, f := range flags {
			for _, name := range f.Names {
				names[strings.TrimLeft(name, "-")] = true
			}
		}
	}
	return names
}

// rejectUndeclared wraps pre so that undeclared options fail with
// InvalidFlag before pre runs. Options are checked in name order.
func rejectUndeclared(pre dispatchers.PreFunc, flags []Flag) dispatchers.PreFunc {
	allowed := optionNames(RootFlags, flags)

	return func(parsed *dispatchers.Parsed) (*dispatchers.Parsed, error) {
		names := make([]string, 0, len(parsed.Options))
		for name := range parsed.Options {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if allowed[name] {
				continue
			}
			if len(name) == 1 {
				return nil, usage.InvalidFlag("-" + name)
			}
			return nil, usage.InvalidFlag("--" + name)
		}

		if pre == nil {
			return nil, nil
		}
		return pre(parsed)
	}
}
