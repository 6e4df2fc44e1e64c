package actions

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

// EnvList prints the sorted names of the environment variables.
// A leftover argument names a variable that is not set.
func EnvList(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return envList(parsed, deps)
	}
}

func envList(parsed *dispatchers.Parsed, deps Deps) (any, error) {
	if len(parsed.Sliced) > 0 {
		return nil, fmt.Errorf("environment variable '%s' is not set", parsed.Sliced[0])
	}

	var names []string
	for _, kv := range deps.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return strings.Join(names, "\n"), nil
}

// EnvValue prints the value of one environment variable.
func EnvValue(deps Deps, name string) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return envValue(parsed, deps, name)
	}
}

func envValue(_ *dispatchers.Parsed, deps Deps, name string) (any, error) {
	value, ok := deps.LookupEnv(name)
	if !ok {
		return nil, fmt.Errorf("environment variable '%s' is not set", name)
	}
	return value, nil
}
