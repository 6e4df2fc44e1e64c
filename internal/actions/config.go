package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskcmd/taskcmd/internal/config"
	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/usage"
)

// takeArgs fills each name from its --name option, or else from the next
// unconsumed token after the command. A bare --name has no value and
// does not count.
func takeArgs(parsed *dispatchers.Parsed, names ...string) ([]string, error) {
	rest := parsed.Sliced
	out := make([]string, len(names))

	for i, name := range names {
		if v, ok := parsed.Text(name); ok {
			out[i] = v
			continue
		}
		if len(rest) == 0 {
			return nil, usage.MissingArgument(name)
		}
		out[i], rest = rest[0], rest[1:]
	}

	return out, nil
}

func ConfigGet(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return configGet(parsed, deps)
	}
}

func configGet(parsed *dispatchers.Parsed, deps Deps) (any, error) {
	args, err := takeArgs(parsed, "key")
	if err != nil {
		return nil, err
	}

	key := args[0]
	value, found := deps.Get(key)
	if !found {
		return nil, usage.InvalidConfigKey(key)
	}

	return value, nil
}

func ConfigSet(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return configSet(parsed, deps)
	}
}

func configSet(parsed *dispatchers.Parsed, deps Deps) (any, error) {
	args, err := takeArgs(parsed, "key", "value")
	if err != nil {
		return nil, err
	}

	key, value := args[0], args[1]
	if err := deps.Set(key, value); err != nil {
		return nil, err
	}

	return fmt.Sprintf("%s=%s", key, value), nil
}

func ConfigUnset(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return configUnset(parsed, deps)
	}
}

func configUnset(parsed *dispatchers.Parsed, deps Deps) (any, error) {
	args, err := takeArgs(parsed, "key")
	if err != nil {
		return nil, err
	}

	key := args[0]
	removed, err := deps.Unset(key)
	if err != nil {
		return nil, err
	}

	if !removed {
		return fmt.Sprintf("%s was not set", key), nil
	}
	return fmt.Sprintf("unset %s", key), nil
}

func ConfigList(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return configList(parsed, deps)
	}
}

func configList(_ *dispatchers.Parsed, deps Deps) (any, error) {
	return deps.List()
}

// FormatEntries renders config list results as key=value lines.
func FormatEntries(_ *dispatchers.Parsed, result any) (any, error) {
	entries, ok := result.([]config.Entry)
	if !ok {
		return result, nil
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s=%s", e.Key.Name, e.Value))
	}
	return strings.Join(lines, "\n"), nil
}
