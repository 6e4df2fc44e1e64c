package actions

import (
	"context"
	"fmt"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

func ShowVersion(deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return showVersion(parsed, deps)
	}
}

func showVersion(_ *dispatchers.Parsed, deps Deps) (any, error) {
	return fmt.Sprintf("taskcmd version %v", deps.Version()), nil
}
