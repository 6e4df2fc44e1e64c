package actions

import (
	"os"

	"github.com/taskcmd/taskcmd/internal/config"
)

// Deps holds what the actions reach outside the process for.
type Deps struct {
	Version   func() string
	Get       func(string) (string, bool)
	List      func() ([]config.Entry, error)
	Set       func(string, string) error
	Unset     func(string) (bool, error)
	LookupEnv func(string) (string, bool)
	Environ   func() []string
}

// DefaultDeps wires the actions to the rc file and the process environment.
func DefaultDeps(version string) Deps {
	provider := config.NewProvider()
	return Deps{
		Version:   func() string { return version },
		Get:       provider.Get,
		List:      provider.List,
		Set:       provider.Set,
		Unset:     provider.Unset,
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
	}
}
