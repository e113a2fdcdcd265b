package rl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"coveragerl/hooks"
)

// Factory builds one environment instance around a hooks configuration.
type Factory func(h *hooks.Hooks) (Environment, error)

var registry = map[string]Factory{}

// Register makes a named environment available to Make. Engine packages
// register their maps from an init function; registering a name twice is a
// programming error.
func Register(name string, f Factory) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("environment %q registered twice", name))
	}
	registry[name] = f
}

// Registered lists the available environment names, sorted.
func Registered() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Make constructs a registered environment with the given hooks.
func Make(name string, h *hooks.Hooks) (Environment, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("environment %q not registered (have: %s)", name, strings.Join(Registered(), ", "))
	}
	return f(h)
}
