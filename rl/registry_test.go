package rl

import (
	"strings"
	"testing"

	"coveragerl/hooks"
)

func TestRegistryMake(t *testing.T) {
	Register("registry_test_env", func(h *hooks.Hooks) (Environment, error) {
		return newStubEnv(h, 10), nil
	})

	h, err := hooks.New(hooks.Config{Obs: hooks.ObsGlobal, Reward: hooks.RewardBasic})
	if err != nil {
		t.Fatal(err)
	}
	env, err := Make("registry_test_env", h)
	if err != nil {
		t.Fatal(err)
	}
	if env.Space().Len != 300 {
		t.Errorf("expected the environment to expose the hooks space, got %d", env.Space().Len)
	}

	found := false
	for _, name := range Registered() {
		if name == "registry_test_env" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected registry_test_env in %v", Registered())
	}
}

func TestMakeUnknownEnvironment(t *testing.T) {
	h, err := hooks.New(hooks.Config{Obs: hooks.ObsGlobal, Reward: hooks.RewardBasic})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Make("no_such_map", h)
	if err == nil {
		t.Fatal("expected an error for an unregistered environment")
	}
	if !strings.Contains(err.Error(), "no_such_map") {
		t.Errorf("expected the name in the error, got %v", err)
	}
}
