package hooks

import "fmt"

// ObsMode selects which observation encoder is active.
type ObsMode int

const (
	ObsGlobal ObsMode = iota
	ObsLocal
)

func (m ObsMode) String() string {
	switch m {
	case ObsGlobal:
		return "global"
	case ObsLocal:
		return "local"
	}
	return fmt.Sprintf("ObsMode(%d)", int(m))
}

func ParseObsMode(name string) (ObsMode, error) {
	switch name {
	case "global":
		return ObsGlobal, nil
	case "local":
		return ObsLocal, nil
	}
	return 0, fmt.Errorf("unknown observation mode %q (want global or local)", name)
}

// RewardMode selects which reward shaper is active.
type RewardMode int

const (
	RewardBasic RewardMode = iota
	RewardTimePressure
	RewardProximity
)

func (m RewardMode) String() string {
	switch m {
	case RewardBasic:
		return "basic"
	case RewardTimePressure:
		return "time_pressure"
	case RewardProximity:
		return "proximity"
	}
	return fmt.Sprintf("RewardMode(%d)", int(m))
}

func ParseRewardMode(name string) (RewardMode, error) {
	switch name {
	case "basic":
		return RewardBasic, nil
	case "time_pressure":
		return RewardTimePressure, nil
	case "proximity":
		return RewardProximity, nil
	}
	return 0, fmt.Errorf("unknown reward mode %q (want basic, time_pressure or proximity)", name)
}

// Config fixes the encoder and shaper for one Hooks instance. Callers build
// it before constructing the environment; it is not mutated afterwards.
type Config struct {
	Obs    ObsMode
	Reward RewardMode
}

func (c Config) Name() string {
	return c.Obs.String() + "_" + c.Reward.String()
}
