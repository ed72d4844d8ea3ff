package colony

import "strconv"

// Params holds tunable rates and sizes for the colony sim.
type Params struct {
	Colonies      int
	SeedRadiusMin int
	SeedRadiusMax int
	GrowthChance  float64
	RetreatChance float64
	ScentDeposit  float64
	ScentDecay    float64

	// MaxAct is the per-kind activity ceiling consumed by the activity
	// constraint. Kinds absent from the map are not tracked.
	MaxAct map[int]float64
}

// Config controls the colony world dimensions and parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 160,
		Seed:   1337,
		Params: Params{
			Colonies:      10,
			SeedRadiusMin: 2,
			SeedRadiusMax: 4,
			GrowthChance:  0.55,
			RetreatChance: 0.04,
			ScentDeposit:  0.6,
			ScentDecay:    0.92,
			MaxAct: map[int]float64{
				KindSettler: 24,
				KindRover:   48,
			},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["colonies"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Colonies = parsed
		}
	}
	if v, ok := cfg["growth_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.GrowthChance = parsed
		}
	}
	if v, ok := cfg["retreat_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RetreatChance = parsed
		}
	}
	return c
}
