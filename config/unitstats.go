package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rampart/game"
)

// UnitStats is one entry of the unit stat table.
type UnitStats struct {
	Speed         int  `yaml:"speed"`
	Health        int  `yaml:"health"`
	Armor         int  `yaml:"armor"`
	AttackMod     int  `yaml:"attackMod"`
	SiegeStrength int  `yaml:"siegeStrength"`
	Fast          bool `yaml:"fast"`
}

// UnitStatsConfig is the stat table file: unit type name to stat block.
// Defender types live in the same table with a zero siege strength.
type UnitStatsConfig struct {
	Units map[string]UnitStats `yaml:"units"`
}

// LoadUnitStats reads and parses a stat table from a YAML file.
func LoadUnitStats(path string) (*UnitStatsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit stats file %s: %w", path, err)
	}
	cfg, err := ParseUnitStats(data)
	if err != nil {
		return nil, fmt.Errorf("unit stats file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseUnitStats parses and validates a stat table from YAML bytes.
func ParseUnitStats(data []byte) (*UnitStatsConfig, error) {
	var cfg UnitStatsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse unit stats YAML: %w", err)
	}
	if err := validateUnitStats(&cfg); err != nil {
		return nil, fmt.Errorf("invalid unit stats: %w", err)
	}
	return &cfg, nil
}

func validateUnitStats(cfg *UnitStatsConfig) error {
	if len(cfg.Units) == 0 {
		return fmt.Errorf("at least one unit type is required")
	}
	for name, s := range cfg.Units {
		if s.Speed < 1 {
			return fmt.Errorf("unit %s: speed must be at least 1, got %d", name, s.Speed)
		}
		if s.Health < 1 {
			return fmt.Errorf("unit %s: health must be at least 1, got %d", name, s.Health)
		}
		if s.Armor < 0 {
			return fmt.Errorf("unit %s: armor must not be negative, got %d", name, s.Armor)
		}
		if s.SiegeStrength < 0 {
			return fmt.Errorf("unit %s: siege strength must not be negative, got %d", name, s.SiegeStrength)
		}
	}
	return nil
}

// Stats resolves a named entry into the engine's stat block.
func (c *UnitStatsConfig) Stats(name string) (game.Stats, error) {
	s, ok := c.Units[name]
	if !ok {
		return game.Stats{}, fmt.Errorf("unknown unit type %q", name)
	}
	return game.Stats{
		Name:          name,
		Speed:         s.Speed,
		Health:        s.Health,
		Armor:         s.Armor,
		AttackMod:     s.AttackMod,
		SiegeStrength: s.SiegeStrength,
		Fast:          s.Fast,
	}, nil
}

// defaultUnitStatsYAML is the built-in table used by the demo runner and as
// a fallback when no file is given.
const defaultUnitStatsYAML = `
units:
  grunt:
    speed: 1
    health: 12
    armor: 0
    attackMod: 0
    siegeStrength: 2
  runner:
    speed: 2
    health: 8
    armor: 0
    attackMod: 0
    siegeStrength: 1
    fast: true
  brute:
    speed: 1
    health: 24
    armor: 2
    attackMod: 1
    siegeStrength: 4
  halberdier:
    speed: 1
    health: 15
    armor: 1
    attackMod: 0
    siegeStrength: 0
`

// DefaultUnitStats returns the built-in stat table. It panics on parse
// failure since the table ships with the binary.
func DefaultUnitStats() *UnitStatsConfig {
	cfg, err := ParseUnitStats([]byte(defaultUnitStatsYAML))
	if err != nil {
		panic(fmt.Sprintf("built-in unit stats are broken: %v", err))
	}
	return cfg
}
