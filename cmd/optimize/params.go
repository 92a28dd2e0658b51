package main

import (
	"github.com/pthm-cable/aquarium/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value

	field func(*config.Config) *float64
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of economy and pacing parameters.
// Prices of the fish themselves stay fixed so runs remain comparable.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Economy
			{Name: "seaweed_price", Path: "economy.seaweed_price", Min: 1, Max: 8, Default: 3,
				field: func(c *config.Config) *float64 { return &c.Economy.SeaweedPrice }},
			{Name: "sell_base_price", Path: "economy.sell_base_price", Min: 1, Max: 10, Default: 3,
				field: func(c *config.Config) *float64 { return &c.Economy.SellBasePrice }},
			{Name: "sell_stage_bonus", Path: "economy.sell_stage_bonus", Min: 0.1, Max: 1.5, Default: 0.4,
				field: func(c *config.Config) *float64 { return &c.Economy.SellStageBonus }},
			{Name: "base_income", Path: "economy.base_income", Min: 0.005, Max: 0.08, Default: 0.02,
				field: func(c *config.Config) *float64 { return &c.Economy.BaseIncome }},
			{Name: "starvation_penalty", Path: "economy.starvation_penalty", Min: 0, Max: 20, Default: 5,
				field: func(c *config.Config) *float64 { return &c.Economy.StarvationPenalty }},
			// Hunger
			{Name: "hunger_base_rate", Path: "hunger.base_rate", Min: 0.2, Max: 1.0, Default: 0.5,
				field: func(c *config.Config) *float64 { return &c.Hunger.BaseRate }},
			{Name: "hunger_stage_increment", Path: "hunger.stage_increment", Min: 0, Max: 0.3, Default: 0.125,
				field: func(c *config.Config) *float64 { return &c.Hunger.StageIncrement }},
			// Feeding
			{Name: "eat_cooldown", Path: "feeding.eat_cooldown", Min: 2, Max: 10, Default: 5,
				field: func(c *config.Config) *float64 { return &c.Feeding.EatCooldown }},
			// Breeding
			{Name: "breeding_cooldown", Path: "breeding.cooldown", Min: 120, Max: 900, Default: 600,
				field: func(c *config.Config) *float64 { return &c.Breeding.Cooldown }},
			{Name: "gestation_delay", Path: "breeding.gestation_delay", Min: 30, Max: 240, Default: 120,
				field: func(c *config.Config) *float64 { return &c.Breeding.GestationDelay }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	for i, v := range pv.Clamp(values) {
		*pv.Specs[i].field(cfg) = v
	}
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = *spec.field(cfg)
	}
	return v
}
