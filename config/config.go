// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig        `yaml:"screen"`
	Arena        ArenaConfig         `yaml:"arena"`
	Physics      PhysicsConfig       `yaml:"physics"`
	Fish         FishConfig          `yaml:"fish"`
	Hunger       HungerConfig        `yaml:"hunger"`
	Feeding      FeedingConfig       `yaml:"feeding"`
	Growth       GrowthConfig        `yaml:"growth"`
	Movement     MovementConfig      `yaml:"movement"`
	Targeting    TargetingConfig     `yaml:"targeting"`
	Breeding     BreedingConfig      `yaml:"breeding"`
	Economy      EconomyConfig       `yaml:"economy"`
	Seaweed      SeaweedConfig       `yaml:"seaweed"`
	Species      []SpeciesConfig     `yaml:"species"`
	Telemetry    TelemetryConfig     `yaml:"telemetry"`
	Achievements []AchievementConfig `yaml:"achievements"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical front-end.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the tank bounds in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	SpeedScalar       float64 `yaml:"speed_scalar"`         // Frame-rate normalizing constant (velocity is per 1/60 s)
	MaxStep           float64 `yaml:"max_step"`             // Longest single sub-step in seconds
	BounceDamping     float64 `yaml:"bounce_damping"`       // Velocity retained after hitting a wall
	MaxTimeScale      float64 `yaml:"max_time_scale"`       // Largest accepted speed multiplier
	MaxStepsPerUpdate int     `yaml:"max_steps_per_update"` // Updates needing more sub-steps are refused
}

// FishConfig holds body and speed parameters shared by all species.
type FishConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`   // Velocity component range for wandering
	MaxVelocity float64 `yaml:"max_velocity"` // Hard cap on velocity magnitude
	BodyWidth   float64 `yaml:"body_width"`
	BodyHeight  float64 `yaml:"body_height"`
	SpawnX      float64 `yaml:"spawn_x"` // Where bought fish are released
	SpawnY      float64 `yaml:"spawn_y"`
}

// HungerConfig holds hunger accrual and starvation parameters.
type HungerConfig struct {
	BaseRate        float64 `yaml:"base_rate"`        // Hunger per second at stage 1
	StageIncrement  float64 `yaml:"stage_increment"`  // Extra hunger per second per stage above 1
	HungryThreshold float64 `yaml:"hungry_threshold"` // Above this a fish seeks food
	DeathThreshold  float64 `yaml:"death_threshold"`  // At or above this a fish starves if no food exists
	BoostRange      float64 `yaml:"boost_range"`      // Hunger above threshold that reaches MaxBoost
	MaxBoost        float64 `yaml:"max_boost"`        // Seek speed multiplier cap
	AutoFeedAt      float64 `yaml:"auto_feed_at"`     // Auto-feed buys seaweed when a fish is hungrier than this
}

// FeedingConfig holds seaweed contact parameters.
type FeedingConfig struct {
	EatCooldown   float64 `yaml:"eat_cooldown"`   // Seconds between meals
	ReachPadding  float64 `yaml:"reach_padding"`  // Fish box is inflated by this in each dimension
	ArrivalRadius float64 `yaml:"arrival_radius"` // Seek stops inside this distance
}

// GrowthConfig holds the stage schedule.
type GrowthConfig struct {
	MaxStage       int     `yaml:"max_stage"`
	FoodNeeded     []int   `yaml:"food_needed"`      // Meals to leave stage i+1; len must be MaxStage-1
	SizePerStage   float64 `yaml:"size_per_stage"`   // Body scale gained per stage
	SpeedBonus     float64 `yaml:"speed_bonus"`      // Extra relative speed of the smallest fish
	SpeedBonusSpan float64 `yaml:"speed_bonus_span"` // Stage at which the speed bonus reaches zero
}

// MovementConfig holds idle wander parameters.
type MovementConfig struct {
	SwimMin          float64 `yaml:"swim_min"` // Swim duration range before redirecting
	SwimMax          float64 `yaml:"swim_max"`
	SlowdownWindow   float64 `yaml:"slowdown_window"`   // Final seconds of a swim spent decelerating
	SlowdownFactor   float64 `yaml:"slowdown_factor"`   // Velocity multiplier per 1/60 s while decelerating
	RedirectRate     float64 `yaml:"redirect_rate"`     // Random redirections per second
	HungryRangeX     float64 `yaml:"hungry_range_x"`    // Wander range multipliers while hungry
	HungryRangeY     float64 `yaml:"hungry_range_y"`
	IdleRangeY       float64 `yaml:"idle_range_y"`      // Vertical wander range multiplier while fed
	BaseSpeed        float64 `yaml:"base_speed"`        // Baseline relative speed
	SpeedWave        float64 `yaml:"speed_wave"`        // Amplitude of the sinusoidal baseline
	SpeedWaveFreq    float64 `yaml:"speed_wave_freq"`   // Radians per second of the baseline
	SeekSpeed        float64 `yaml:"seek_speed"`        // Relative speed while seeking
	SeekHungerGain   float64 `yaml:"seek_hunger_gain"`  // Relative speed per point of hunger while seeking
	SeekRangeX       float64 `yaml:"seek_range_x"`      // Seek velocity multipliers
	SeekRangeY       float64 `yaml:"seek_range_y"`
	Smoothing        float64 `yaml:"smoothing"`         // Exponential smoothing factor per 1/60 s
	VariationMin     float64 `yaml:"variation_min"`     // Speed variation draw range
	VariationMax     float64 `yaml:"variation_max"`
	VariationEveryLo float64 `yaml:"variation_every_lo"` // Seconds between variation draws
	VariationEveryHi float64 `yaml:"variation_every_hi"`
	ScatterRange     float64 `yaml:"scatter_range"`     // Scatter velocity range multiplier
}

// TargetingConfig holds seaweed selection weights.
type TargetingConfig struct {
	DistanceWeight   float64 `yaml:"distance_weight"`
	ContentionWeight float64 `yaml:"contention_weight"`
}

// BreedingConfig holds pairing, contact and gestation parameters.
type BreedingConfig struct {
	Cooldown        float64 `yaml:"cooldown"`         // Seconds between breedings
	GestationDelay  float64 `yaml:"gestation_delay"`  // Seconds from fertilization to spawn
	ContactRange    float64 `yaml:"contact_range"`    // Partners closer than this are touching
	RequiredContact float64 `yaml:"required_contact"` // Seconds of contact to complete breeding
	ApproachSpeed   float64 `yaml:"approach_speed"`   // Fraction of base speed used to close in
	BroodMin        int     `yaml:"brood_min"`
	BroodMax        int     `yaml:"brood_max"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Offspring land within ± this of the mother
}

// EconomyConfig holds coin balance and price parameters.
type EconomyConfig struct {
	StartingCoins     float64 `yaml:"starting_coins"`
	SeaweedPrice      float64 `yaml:"seaweed_price"`
	SellBasePrice     float64 `yaml:"sell_base_price"`
	SellStageBonus    float64 `yaml:"sell_stage_bonus"`
	StarvationPenalty float64 `yaml:"starvation_penalty"`
	BaseIncome        float64 `yaml:"base_income"` // Coins per second per stage-1 fish
}

// SeaweedConfig holds consumable geometry and placement.
type SeaweedConfig struct {
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	SpawnPoints []PointConfig `yaml:"spawn_points"` // Purchases cycle through these in order
}

// PointConfig is a position in arena coordinates.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpeciesConfig defines a purchasable fish species.
type SpeciesConfig struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// TelemetryConfig holds stats window parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of simulated time per window
}

// AchievementConfig defines a sales milestone.
type AchievementConfig struct {
	Name  string `yaml:"name"`
	Sales int    `yaml:"sales"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpeciesIndex map[string]int // name -> index into Species
	TickDT       float64        // 1 / SpeedScalar, the nominal frame length
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate checks the invariants the simulation relies on.
func (c *Config) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Growth.MaxStage < 1 {
		errs = append(errs, fmt.Errorf("growth.max_stage must be >= 1, got %d", c.Growth.MaxStage))
	}
	if len(c.Growth.FoodNeeded) != c.Growth.MaxStage-1 {
		errs = append(errs, fmt.Errorf("growth.food_needed needs %d entries, got %d", c.Growth.MaxStage-1, len(c.Growth.FoodNeeded)))
	}
	for i := 1; i < len(c.Growth.FoodNeeded); i++ {
		if c.Growth.FoodNeeded[i] < c.Growth.FoodNeeded[i-1] {
			errs = append(errs, fmt.Errorf("growth.food_needed must be non-decreasing at stage %d", i+1))
		}
	}
	if c.Breeding.BroodMin < 0 || c.Breeding.BroodMax < c.Breeding.BroodMin {
		errs = append(errs, fmt.Errorf("breeding brood range [%d, %d] is invalid", c.Breeding.BroodMin, c.Breeding.BroodMax))
	}
	if len(c.Seaweed.SpawnPoints) == 0 {
		errs = append(errs, errors.New("seaweed.spawn_points must not be empty"))
	}
	if len(c.Species) == 0 {
		errs = append(errs, errors.New("at least one species is required"))
	}
	if c.Physics.SpeedScalar <= 0 || c.Physics.MaxStep <= 0 {
		errs = append(errs, errors.New("physics.speed_scalar and physics.max_step must be positive"))
	}
	if c.Physics.MaxTimeScale < 1 || c.Physics.MaxStepsPerUpdate < 1 {
		errs = append(errs, fmt.Errorf("physics.max_time_scale and physics.max_steps_per_update must be >= 1, got %v and %d",
			c.Physics.MaxTimeScale, c.Physics.MaxStepsPerUpdate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDT = 1 / c.Physics.SpeedScalar

	c.Derived.SpeciesIndex = make(map[string]int, len(c.Species))
	for i, sp := range c.Species {
		c.Derived.SpeciesIndex[sp.Name] = i
	}
}

// FoodNeeded returns the meals required to leave the given stage.
// Zero means the stage is final.
func (c *Config) FoodNeeded(stage int) int {
	if stage < 1 || stage > len(c.Growth.FoodNeeded) {
		return 0
	}
	return c.Growth.FoodNeeded[stage-1]
}

// Clone returns a deep copy that can be modified without touching c.
func (c *Config) Clone() *Config {
	out := *c
	out.Growth.FoodNeeded = append([]int(nil), c.Growth.FoodNeeded...)
	out.Seaweed.SpawnPoints = append([]PointConfig(nil), c.Seaweed.SpawnPoints...)
	out.Species = append([]SpeciesConfig(nil), c.Species...)
	out.Achievements = append([]AchievementConfig(nil), c.Achievements...)
	out.Derived.SpeciesIndex = make(map[string]int, len(c.Derived.SpeciesIndex))
	for k, v := range c.Derived.SpeciesIndex {
		out.Derived.SpeciesIndex[k] = v
	}
	return &out
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
