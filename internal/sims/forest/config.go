package forest

import (
	"fmt"
	"strconv"
)

// Config controls the forest-fire simulation dimensions and rates.
type Config struct {
	// Size is the side length of the square grid.
	Size int

	Seed int64

	// PTree is the per-step probability that an empty cell sprouts a tree.
	PTree float64
	// PFire is the per-step lightning probability for a tree with no
	// burning neighbor.
	PFire float64

	// Window bounds every history kept by the simulation: the fire history,
	// each cluster's size history, and how long a dead cluster stays in the
	// registry.
	Window int

	// InitialTreeDensity is the probability that a cell starts as a tree.
	InitialTreeDensity float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:               200,
		Seed:               1337,
		PTree:              0.001,
		PFire:              0.00001,
		Window:             6000,
		InitialTreeDensity: 0.3,
	}
}

// Validate reports the first configuration error, if any. An invalid config
// is fatal to the instance being constructed; there is no runtime recovery.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("forest: grid size must be positive, got %d", c.Size)
	}
	if c.PTree < 0 || c.PTree > 1 {
		return fmt.Errorf("forest: p_tree must be in [0,1], got %g", c.PTree)
	}
	if c.PFire < 0 || c.PFire > 1 {
		return fmt.Errorf("forest: p_fire must be in [0,1], got %g", c.PFire)
	}
	if c.Window <= 0 {
		return fmt.Errorf("forest: history window must be positive, got %d", c.Window)
	}
	if c.InitialTreeDensity < 0 || c.InitialTreeDensity > 1 {
		return fmt.Errorf("forest: tree density must be in [0,1], got %g", c.InitialTreeDensity)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["p_tree"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.PTree = parsed
		}
	}
	if v, ok := cfg["p_fire"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.PFire = parsed
		}
	}
	if v, ok := cfg["window"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Window = parsed
		}
	}
	if v, ok := cfg["tree_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.InitialTreeDensity = parsed
		}
	}
	return c
}
