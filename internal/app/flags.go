package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer applications.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Size        int
	PTree       float64
	PFire       float64
	Window      int
	TreeDensity float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "forest",
		Scale:       3,
		TPS:         20,
		Seed:        42,
		Size:        200,
		PTree:       0.001,
		PFire:       0.00001,
		Window:      6000,
		TreeDensity: 0.3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.Float64Var(&c.PTree, "p-tree", c.PTree, "per-step tree growth probability")
	fs.Float64Var(&c.PFire, "p-fire", c.PFire, "per-step lightning probability")
	fs.IntVar(&c.Window, "window", c.Window, "history window size in steps")
	fs.Float64Var(&c.TreeDensity, "tree-density", c.TreeDensity, "initial tree density")
}

// SimOptions converts the flag values into the string map consumed by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":         strconv.Itoa(c.Size),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"p_tree":       strconv.FormatFloat(c.PTree, 'f', -1, 64),
		"p_fire":       strconv.FormatFloat(c.PFire, 'f', -1, 64),
		"window":       strconv.Itoa(c.Window),
		"tree_density": strconv.FormatFloat(c.TreeDensity, 'f', -1, 64),
	}
}
