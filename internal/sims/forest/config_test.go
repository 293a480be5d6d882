package forest

import "testing"

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative size", func(c *Config) { c.Size = -4 }},
		{"p_tree below range", func(c *Config) { c.PTree = -0.1 }},
		{"p_tree above range", func(c *Config) { c.PTree = 1.1 }},
		{"p_fire above range", func(c *Config) { c.PFire = 2 }},
		{"zero window", func(c *Config) { c.Window = 0 }},
		{"tree density above range", func(c *Config) { c.InitialTreeDensity = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
			if _, err := NewWithConfig(cfg); err == nil {
				t.Fatal("NewWithConfig should refuse an invalid config")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestNewValidatesArguments(t *testing.T) {
	if _, err := New(0, 0.5, 0.5); err == nil {
		t.Fatal("zero grid size should be rejected")
	}
	if _, err := New(10, -1, 0); err == nil {
		t.Fatal("negative p_tree should be rejected")
	}
	w, err := New(10, 0.5, 0.25)
	if err != nil {
		t.Fatalf("valid arguments rejected: %v", err)
	}
	if w.cfg.PTree != 0.5 || w.cfg.PFire != 0.25 || w.cfg.Size != 10 {
		t.Fatalf("arguments not applied: %+v", w.cfg)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":         "64",
		"seed":         "-5",
		"p_tree":       "0.25",
		"p_fire":       "0.125",
		"window":       "100",
		"tree_density": "0.5",
	})
	if cfg.Size != 64 || cfg.Seed != -5 || cfg.PTree != 0.25 || cfg.PFire != 0.125 ||
		cfg.Window != 100 || cfg.InitialTreeDensity != 0.5 {
		t.Fatalf("values not applied: %+v", cfg)
	}

	defaults := DefaultConfig()
	cfg = FromMap(map[string]string{
		"size":    "not-a-number",
		"p_tree":  "1.5",
		"p_fire":  "-0.5",
		"window":  "0",
		"unknown": "42",
	})
	if cfg != defaults {
		t.Fatalf("unparseable or out-of-range values should keep defaults, got %+v", cfg)
	}

	if got := FromMap(nil); got != defaults {
		t.Fatalf("nil map should yield defaults, got %+v", got)
	}
}
