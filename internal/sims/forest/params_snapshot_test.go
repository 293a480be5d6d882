package forest

import "testing"

func TestParameterSnapshotReflectsConfig(t *testing.T) {
	cfg := quietConfig(16, 32)
	cfg.PTree = 0.25
	cfg.PFire = 0.125
	world := newTestWorld(t, cfg)

	snap := world.Parameters()
	values := map[string]string{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}

	want := map[string]string{
		"size":    "16",
		"window":  "32",
		"p_tree":  "0.25",
		"p_fire":  "0.125",
	}
	for key, v := range want {
		if values[key] != v {
			t.Fatalf("snapshot %s = %q, want %q", key, values[key], v)
		}
	}
}

func TestFloatParameterRoundTrip(t *testing.T) {
	world := newTestWorld(t, quietConfig(8, 8))

	if !world.SetFloatParameter("p_tree", 0.4) {
		t.Fatal("p_tree should be settable")
	}
	if v, ok := world.FloatParameter("p_tree"); !ok || v != 0.4 {
		t.Fatalf("p_tree = %v, %v", v, ok)
	}

	// Out-of-range values clamp to the control bounds.
	world.SetFloatParameter("p_fire", 2)
	if v, _ := world.FloatParameter("p_fire"); v != 1 {
		t.Fatalf("p_fire should clamp to 1, got %v", v)
	}
	world.SetFloatParameter("p_fire", -3)
	if v, _ := world.FloatParameter("p_fire"); v != 0 {
		t.Fatalf("p_fire should clamp to 0, got %v", v)
	}

	if world.SetFloatParameter("window", 5) {
		t.Fatal("window is not adjustable at runtime")
	}
	if _, ok := world.FloatParameter("nope"); ok {
		t.Fatal("unknown key should not resolve")
	}

	controls := world.ParameterControls()
	if len(controls) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(controls))
	}
	for _, ctrl := range controls {
		if ctrl.Step <= 0 || !ctrl.HasMin || !ctrl.HasMax {
			t.Fatalf("control %s should have a positive step and bounds: %+v", ctrl.Key, ctrl)
		}
	}
}
