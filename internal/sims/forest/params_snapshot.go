package forest

import (
	"strconv"

	"forest-ca/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Grid size", w.cfg.Size),
				int64Param("seed", "Seed", w.cfg.Seed),
				floatParam("tree_density", "Initial tree density", w.cfg.InitialTreeDensity),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("p_tree", "Tree growth chance", w.cfg.PTree),
				floatParam("p_fire", "Lightning chance", w.cfg.PFire),
			},
		},
		{
			Name: "Tracking",
			Params: []core.Parameter{
				intParam("window", "History window", w.cfg.Window),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters interactive frontends may adjust
// while the simulation runs. The history window is fixed at construction.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "p_tree",
			Label: "Tree growth chance",
			Type:  core.ParamTypeFloat,
			Step:  0.0005,
			Min:   0, Max: 1,
			HasMin: true, HasMax: true,
		},
		{
			Key:   "p_fire",
			Label: "Lightning chance",
			Type:  core.ParamTypeFloat,
			Step:  0.00001,
			Min:   0, Max: 1,
			HasMin: true, HasMax: true,
		},
	}
}

// FloatParameter returns the current value of a float parameter by key.
func (w *World) FloatParameter(key string) (float64, bool) {
	switch key {
	case "p_tree":
		return w.cfg.PTree, true
	case "p_fire":
		return w.cfg.PFire, true
	default:
		return 0, false
	}
}

// SetFloatParameter updates a float parameter by key, clamping to its bounds.
// It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	clamped := value
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}
	switch key {
	case "p_tree":
		w.cfg.PTree = clamped
	case "p_fire":
		w.cfg.PFire = clamped
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
