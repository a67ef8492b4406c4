package antfarm

import (
	"strconv"

	"antfarm/internal/core"
)

// Parameters reports the current configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("ants", "Ants", len(w.ants)),
				floatParam("dirt_fraction", "Dirt fraction", params.DirtFraction),
			},
		},
		{
			Name: "Behavior",
			Params: []core.Parameter{
				floatParam("dig_chance", "Dig chance", params.DigChance),
				floatParam("drop_chance", "Drop chance", params.DropChance),
				floatParam("turn_chance", "Turn chance", params.TurnChance),
				floatParam("concave_dig_chance", "Concave dig chance", params.ConcaveDigChance),
				floatParam("convex_drop_chance", "Convex drop chance", params.ConvexDropChance),
				floatParam("calm_chance", "Calm chance", params.CalmChance),
				floatParam("trapped_drop_chance", "Trapped drop chance", params.TrappedDropChance),
				intParam("wander_timer", "Wander timer", params.WanderTimer),
				intParam("carry_timer", "Carry timer", params.CarryTimer),
				intParam("panic_timer", "Panic timer", params.PanicTimer),
			},
		},
		{
			Name: "Sand",
			Params: []core.Parameter{
				intParam("compact_depth", "Compaction depth", params.CompactDepth),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "dig_chance", Label: "Dig chance", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "drop_chance", Label: "Drop chance", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "turn_chance", Label: "Turn chance", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "concave_dig_chance", Label: "Concave dig", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "convex_drop_chance", Label: "Convex drop", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "calm_chance", Label: "Calm chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "wander_timer", Label: "Wander timer", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: "carry_timer", Label: "Carry timer", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: "compact_depth", Label: "Compaction depth", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Timers apply from each ant's
// next decision. Values below 1 are clamped.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "wander_timer", "carry_timer", "panic_timer", "compact_depth":
	default:
		return false
	}
	dst := w.cfg.Params.intField(key)
	if value < 1 {
		value = 1
	}
	*dst = value
	return true
}

// SetFloatParameter updates a probability tunable, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key == "dirt_fraction" {
		// Only used when generating; changing it mid-run would move the
		// surface row under the ants.
		return false
	}
	dst := w.cfg.Params.floatField(key)
	if dst == nil {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	*dst = value
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
