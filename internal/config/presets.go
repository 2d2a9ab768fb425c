package config

import (
	"sort"

	"github.com/san-kum/techsphere/internal/orbit"
	"github.com/san-kum/techsphere/internal/scene"
)

var Presets = map[string]*Config{
	"portfolio": {
		Preset: "portfolio", Icons: 19, Radius: 5.5, ElasticRange: 0.5, FPS: 60, Duration: 4,
		InitialPolar: orbit.RestAngle,
		Script: []scene.DragEvent{
			{At: 0.5, Action: scene.Press, DPolar: 0.2, DAzimuth: 0.3},
			{At: 0.7, Action: scene.Move, DPolar: 0.6, DAzimuth: 0.5},
			{At: 1.0, Action: scene.Release},
		},
	},
	"dense": {
		Preset: "dense", Icons: 60, Radius: 7.0, ElasticRange: 0.5, FPS: 60, Duration: 4,
		InitialPolar: orbit.RestAngle,
		Script: []scene.DragEvent{
			{At: 0.2, Action: scene.Press, DPolar: -0.8, DAzimuth: -1.2},
			{At: 0.8, Action: scene.Release},
		},
	},
	"idle": {
		Preset: "idle", Icons: 19, Radius: 5.5, ElasticRange: 0.5, FPS: 60, Duration: 3,
		InitialPolar: orbit.RestAngle + 0.45,
	},
	"rigid": {
		Preset: "rigid", Icons: 19, Radius: 5.5, ElasticRange: 0, FPS: 30, Duration: 2,
		InitialPolar: orbit.RestAngle,
		Script: []scene.DragEvent{
			{At: 0.2, Action: scene.Press, DPolar: 1.0, DAzimuth: 0.8},
			{At: 1.0, Action: scene.Release},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Script = append([]scene.DragEvent(nil), p.Script...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
