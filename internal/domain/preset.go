package domain

// SpacePreset is a space type with its recommended illuminance
type SpacePreset struct {
	Name      string `json:"name"`
	TargetLux int    `json:"target_lux"`
}

// DefaultPresets lists the space types offered when no data file overrides them
func DefaultPresets() []SpacePreset {
	return []SpacePreset{
		{Name: "bar", TargetLux: 150},
		{Name: "cafe", TargetLux: 250},
		{Name: "restaurant", TargetLux: 300},
		{Name: "kitchen", TargetLux: 600},
		{Name: "bedroom", TargetLux: 150},
		{Name: "living room", TargetLux: 250},
		{Name: "dining room", TargetLux: 400},
	}
}

// FindPreset looks a preset up by name
func FindPreset(presets []SpacePreset, name string) (SpacePreset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return SpacePreset{}, false
}
