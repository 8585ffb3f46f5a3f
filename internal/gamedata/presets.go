package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/sizeguess/internal/fontsize"
)

// PresetDef defines the range the correct answer is drawn from for a unit.
type PresetDef struct {
	Unit fontsize.Unit `json:"unit"` // "px" or "rem"
	Name string        `json:"name"` // Display name (e.g., "Pixels")
	Min  float64       `json:"min"`  // Smallest answer, in Unit
	Max  float64       `json:"max"`  // Largest answer, in Unit
}

// PixelRange returns Min and Max converted to pixels.
func (p *PresetDef) PixelRange() (float64, float64) {
	if p.Unit == fontsize.UnitRem {
		return p.Min * fontsize.PixelsPerRem, p.Max * fontsize.PixelsPerRem
	}
	return p.Min, p.Max
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads round presets from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// PresetRegistry holds loaded presets keyed by unit.
type PresetRegistry struct {
	presets map[fontsize.Unit]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded presets.
// Later presets for the same unit replace earlier ones.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[fontsize.Unit]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].Unit] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	for _, p := range presets {
		if p.Min > p.Max {
			return nil, fmt.Errorf("preset %s: min %v exceeds max %v", p.Unit, p.Min, p.Max)
		}
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ForUnit returns the preset for unit.
func (r *PresetRegistry) ForUnit(unit fontsize.Unit) (*PresetDef, error) {
	preset := r.presets[unit]
	if preset == nil {
		return nil, fmt.Errorf("%w: no preset for %q", fontsize.ErrUnsupportedUnit, string(unit))
	}
	return preset, nil
}

// All returns all presets.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
