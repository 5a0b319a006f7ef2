package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Profile is a per-device-model calibration: the three curve-fit
// coefficients and the beacon reference power at 1 meter. Coefficients are
// fitted offline against measured RSSI-vs-distance data for the model.
type Profile struct {
	Model        string  `json:"model"`
	Coefficient1 float64 `json:"coefficient1"`
	Coefficient2 float64 `json:"coefficient2"`
	Coefficient3 float64 `json:"coefficient3"`
	TxPower      int     `json:"tx_power"`
}

// DefaultModel names the reference receiver profile used when no other
// model matches.
const DefaultModel = "default"

func builtinProfiles() []Profile {
	return []Profile{
		{Model: DefaultModel, Coefficient1: DefaultCoefficient1, Coefficient2: DefaultCoefficient2, Coefficient3: DefaultCoefficient3, TxPower: DefaultTxPower},
		{Model: "nexus-4", Coefficient1: 0.60605, Coefficient2: 6.6889, Coefficient3: 0.54084, TxPower: DefaultTxPower},
		{Model: "nexus-5", Coefficient1: 0.42093, Coefficient2: 6.9476, Coefficient3: 0.54992, TxPower: DefaultTxPower},
		{Model: "moto-xt1092", Coefficient1: 0.118734, Coefficient2: 7.503568, Coefficient3: 0.110052, TxPower: DefaultTxPower},
	}
}

// Registry maps device model names to calibration profiles. Lookups are
// case-insensitive; unknown models fall back to the default profile.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	r.Merge(builtinProfiles())
	return r
}

// Merge adds or replaces profiles. Profiles with an empty model name are
// skipped.
func (r *Registry) Merge(profiles []Profile) {
	for _, p := range profiles {
		if p.Model == "" {
			continue
		}
		r.profiles[strings.ToLower(p.Model)] = p
	}
}

// Lookup returns the profile for the given model, or the default profile
// when the model is unknown. The boolean reports whether an exact match
// was found.
func (r *Registry) Lookup(model string) (Profile, bool) {
	if p, ok := r.profiles[strings.ToLower(model)]; ok {
		return p, true
	}
	return r.profiles[DefaultModel], false
}

// Models returns all known model names, sorted, default first.
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		if name == DefaultModel {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{DefaultModel}, names...)
}

// LoadFile merges profiles from a JSON file into the registry.
func (r *Registry) LoadFile(path string) error {
	profiles, err := LoadProfiles(path)
	if err != nil {
		return err
	}
	r.Merge(profiles)
	return nil
}

// LoadProfiles reads a JSON array of profiles from disk.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	return profiles, nil
}
