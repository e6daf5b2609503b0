// types.go
package scenario

import "github.com/xtding233/cube-saver/internal/pricing"

// Raw config loaded from YAML. Pointers keep "unset" apart from zero so files
// can be layered.
type RawConfig struct {
	Version string        `yaml:"version"`
	Budget  *int          `yaml:"budget"`
	Demand  *DemandConfig `yaml:"demand,omitempty"`
	Notes   string        `yaml:"notes,omitempty"`
}

// DemandConfig lists how many modules of each tier are still required.
type DemandConfig struct {
	Tier0   *int `yaml:"tier_0"`
	TierI   *int `yaml:"tier_1"`
	TierII  *int `yaml:"tier_2"`
	TierIII *int `yaml:"tier_3"`
	TierIV  *int `yaml:"tier_4"`
}

// slots exposes the fields tier-indexed.
func (d *DemandConfig) slots() [pricing.NumTiers]**int {
	return [pricing.NumTiers]**int{&d.Tier0, &d.TierI, &d.TierII, &d.TierIII, &d.TierIV}
}

// Overrides carries values from command-line flags; set fields win over files.
type Overrides struct {
	Budget *int
	Demand [pricing.NumTiers]*int
}
