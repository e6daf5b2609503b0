// resolve.go
package scenario

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xtding233/cube-saver/internal/pricing"
)

// Resolve applies overrides to cfg, validates the result and turns it into an
// optimizer input. Unset values become 0.
func Resolve(cfg RawConfig, o Overrides) (pricing.Input, error) {
	cfg = applyOverrides(cfg, o)
	if err := ValidateRaw(cfg); err != nil {
		return pricing.Input{}, err
	}

	var in pricing.Input
	if cfg.Budget != nil {
		in.Budget = *cfg.Budget
	}
	if cfg.Demand != nil {
		for t, v := range cfg.Demand.slots() {
			if *v != nil {
				in.Demand[t] = **v
			}
		}
	}
	return in, nil
}

func applyOverrides(cfg RawConfig, o Overrides) RawConfig {
	var d DemandConfig
	set := false
	slots := d.slots()
	for t, v := range o.Demand {
		if v != nil {
			*slots[t] = v
			set = true
		}
	}
	over := RawConfig{Budget: o.Budget}
	if set {
		over.Demand = &d
	}
	return mergeRaw(cfg, over)
}

// ParseDemand parses "11,4,5,0,0" into per-tier overrides.
func ParseDemand(s string) ([pricing.NumTiers]*int, error) {
	var out [pricing.NumTiers]*int
	parts := strings.Split(s, ",")
	if len(parts) != pricing.NumTiers {
		return out, errors.Wrapf(ErrInvalidInput, "demand %q: want %d comma-separated counts", s, pricing.NumTiers)
	}
	for t, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, errors.Wrapf(ErrInvalidInput, "demand %q: tier %d is not an integer", s, t)
		}
		if v < 0 {
			return out, errors.Wrapf(ErrInvalidInput, "demand %q: tier %d is negative", s, t)
		}
		out[t] = &v
	}
	return out, nil
}

// Sample returns the built-in example: 60 cubes against 11/4/5/0/0 modules.
func Sample() pricing.Input {
	return pricing.Input{Budget: 60, Demand: pricing.Counts{11, 4, 5, 0, 0}}
}
