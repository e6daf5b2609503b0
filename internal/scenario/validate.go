package scenario

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/xtding233/cube-saver/internal/pricing"
)

// ErrInvalidInput marks a budget or demand the optimizer must not see.
var ErrInvalidInput = errors.New("invalid input")

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Budget != nil && *cfg.Budget < 0 {
		errs = append(errs, "budget must be >= 0")
	}
	if cfg.Demand != nil {
		for t, v := range cfg.Demand.slots() {
			if *v != nil && **v < 0 {
				errs = append(errs, fmt.Sprintf("demand.tier_%d must be >= 0", t))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Wrap(ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateInput checks an already resolved input.
func ValidateInput(in pricing.Input) error {
	var errs []string
	if in.Budget < 0 {
		errs = append(errs, fmt.Sprintf("budget %d must be >= 0", in.Budget))
	}
	for t, v := range in.Demand {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s demand %d must be >= 0", pricing.Tier(t).Label(), v))
		}
	}
	if len(errs) > 0 {
		return errors.Wrap(ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}
