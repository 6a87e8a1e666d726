package asynccanon

import (
	"github.com/wippyai/async-canon/canon"
	"github.com/wippyai/async-canon/component"
)

// Validate checks every builtin use site against the type table and
// returns the first failure. Use sites are independent; callers that
// want to collect all diagnostics can call canon.ValidateUseSite per
// site instead.
func Validate(table *component.TypeTable, sites []canon.UseSite) error {
	for _, site := range sites {
		if err := canon.ValidateUseSite(table, site); err != nil {
			return err
		}
	}
	return nil
}
