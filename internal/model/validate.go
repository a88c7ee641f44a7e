// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package model

import (
	"fmt"

	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// Validate checks the structural precondition saturation and chaining
// both rely on (spec.md §4.2 "successive state variables differ by
// exactly 2", §9 Open Questions): every partition's leading variable must
// be even, i.e. a current-state variable, never a next-state one. Load
// does not make this check itself, so callers run Validate once after
// loading and before dispatching to any strategy.
func Validate(m *Model) error {
	for i, rel := range m.Next {
		v := rel.LeadingVar()
		if v == tbdd.NoVar {
			continue // an empty partition touches nothing; trivially fine
		}
		if v%2 != 0 {
			return fmt.Errorf("model: partition %d has odd leading variable %d, want an even current-state variable", i, v)
		}
	}
	return nil
}
