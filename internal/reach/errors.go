// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import "errors"

// ErrDeadlockUnsupported is returned when Options.CheckDeadlocks is set
// for a strategy that cannot check for deadlocks. spec.md §4.6 "Chaining
// does not support deadlock detection" and §9 Open Questions: SAT and
// CHAINING reject the flag outright rather than silently ignoring it, so
// a CLI usage mistake is visible (spec.md §6.2 exit-code policy).
var ErrDeadlockUnsupported = errors.New("reach: deadlock checking is only supported by bfs and par")

// ErrInvalidStrategy is returned by Run for an unrecognized strategy
// name.
var ErrInvalidStrategy = errors.New("reach: unknown strategy")
