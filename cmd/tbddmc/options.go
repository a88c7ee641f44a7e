// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

// options collects every CLI flag (spec.md §6.2), populated by cobra from
// the root command's flag set in the style of rudd/config.go's functional
// options: one struct, filled once, read everywhere downstream.
type options struct {
	model string

	workers        int
	strategy       string
	deadlocks      bool
	countStates    bool
	countTable     bool
	countNodes     bool
	mergeRelations bool
	printMatrix    bool
	profile        string
}
