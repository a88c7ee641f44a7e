// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import "fmt"

// fmtStats renders table occupancy and cache/unicity hit rates in the
// terse, single-line density of rudd's stdio.go Stats()/gcstats(): one
// line, labelled fields, no padding beyond what fmt gives for free.
func fmtStats(total, used int, pct float64, produced int, s GCStats) string {
	uniqueRate := 0.0
	if s.UniqueAccess > 0 {
		uniqueRate = 100 * float64(s.UniqueHit) / float64(s.UniqueAccess)
	}
	opRate := 0.0
	if s.OpHit+s.OpMiss > 0 {
		opRate = 100 * float64(s.OpHit) / float64(s.OpHit+s.OpMiss)
	}
	return fmt.Sprintf(
		"nodes %d/%d (%.1f%% full) produced=%d gc=%d unique-hit=%.1f%% op-hit=%.1f%%",
		used, total, pct, produced, s.Collections, uniqueRate, opRate,
	)
}
