// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package report

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// Reporter renders the timestamped progress output of spec.md §4.8. One
// Reporter is created per run; its clock starts in New, so every
// `[%8.2f]` prefix is relative to the moment the Reporter was created.
type Reporter struct {
	start       time.Time
	countStates bool
	countTable  bool
	countNodes  bool
	printer     *message.Printer
	log         *logrus.Entry
}

// New returns a Reporter whose clock starts now. countStates, countTable,
// and countNodes mirror the CLI's --count-states/--count-table/
// --count-nodes flags (spec.md §6.2).
func New(countStates, countTable, countNodes bool) *Reporter {
	return &Reporter{
		start:       time.Now(),
		countStates: countStates,
		countTable:  countTable,
		countNodes:  countNodes,
		printer:     message.NewPrinter(language.AmericanEnglish),
		log:         logrus.WithField("component", "report"),
	}
}

func (r *Reporter) elapsed() float64 {
	return time.Since(r.start).Seconds()
}

// prefix returns the "[%8.2f] " timestamp spec.md §6.4 requires on every
// reported line.
func (r *Reporter) prefix() string {
	return fmt.Sprintf("[%8.2f] ", r.elapsed())
}

// Info prints a single timestamped line to stdout, the Go equivalent of
// the original's INFO() macro.
func (r *Reporter) Info(format string, args ...interface{}) {
	fmt.Print(r.prefix())
	fmt.Printf(format, args...)
	fmt.Println()
}

// FormatCount renders n with thousands separators (spec.md §6.4),
// matching the original's `%'0.0f` glibc format. Counts that fit an int64
// go through the AmericanEnglish message printer; larger counts have
// their decimal digits grouped by threes with the same ',' separator.
func (r *Reporter) FormatCount(n *big.Int) string {
	if n.IsInt64() {
		return r.printer.Sprintf("%d", n.Int64())
	}
	s := n.String() // state counts are never negative
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Level reports one completed BFS/PAR/CHAINING iteration: the iteration
// number, optionally the exact state count (via SatCount) and node-table
// occupancy, and always the current RSS (spec.md §4.4/§4.6 "report
// level").
func (r *Reporter) Level(iteration int, t *tbdd.Table, visited tbdd.T, variables []uint32) {
	msg := fmt.Sprintf("Level %d done", iteration)
	if r.countStates {
		count := t.SatCount(visited, variables)
		msg += fmt.Sprintf(", %s states explored", r.FormatCount(count))
	}
	if r.countTable {
		filled, total := t.TableUsage()
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(filled) / float64(total)
		}
		msg += fmt.Sprintf(", table: %0.1f%% full (%s nodes)", pct, r.FormatCount(big.NewInt(int64(filled))))
	}
	msg += fmt.Sprintf(", rss=%s", Humanize(float64(RSS())))
	r.Info("%s.", msg)
	r.log.WithField("iteration", iteration).Debug("report: level complete")
}

// Memory prints the current resident set size on its own line, the
// print_memory_usage() the original calls at startup and after a run.
func (r *Reporter) Memory() {
	r.Info("Memory usage: %s", Humanize(float64(RSS())))
}

// NodeCount reports the node count of a single TBDD, for --count-nodes
// (spec.md §6.2).
func (r *Reporter) NodeCount(label string, t *tbdd.Table, v tbdd.T) {
	if !r.countNodes {
		return
	}
	r.Info("%s: %s TBDD nodes", label, r.FormatCount(big.NewInt(int64(t.NodeCount(v)))))
}

// StrategyTime reports the total wall-clock time taken by one strategy
// run (spec.md §4.8 "Post-run: total time per strategy").
func (r *Reporter) StrategyTime(name string, d time.Duration) {
	r.Info("%s Time: %f", name, d.Seconds())
}

// FinalStates reports the final exact state count and, if requested, the
// final TBDD node count (spec.md §4.8 "final state count").
func (r *Reporter) FinalStates(t *tbdd.Table, visited tbdd.T, variables []uint32) {
	count := t.SatCount(visited, variables)
	r.Info("Final states: %s states", r.FormatCount(count))
	if r.countNodes {
		r.Info("Final states: %s TBDD nodes", r.FormatCount(big.NewInt(int64(t.NodeCount(visited)))))
	}
}

// TBDDStats dumps the TBDD package's own internal statistics, standing
// in for the original's sylvan_stats_report.
func (r *Reporter) TBDDStats(t *tbdd.Table) {
	r.Info("TBDD stats: %s", t.Stats())
}

// GCHooks wires t's garbage-collector pre/post callbacks to Info lines
// reporting current RSS, the original's gc_start/gc_end tasks (spec.md
// §9 design notes, SPEC_FULL.md supplemented features).
func (r *Reporter) GCHooks(t *tbdd.Table) {
	t.OnGC(
		func() { r.Info("(GC) Starting garbage collection... (rss: %s)", Humanize(float64(RSS()))) },
		func() { r.Info("(GC) Garbage collection done.       (rss: %s)", Humanize(float64(RSS()))) },
	)
}
