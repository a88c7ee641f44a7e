// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package report renders the per-level and final progress output spec.md
§4.8 and §6.4 describe: a wall-clock `[%8.2f]` prefix on every line,
optional per-level state counts and node-table occupancy, resident set
size, and a final summary of strategy timing, state count, and TBDD
table statistics.

State counts are formatted with golang.org/x/text/message so that large
reachable-state counts get locale-aware thousands separators, matching
the original's `setlocale(LC_NUMERIC, ...)` plus glibc's `%'` printf
flag.
*/
package report
