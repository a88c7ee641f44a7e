// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package model loads a binary transition-system description — domain
metadata, an initial state set, and a partitioned transition relation —
into the in-memory types internal/reach drives its strategies against.

The binary layout mirrors the one a Sylvan-based model checker consumes
(vector size, per-component bit widths, a projected-or-full initial set,
then one record per relation partition describing the vector components
it reads and writes, followed by the TBDD blobs themselves). Loading is
intentionally strict: any short read or malformed field aborts with a
wrapped error rather than guessing, since a model file that doesn't
parse exactly as this layout describes would otherwise make the rest of
the pipeline fail far from the root cause.
*/
package model
