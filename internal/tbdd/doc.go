// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package tbdd implements Tagged Binary Decision Diagrams, the node
representation the reachability engine in internal/reach is built on.

A TBDD is a BDD edge that additionally carries a tag: the first variable
the represented function is known to be insensitive to. Carrying the tag
on the edge, rather than materializing a chain of "variable is false"
nodes down to the function's real top variable, is what lets a partition
that only reads and writes a handful of vector components stay compact
even when the global state vector has thousands of bits.

Like dalzilio/rudd, which this package's node table, garbage collector
and operation cache are adapted from, we use a Go runtime hashmap as the
unicity table and represent nodes as integer indices into a slice, with
the convention that 0 and 1 are the constants False and True. Unlike
rudd, a exported value (type T) is not a bare node index: it additionally
packs a tag, since the tag lives on the edge and not on the node itself.

This package has no build tags, and its only external dependency is
github.com/sirupsen/logrus for debug and error logging; the decision
diagram itself is not built on any third-party library, because there is
no published Go package implementing (Tagged) Binary
Decision Diagrams for internal/reach to build on, and decision-diagram
node tables are exactly the kind of low-level, allocation-sensitive data
structure the standard library and the retrieved example pack agree
should be hand-rolled rather than wrapped.
*/
package tbdd
