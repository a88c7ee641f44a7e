// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package task implements the fork/join work-stealing primitives
internal/reach's recursion trees are built on: big_union, the BFS/PAR
level kernel, and go_sat's cofactor split all spawn exactly one child and
compute the other half inline, then join before returning (spec.md §4.3,
§4.5, §5, §9).

The original program gets this from Lace, a C work-stealing task
scheduler. Go already has a scheduler with the same job, so a Pool here
is a thin wrapper combining golang.org/x/sync/semaphore (bounding how
many branches run at once, spec.md §5's "fixed pool of worker threads")
with golang.org/x/sync/errgroup (the single spawned branch per Fork call
and its join) rather than a from-scratch deque-stealing implementation:
Fork either launches fn on a new goroutine through a one-task errgroup.Group
(if the pool has spare capacity) or runs it inline and returns its value
already computed, and the returned join function's call to Group.Wait is
the only synchronization point, exactly mirroring spec.md §5's "spawn one
child, inline the other, strict join before the caller returns".
*/
package task
