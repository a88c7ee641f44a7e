// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// node is a single entry of the node table: a variable level and two
// children, which are plain (untagged) node indices. Tags live on T values,
// not on nodes, so the same node can be pointed to by edges with different
// tags. Adapted from rudd's huddnode (hudd.go): we drop the hash/next chain
// fields because we keep the unicity table as a separate Go map, exactly as
// rudd's default (non-buddy) implementation does.
type node struct {
	level  uint32 // variable this node branches on
	low    int    // false-branch node index
	high   int    // true-branch node index
	refcou int32  // external reference count; maxRefcount pins a node
	marked bool   // scratch bit used by the garbage collector
}

const maxRefcount int32 = 0x3FFFFFFF

// key is the unicity-table lookup key: (level, low, high) triplets hash to
// at most one live node, exactly as in rudd's hudd.huddhash/nodehash.
type key struct {
	level uint32
	low   int
	high  int
}

func inode(n int) T {
	return pack(n, NoTag)
}
