// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// _MINFREENODES is the minimal percentage of nodes that must be free after a
// garbage collection, below which we resize the node table instead of
// waiting for the next allocation to fail.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC bounds how many nodes a single resize can add.
const _DEFAULTMAXNODEINC int = 1 << 20

// _MAXVAR is the largest legal variable index. We reserve the top bits of
// the packed T word for the tag and keep this in line with rudd's
// _MAXVAR so that a node's level and a T's tag share the same range.
const _MAXVAR uint32 = 0xFFFFE

// config collects the tunable parameters of a Table, set through New's
// functional options in the style of rudd.configs.
type config struct {
	nodesize        int
	cachesize       int
	cacheratio      int
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
}

func defaultConfig() config {
	return config{
		nodesize:        1 << 16,
		cachesize:       10000,
		minfreenodes:    _MINFREENODES,
		maxnodeincrease: _DEFAULTMAXNODEINC,
	}
}

// Option configures a Table created with New.
type Option func(*config)

// WithNodesize sets the initial size of the node table.
func WithNodesize(size int) Option {
	return func(c *config) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// WithMaxnodesize caps the number of nodes the table can grow to. Zero (the
// default) means no limit: allocation failure then surfaces as a fatal
// condition from the underlying Go runtime instead, per spec.md §7 kind 5.
func WithMaxnodesize(size int) Option {
	return func(c *config) { c.maxnodesize = size }
}

// WithMaxnodeincrease bounds the number of nodes added by a single resize.
func WithMaxnodeincrease(size int) Option {
	return func(c *config) { c.maxnodeincrease = size }
}

// WithMinfreenodes sets the percentage of free nodes that must remain after
// a garbage collection before we resize rather than wait.
func WithMinfreenodes(ratio int) Option {
	return func(c *config) { c.minfreenodes = ratio }
}

// WithCachesize sets the initial number of entries in the operation cache.
func WithCachesize(size int) Option {
	return func(c *config) { c.cachesize = size }
}

// WithCacheratio makes the operation cache grow proportionally to the node
// table on resize, with ratio available cache entries per 100 node slots.
func WithCacheratio(ratio int) Option {
	return func(c *config) { c.cacheratio = ratio }
}
