package ordset

import "github.com/cockroachdb/errors"

// Allocator accounts for the value nodes of a set.
//
// Allocate is called before a node is created. If it returns an error, the
// node is not created and the operation requesting it fails without changing
// the set. Release is called exactly once for every node which has been
// successfully allocated, as soon as the node is destroyed.
type Allocator interface {
	Allocate() error
	Release()
}

// HeapAllocator leaves node memory to the Go runtime. It never fails.
type HeapAllocator struct{}

// Allocate is part of interface Allocator.
func (HeapAllocator) Allocate() error { return nil }

// Release is part of interface Allocator.
func (HeapAllocator) Release() {}

// CountingAllocator keeps book of live nodes.
//
// If Limit is positive, at most Limit nodes may be alive at any time; further
// allocations fail with ErrAllocation. A CountingAllocator may be shared
// between sets.
type CountingAllocator struct {
	Limit  int // maximum number of live nodes, 0 for unlimited
	live   int
	allocs int
	frees  int
}

// Allocate is part of interface Allocator.
func (ca *CountingAllocator) Allocate() error {
	if ca.Limit > 0 && ca.live >= ca.Limit {
		return errors.Wrapf(ErrAllocation, "limit of %d live nodes reached", ca.Limit)
	}
	ca.live++
	ca.allocs++
	return nil
}

// Release is part of interface Allocator.
func (ca *CountingAllocator) Release() {
	assert(ca.live > 0, "ordset: node released twice")
	ca.live--
	ca.frees++
}

// Live returns the number of nodes currently alive.
func (ca *CountingAllocator) Live() int {
	return ca.live
}

// Stats returns the total number of allocations and releases.
func (ca *CountingAllocator) Stats() (allocs, frees int) {
	return ca.allocs, ca.frees
}

// Config configures a set.
type Config struct {
	// Allocator accounts for value nodes. If nil, HeapAllocator is used.
	Allocator Allocator
}

func (cfg Config) normalized() Config {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator{}
	}
	return cfg
}

func (cfg Config) validate() error {
	if ca, ok := cfg.Allocator.(*CountingAllocator); ok {
		if ca == nil {
			return errors.Wrap(ErrInvalidConfig, "allocator is a nil *CountingAllocator")
		}
		if ca.Limit < 0 {
			return errors.Wrapf(ErrInvalidConfig, "negative allocation limit %d", ca.Limit)
		}
	}
	return nil
}
