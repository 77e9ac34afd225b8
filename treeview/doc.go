/*
Package treeview renders the internal shape of ordered sets for debugging.

Sets are unbalanced binary search trees, and the shape of the tree depends on
the order of insertions and erasures. Package treeview makes that shape
visible, either on a (fixed width) console or as an HTML fragment.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treeview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}
