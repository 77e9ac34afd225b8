/*
Package ordset implements an ordered set with cursor-stable iterators.

Ordered Sets

A Set stores distinct values of an ordered type in an (unbalanced) binary
search tree. Its distinguishing property is the behaviour of its iterators:
an Iterator designates a logical element, not a position in the tree. Erasing
an element never invalidates or redirects an iterator on a different element,
even though the shape of the tree, and the place where the successor element
lives within it, change as a side effect of the erase.

Every node keeps a list of the iterators currently positioned on it. When a
node is destroyed, the iterators in its list become singular: they are no
longer dereferenceable or movable. Erase therefore never copies the value of
a successor into the erased node. Instead the successor node itself is
re-linked into the erased node's place, keeping its identity and the
iterators registered with it.

	s := ordset.New[int]()
	for _, v := range []int{5, 3, 7} {
	    s.Insert(v)
	}
	seven := s.Find(7)
	s.EraseValue(5)
	fmt.Println(seven.Value()) // still 7

Performance characteristics:

	Operation          |  Complexity
	-------------------+------------
	Insert/Erase/Find  |  O(h)
	Lower/UpperBound   |  O(h)
	Clone/Assign/Clear |  O(n)
	Swap/Len           |  O(1)

h is the height of the tree, which is not bounded by log n: the tree is not
re-balanced.

Sets are not safe for concurrent use. A set and all of its iterators form a
single mutation domain which clients have to synchronize externally.

Misuse of iterators (dereferencing End(), moving a singular iterator, moving
past either end of the sequence) are programming errors and will panic.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordset

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// assert panics with an assertion failure if condition does not hold.
// Violations are caller bugs, not recoverable conditions.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(errors.AssertionFailedf(format, args...))
	}
}
