/*
Package display renders binary search trees for terminals.

Trees are printed sideways, one node per line, with the right subtree above
its parent and the left subtree below. Node values may be colorized for
interactive sessions; color handling is delegated to github.com/fatih/color
and therefore honors NO_COLOR and non-TTY output.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
