/*
Package treefile builds search trees from text files.

A file's content is segmented into word tokens (following Unicode Annex #29
word boundaries) and every distinct word is inserted into a binary search
tree, yielding the file's sorted vocabulary. Loading may be done
asynchronously; clients can subscribe to a broadcast of words as they are
discovered.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
