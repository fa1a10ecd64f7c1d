/*
Package reorder computes the Japanese reading order (kundoku) of annotated
Kanbun text.

Reordering is a single pass over a token sequence. Tokens are collected in
groups, i.e. runs of tokens which move as a unit. Groups grow by reversal
marks (the marked token moves behind its successor) and by vertical links
(the marked token stays tied to its successor). Once a group is complete,
it is emitted, unless it carries a higher rank of a mark family. Then it
is held back in a slot of that family. A group carrying the lowest rank of a
family is emitted and flushes the slots of its family in ascending order.

Glyphs read twice are emitted twice: once in place with their primary
reading, and once as a derived token carrying the re-reading, which takes
part in reordering.

Reorder is total. Input with malformed mark nesting will lose tokens held
back in slots; clients should call Validate (or use Checked) to detect
such input.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package reorder

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
