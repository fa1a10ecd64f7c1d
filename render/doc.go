/*
Package render renders annotated Kanbun text, either in Chinese reading
order (linear, the source order of glyphs) or in Japanese reading order
(kundoku, 書き下し文).

Linear rendering shows glyphs together with visible readings as ruby,
endings (okurigana) as superscripts and reading-order marks as subscripts.
Hidden readings are not shown. Kundoku rendering first reorders the glyphs
and then shows them with their readings and endings; a hidden reading
replaces its glyph, so glyphs annotated with an empty hidden reading are
silent. Marks are never shown in kundoku order.

Output is produced in one of two markup flavours: HTML (the default) or
Aozora-style plain text. Every annotated unit is rendered as a segment
(an HTML <nobr> element); punctuation is joined into the preceding
segment.

	html, err := render.Kundoku("読［＃二］書［＃一］", render.ShowReading(false))

Rendering is configured by functional options; every Show… option defaults
to true, IdeographicMarks and Hiragana default to false.

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
package render

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
