/*
Package kanbun is about annotated Classical Chinese text (漢文) and its
Japanese reading (訓読).

Description

Kanbun is Classical Chinese text annotated for Japanese readers. Small marks
beside the glyphs tell the reader how to permute the Chinese word order into
Japanese syntax (返り点), which glyphs carry which pronunciation (読み仮名),
and which inflectional endings have to be added (送り仮名). Reading the text
aloud in Japanese order is called kundoku; writing the result down yields
the kakikudashi rendering (書き下し文).

We use a compact inline annotation grammar, modelled after the Aozora Bunko
conventions:

   引キテ［＃レ］酒ヲ且《》ニ〈ス〉［＃レ］飲マント［＃レ］之ヲ。

Every annotated unit consists of a glyph, followed by optional fields:

   glyph           an ideograph (plus variation selector) or 。、
   《…》 / 〈…〉     visible / hidden reading
   kana            ending (okurigana); ［＃（…）］ if it contains ideographs
   《…》 / 〈…〉     reading for a glyph read twice (再読文字)
   kana            ending for the second reading
   ‐               vertical link to the next glyph (竪点)
   ［＃…］           reading-order mark (一二三四 上中下 甲乙丙丁 天地人, レ)

Contents

Base package kanbun holds the token model and the tables of reading-order
marks. Sub-package tokenize splits annotated text into tokens, sub-package
reorder computes the kundoku order of a token sequence, and sub-package render
produces markup for both reading orders. Sub-package retain implements the
convention of keeping the annotated original next to rendered markup.

All functions are pure and may be called concurrently. The only process-wide
data are read-only tables.

Reading-Order Marks

Marks come in four independent families. Within a family, the glyph carrying
the lowest rank is read first, followed by the glyphs of the higher ranks in
ascending order:

   A   一 二 三 四
   B   上 中 下
   C   甲 乙 丙 丁
   D   天 地 人

The reversal mark レ swaps a glyph with its successor. It may be prefixed by
the lowest rank of a family (一レ, 上レ, 甲レ, 天レ), deferring the flush of that
family until the reversal has been resolved.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package kanbun

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
