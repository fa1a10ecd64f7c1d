/*
Package retain embeds the annotated original of a Kanbun text into rendered
output, so that rendered text may be rendered again with different options.

The original is kept in an HTML comment following the rendered markup:

	<nobr>書ヲ</nobr><nobr>読ム。</nobr><!--読ム［＃二］書ヲ［＃一］。-->

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
package retain

import (
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const (
	commentStart = "<!--"
	commentEnd   = "-->"
)

var retained = regexp.MustCompile(`<!--([^>]+)-->`)

// Embed appends the original text to rendered markup.
func Embed(markup, original string) string {
	return markup + commentStart + original + commentEnd
}

// Original extracts the original text retained in s. If s does not contain
// a retained original, s itself is taken to be the original.
func Original(s string) string {
	if m := retained.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// IsRetained is true if s carries a retained original.
func IsRetained(s string) bool {
	return retained.MatchString(s)
}

// Renderer renders annotated text, e.g. with render.Kundoku.
type Renderer func(text string) (string, error)

// Restore renders the original retained in s (or s itself, if it does not
// retain an original) and retains the original again. Restoring the result
// with the same renderer yields the same result.
//
// If rendering fails, s is returned unchanged together with the error.
func Restore(s string, render Renderer) (string, error) {
	orig := Original(s)
	out, err := render(orig)
	if err != nil {
		T().Errorf("kanbun: cannot restore %q: %v", orig, err)
		return s, err
	}
	if strings.ContainsRune(orig, '>') {
		T().Infof("kanbun: original %q contains '>' and will not be found again", orig)
	}
	return Embed(out, orig), nil
}
