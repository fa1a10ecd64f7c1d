package kanbun

import (
	"fmt"
	"strings"
)

// Visibility tells how a reading is to be displayed.
type Visibility uint8

// A reading is either absent, visible (《…》) or hidden (〈…〉).
// Visible readings are displayed beside the glyph in both reading orders.
// Hidden readings are not displayed in Chinese order, but replace the glyph
// in kundoku order.
const (
	NoReading Visibility = iota
	Visible
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	}
	return "none"
}

// Reading is a pronunciation annotation for a glyph. A reading may be
// present with empty text, denoting a glyph which is silent in one of the
// reading orders (置き字).
type Reading struct {
	Text string
	Vis  Visibility
}

// IsPresent is true if the reading has been annotated, even if it has
// empty text.
func (r Reading) IsPresent() bool {
	return r.Vis != NoReading
}

// String returns the reading in annotation syntax.
func (r Reading) String() string {
	switch r.Vis {
	case Visible:
		return "《" + r.Text + "》"
	case Hidden:
		return "〈" + r.Text + "〉"
	}
	return ""
}

// Span is a range [From…To) of byte positions within a source text.
type Span struct {
	From, To int
}

// Len returns the length of a span in bytes.
func (s Span) Len() int {
	return s.To - s.From
}

// Token is one annotated unit of Kanbun text: a glyph together with its
// annotations. Tokens are values and are never changed after tokenization;
// operations which need a modified token derive a copy.
type Token struct {
	Glyph     string  // ideograph (with optional variation selector) or punctuation
	Reading   Reading // primary reading
	Ending    string  // primary ending (okurigana), unwrapped from ［＃（…）］
	ReReading Reading // second reading of a glyph read twice
	ReEnding  string  // ending for the second reading
	Link      bool    // vertical link to the next token
	Mark      Mark    // reading-order mark
	Span      Span    // position in the source text
	Raw       string  // source text of this unit
}

// Punctuation glyphs known to the annotation grammar.
const (
	FullStop = "。"
	Comma    = "、"
)

// IsPunctuation is true for tokens holding a punctuation glyph.
func (t Token) IsPunctuation() bool {
	return t.Glyph == FullStop || t.Glyph == Comma
}

// IsReread is true for glyphs to be read twice.
func (t Token) IsReread() bool {
	return t.ReReading.IsPresent()
}

// Reread derives the token for the second reading of a glyph read twice:
// reading and ending are replaced by the re-reading and re-ending.
// Glyph, link and mark are left untouched.
func (t Token) Reread() Token {
	d := t
	d.Reading = t.ReReading
	d.Ending = t.ReEnding
	d.ReReading = Reading{}
	d.ReEnding = ""
	return d
}

// Marks returns the symbols of the link and the reading-order mark,
// e.g. "‐" or "一レ". The result is empty if the token carries neither.
func (t Token) Marks() string {
	var b strings.Builder
	if t.Link {
		b.WriteRune(LinkSymbol)
	}
	b.WriteString(t.Mark.Symbols())
	return b.String()
}

func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Glyph)
	b.WriteString(t.Reading.String())
	b.WriteString(t.Ending)
	b.WriteString(t.ReReading.String())
	b.WriteString(t.ReEnding)
	if m := t.Marks(); m != "" {
		b.WriteString(fmt.Sprintf("[%s]", m))
	}
	return b.String()
}

// Glyphs concatenates the glyphs of a token sequence.
func Glyphs(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Glyph)
	}
	return b.String()
}
