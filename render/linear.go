package render

import (
	"strings"

	"github.com/npillmayer/kanbun"
	"github.com/npillmayer/kanbun/tokenize"
)

// Chinese renders annotated text in Chinese reading order, i.e., with glyphs
// in source order, decorated with readings, endings and reading-order marks.
//
// Malformed text results in a *kanbun.StructuralParseError and no output.
func Chinese(text string, opts ...Option) (string, error) {
	tokens, err := tokenize.Tokenize(text)
	if err != nil {
		return "", err
	}
	return LinearTokens(tokens, opts...), nil
}

// LinearTokens renders a token sequence in Chinese reading order.
func LinearTokens(tokens []kanbun.Token, opts ...Option) string {
	c := newConfig(opts)
	w := borrowWriter(c.markup)
	defer w.release()
	for _, tok := range tokens {
		if tok.IsPunctuation() && !c.hasMode(optionShowPunctuation) {
			continue
		}
		w.unit(c.linearUnit(tok), tok.IsPunctuation())
	}
	return w.String()
}

func (c *config) linearUnit(tok kanbun.Token) string {
	var b strings.Builder
	if c.hasMode(optionShowReading) && tok.Reading.Vis == kanbun.Visible && tok.Reading.Text != "" {
		b.WriteString(c.markup.Ruby(tok.Glyph, tok.Reading.Text))
	} else {
		b.WriteString(tok.Glyph)
	}
	if c.hasMode(optionShowEnding) && tok.Ending != "" {
		b.WriteString(c.markup.Ending(tok.Ending))
	}
	if c.hasMode(optionShowMarks) {
		b.WriteString(c.marks(tok))
	}
	return b.String()
}

// marks renders the vertical link and the reading-order mark of a token.
// The link symbol is never subscripted.
func (c *config) marks(tok kanbun.Token) string {
	if c.hasMode(optionIdeographicMarks) {
		return kanbun.Ideographic(tok.Marks())
	}
	var s string
	if tok.Link {
		s = string(kanbun.LinkSymbol)
	}
	if !tok.Mark.IsZero() {
		s += c.markup.Marks(tok.Mark.Symbols())
	}
	return s
}
