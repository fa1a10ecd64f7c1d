package render

import (
	"strings"

	"github.com/npillmayer/kanbun"
	"github.com/npillmayer/kanbun/reorder"
	"github.com/npillmayer/kanbun/tokenize"
)

// Kundoku renders annotated text in Japanese reading order (書き下し文).
// Glyphs are reordered according to their reading-order marks; glyphs read
// twice appear twice. Marks are not rendered.
//
// Malformed text, including reading-order marks which do not nest properly,
// results in a *kanbun.StructuralParseError and no output.
func Kundoku(text string, opts ...Option) (string, error) {
	tokens, err := tokenize.Tokenize(text)
	if err != nil {
		return "", err
	}
	ordered, err := reorder.Checked(tokens)
	if err != nil {
		return "", err
	}
	return KundokuTokens(ordered, opts...), nil
}

// KundokuTokens renders a token sequence which is already in Japanese
// reading order, as returned by reorder.Reorder.
func KundokuTokens(ordered []kanbun.Token, opts ...Option) string {
	c := newConfig(opts)
	w := borrowWriter(c.markup)
	defer w.release()
	for _, tok := range ordered {
		if tok.IsPunctuation() && !c.hasMode(optionShowPunctuation) {
			continue
		}
		w.unit(c.kundokuUnit(tok), tok.IsPunctuation())
	}
	s := w.String()
	if c.hasMode(optionHiragana) {
		s = ToHiragana(s)
	}
	return s
}

func (c *config) kundokuUnit(tok kanbun.Token) string {
	var b strings.Builder
	switch {
	case tok.Reading.Vis == kanbun.Hidden: // reading replaces glyph, possibly silencing it
		b.WriteString(tok.Reading.Text)
	case c.hasMode(optionShowReading) && tok.Reading.Vis == kanbun.Visible && tok.Reading.Text != "":
		b.WriteString(c.markup.Ruby(tok.Glyph, tok.Reading.Text))
	default:
		b.WriteString(tok.Glyph)
	}
	b.WriteString(tok.Ending)
	return b.String()
}
