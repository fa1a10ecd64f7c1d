package tokenize

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/npillmayer/kanbun"
)

// Tokenize splits annotated text into a sequence of tokens, one per
// annotated unit. The complete input has to be consumed; otherwise a
// *kanbun.StructuralParseError is returned, positioned at the first
// character which could not be matched.
//
// An empty text results in an empty token sequence.
func Tokenize(text string) ([]kanbun.Token, error) {
	if text == "" {
		return []kanbun.Token{}, nil
	}
	src, err := unitParser.ParseString("", text)
	if err != nil {
		offset := -1
		var perr participle.Error
		if errors.As(err, &perr) {
			offset = perr.Position().Offset
		}
		T().Errorf("kanbun: cannot parse annotated text: %v", err)
		return nil, kanbun.NewStructuralParseError(text, offset, "annotation grammar mismatch")
	}
	tokens := make([]kanbun.Token, 0, len(src.Units))
	pos := 0
	for _, u := range src.Units {
		raw := u.raw()
		// units have to tile the input: no skipped characters
		if u.Pos.Offset != pos || !strings.HasPrefix(text[pos:], raw) {
			return nil, kanbun.NewStructuralParseError(text, pos, "unit does not start at current position")
		}
		tok, err := u.token(kanbun.Span{From: pos, To: pos + len(raw)})
		if err != nil {
			return nil, kanbun.NewStructuralParseError(text, pos, err.Error())
		}
		T().Debugf("token #%d = %v", len(tokens), tok)
		tokens = append(tokens, tok)
		pos += len(raw)
	}
	if pos != len(text) {
		return nil, kanbun.NewStructuralParseError(text, pos, "residual input")
	}
	return tokens, nil
}

// MustTokenize is like Tokenize, but panics on malformed input. It is
// intended for static text, e.g. in tests.
func MustTokenize(text string) []kanbun.Token {
	tokens, err := Tokenize(text)
	if err != nil {
		panic(err)
	}
	return tokens
}

// token converts a parsed unit into a kanbun.Token.
func (u *unit) token(span kanbun.Span) (kanbun.Token, error) {
	tok := kanbun.Token{
		Glyph:     u.Glyph,
		Reading:   reading(u.Reading),
		Ending:    ending(u.Ending),
		ReReading: reading(u.ReReading),
		ReEnding:  ending(u.ReEnding),
		Link:      u.Link != "",
		Span:      span,
		Raw:       u.raw(),
	}
	if u.Mark != "" {
		symbols := strings.TrimSuffix(strings.TrimPrefix(u.Mark, "［＃"), "］")
		m, err := kanbun.ParseMark(symbols)
		if err != nil {
			return kanbun.Token{}, err
		}
		tok.Mark = m
	}
	if tok.ReEnding != "" && !tok.ReReading.IsPresent() {
		T().Infof("kanbun: ending %q of unit %q follows a bracketed ending and will be ignored",
			tok.ReEnding, tok.Raw)
	}
	return tok, nil
}

func reading(s string) kanbun.Reading {
	switch {
	case strings.HasPrefix(s, "《"):
		return kanbun.Reading{
			Text: strings.TrimSuffix(strings.TrimPrefix(s, "《"), "》"),
			Vis:  kanbun.Visible,
		}
	case strings.HasPrefix(s, "〈"):
		return kanbun.Reading{
			Text: strings.TrimSuffix(strings.TrimPrefix(s, "〈"), "〉"),
			Vis:  kanbun.Hidden,
		}
	}
	return kanbun.Reading{}
}

// ending unwraps the bracketed form ［＃（…）］ used for endings
// containing ideographs (万葉仮名).
func ending(s string) string {
	if strings.HasPrefix(s, "［＃（") {
		return strings.TrimSuffix(strings.TrimPrefix(s, "［＃（"), "）］")
	}
	return s
}
