package tokenize

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Character classes of the annotation grammar.
//
//   kanji      := CJK Unified Ideographs (incl. Ext. A), Compatibility
//                 Ideographs, and plane 2
//   vselector  := ideographic variation selector (U+E0100…U+E01EF)
//   kana       := Hiragana and Katakana blocks
//   punct      := 。 、
const (
	kanji       = `[\x{3400}-\x{9FFF}\x{F900}-\x{FAFF}\x{20000}-\x{2FFFF}]`
	vselector   = `[\x{E0100}-\x{E01EF}]`
	kana        = `[\x{3041}-\x{30FF}]`
	punct       = `[。、]`
	kanaOrGlyph = `(?:` + kana + `|` + kanji + vselector + `?|` + punct + `)`
)

// Token types of the unit lexer. Rules are tried in order; rules sharing
// a prefix ("［＃") are disjoint after it.
const (
	tMark    = "Mark"
	tManyo   = "Manyo"
	tVisible = "Visible"
	tHidden  = "Hidden"
	tKana    = "Kana"
	tKanji   = "Kanji"
	tPunct   = "Punct"
	tLink    = "Link"
)

var unitLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: tMark, Pattern: `［＃(?:[一二三四上中下天地人甲乙丙丁]|[一上天甲]?レ)］`},
	{Name: tManyo, Pattern: `［＃（` + kanaOrGlyph + `+）］`},
	{Name: tVisible, Pattern: `《` + kanaOrGlyph + `*》`},
	{Name: tHidden, Pattern: `〈` + kanaOrGlyph + `*〉`},
	{Name: tKana, Pattern: kana + `+`},
	{Name: tKanji, Pattern: kanji + vselector + `?`},
	{Name: tPunct, Pattern: punct},
	{Name: tLink, Pattern: `‐`},
})

// source is the grammar for a complete annotated text.
//
//nolint:govet // participle grammar tags are not standard struct tags
type source struct {
	Units []*unit `@@*`
}

// unit is the grammar for a single annotated unit. All fields capture
// their source text verbatim, including brackets.
//
//nolint:govet // participle grammar tags are not standard struct tags
type unit struct {
	Pos       lexer.Position
	Glyph     string `@(Kanji | Punct)`
	Reading   string `@(Visible | Hidden)?`
	Ending    string `@(Kana | Manyo)?`
	ReReading string `@(Visible | Hidden)?`
	ReEnding  string `@(Kana | Manyo)?`
	Link      string `@Link?`
	Mark      string `@Mark?`
}

// raw reconstructs the source text of a unit.
func (u *unit) raw() string {
	return u.Glyph + u.Reading + u.Ending + u.ReReading + u.ReEnding + u.Link + u.Mark
}

var unitParser = participle.MustBuild[source](
	participle.Lexer(unitLexer),
)
