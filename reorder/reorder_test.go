package reorder

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/kanbun"
	"github.com/npillmayer/kanbun/tokenize"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// spoken renders tokens the way they are read aloud: hidden readings
// replace their glyph, endings follow.
func spoken(tokens []kanbun.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Reading.Vis == kanbun.Hidden {
			b.WriteString(t.Reading.Text)
		} else {
			b.WriteString(t.Glyph)
		}
		b.WriteString(t.Ending)
	}
	return b.String()
}

func kundoku(t *testing.T, text string) []kanbun.Token {
	tokens, err := tokenize.Tokenize(text)
	if err != nil {
		t.Fatalf("cannot tokenize %q: %v", text, err)
	}
	ordered, err := Checked(tokens)
	if err != nil {
		t.Fatalf("reordering of %q failed: %v", text, err)
	}
	return ordered
}

func TestExamples(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	examples := []struct {
		text, reading string
	}{
		{ // 且 is read twice: 且ニ … ス
			"引キテ［＃レ］酒ヲ且《》ニ〈ス〉［＃レ］飲マント［＃レ］之ヲ。",
			"酒ヲ引キテ且ニ之ヲ飲マントス。",
		}, {
			"孤之〈ノ〉有ルハ［＃二］孔明［＃一］、猶《な》ホ〈ゴト〉シ［＃二］魚之〈ノ〉有ルガ［＃一レ］水。",
			"孤ノ孔明有ルハ、猶ホ魚ノ水有ルガゴトシ。",
		}, {
			"青ハ取リテ［＃二］之ヲ於〈〉藍ヨリ［＃一］而〈〉青シ［＃二］於〈〉藍ヨリモ［＃一］",
			"青ハ之ヲ藍ヨリ取リテ藍ヨリモ青シ",
		}, {
			"使〈シ〉メヨ［＃人］籍《せき》ヲシテ誠《まこと》ニ不〈〉〈ズ〉［＃乙］以《もつ》テ［＃下］蓄《やしな》ヒ［＃二］妻子ヲ［＃一］憂《うれ》フルヲ［＃中］飢寒《きかん》ヲ［＃上］乱サ［＃甲レ］心ヲ、有リテ［＃レ］銭《ぜに》以《もつ》テ済《な》サ［＃地］医薬ヲ［＃天］。",
			"籍ヲシテ誠ニ妻子ヲ蓄ヒ飢寒ヲ憂フルヲ以テ心ヲ乱サズ、銭有リテ以テ医薬ヲ済サシメヨ。",
		},
	}
	for i, ex := range examples {
		ordered := kundoku(t, ex.text)
		if s := spoken(ordered); s != ex.reading {
			t.Errorf("example #%d: expected reading\n  %s\nhave\n  %s", i, ex.reading, s)
		}
	}
}

func TestIdeographTwo(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// with ideograph 二 instead of katakana ニ, 二 is a glyph of its own
	ordered := kundoku(t, "引キテ［＃レ］酒ヲ且《》二〈ス〉［＃レ］飲マント［＃レ］之ヲ。")
	if g := kanbun.Glyphs(ordered); g != "酒引且之飲二。" {
		t.Errorf("expected glyph order 酒引且之飲二。, have %s", g)
	}
}

func TestSingleGlyph(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tokens := tokenize.MustTokenize("山")
	ordered := Reorder(tokens)
	if len(ordered) != 1 || ordered[0] != tokens[0] {
		t.Errorf("expected single token to reorder to itself, have %v", ordered)
	}
}

func TestReversalPairing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"読［＃レ］書",
		"読［＃レ］書［＃レ］見［＃レ］聞",
		"不［＃レ］入［＃二］虎穴［＃一］",
		"山‐［＃レ］川",
	}
	for _, input := range inputs {
		tokens := tokenize.MustTokenize(input)
		ordered := kundoku(t, input)
		pos := positions(ordered)
		for i, tok := range tokens[:len(tokens)-1] {
			if !tok.Mark.Reversal {
				continue
			}
			next := tokens[i+1]
			if pos[tok.Span.From] != pos[next.Span.From]+1 {
				t.Errorf("%s: expected %s to follow %s immediately, order is %s",
					input, tok.Glyph, next.Glyph, kanbun.Glyphs(ordered))
			}
		}
	}
}

// positions maps source positions of tokens to positions in a sequence.
func positions(tokens []kanbun.Token) map[int]int {
	m := make(map[int]int, len(tokens))
	for i, t := range tokens {
		m[t.Span.From] = i
	}
	return m
}

func TestRereadDuplication(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"将《まさ》ニ〈ス〉［＃レ］行カント",
		"未〈〉〈ズ〉［＃二］嘗テ見［＃一］",
		"宜《よろ》シク〈ベ〉シ［＃下］以テ［＃二］此ヲ為ス［＃一］人［＃中］観［＃上］",
	}
	for _, input := range inputs {
		tokens := tokenize.MustTokenize(input)
		ordered := kundoku(t, input)
		if len(ordered) != len(tokens)+1 {
			t.Errorf("%s: expected %d tokens after reordering, have %d", input, len(tokens)+1, len(ordered))
		}
		reread := tokens[0]
		var primary, second int
		for _, o := range ordered {
			if o.Span != reread.Span {
				continue
			}
			if o.Reading == reread.Reading && o.Ending == reread.Ending {
				primary++
			} else if o.Reading == reread.ReReading && o.Ending == reread.ReEnding {
				second++
			}
		}
		if primary != 1 || second != 1 {
			t.Errorf("%s: expected glyph %s once with each reading, have %d/%d",
				input, reread.Glyph, primary, second)
		}
		if ordered[0].Span != reread.Span || ordered[0].ReReading != reread.ReReading {
			t.Errorf("%s: expected first reading of %s in place", input, reread.Glyph)
		}
	}
}

func TestFamilyIndependence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"書［＃二］読［＃下］見［＃一］聞［＃上］",
		"読［＃下］書［＃二］見［＃一］聞［＃上］",
		"書［＃二］読［＃下］聞［＃上］見［＃一］",
		"読［＃下］書［＃二］聞［＃上］見［＃一］",
	}
	for _, input := range inputs {
		ordered := kundoku(t, input)
		g := kanbun.Glyphs(ordered)
		if !before(g, "見", "書") {
			t.Errorf("%s: family 一二 out of order: %s", input, g)
		}
		if !before(g, "聞", "読") {
			t.Errorf("%s: family 上下 out of order: %s", input, g)
		}
	}
	if g := kanbun.Glyphs(kundoku(t, inputs[0])); g != "見書聞読" {
		t.Errorf("expected 見書聞読, have %s", g)
	}
}

func before(s, a, b string) bool {
	i, j := strings.Index(s, a), strings.Index(s, b)
	return i >= 0 && j >= 0 && i < j
}

func TestRankOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	ordered := kundoku(t, "四［＃四］三［＃三］二［＃二］一［＃一］")
	if g := kanbun.Glyphs(ordered); g != "一二三四" {
		t.Errorf("expected groups in ascending rank order, have %s", g)
	}
	ordered = kundoku(t, "丁［＃丁］乙［＃乙］丙［＃丙］甲［＃甲］")
	if g := kanbun.Glyphs(ordered); g != "甲乙丙丁" {
		t.Errorf("expected groups in ascending rank order, have %s", g)
	}
	ordered = kundoku(t, "人［＃人］天［＃天］")
	if g := kanbun.Glyphs(ordered); g != "天人" {
		t.Errorf("missing slots should contribute nothing, have %s", g)
	}
}

func TestLink(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	ordered := kundoku(t, "読‐書［＃二］見［＃一］")
	if g := kanbun.Glyphs(ordered); g != "見読書" {
		t.Errorf("expected linked glyphs to move as a unit, have %s", g)
	}
}

func TestValidate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []struct {
		text   string
		offset int
	}{
		{"書［＃二］読", len("書［＃二］読")},
		{"書［＃レ］", len("書［＃レ］")},
		{"書‐", len("書‐")},
		{"書［＃二］読［＃二］見［＃一］", len("書［＃二］")},
		{"書［＃一レ］読［＃二］見", len("書［＃一レ］")},
	}
	for _, inp := range inputs {
		err := Validate(tokenize.MustTokenize(inp.text))
		if err == nil {
			t.Errorf("expected %q to be invalid", inp.text)
			continue
		}
		if !errors.Is(err, kanbun.ErrStructure) {
			t.Errorf("%q: expected a structural error, have %v", inp.text, err)
		}
		var serr *kanbun.StructuralParseError
		if errors.As(err, &serr) && serr.Offset != inp.offset {
			t.Errorf("%q: expected error at offset %d, is %d", inp.text, inp.offset, serr.Offset)
		}
		if _, err := Checked(tokenize.MustTokenize(inp.text)); err == nil {
			t.Errorf("%q: Checked should fail", inp.text)
		}
	}
	if err := Validate(tokenize.MustTokenize("見［＃一］")); err != nil {
		t.Errorf("lowest rank of an unopened family should be legal, have %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Errorf("empty sequence should be valid, have %v", err)
	}
}

func TestUnknownRank(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := NewState(1)
	s.Step(kanbun.Token{Glyph: "下", Mark: kanbun.Mark{Family: kanbun.FamilyB, Rank: 4}})
	s.Close()
	if s.Err() == nil {
		t.Errorf("expected rank 4 of family 上中下 to be reported")
	}
	if len(s.Output()) != 1 {
		t.Errorf("expected token with unknown rank to be emitted in place")
	}
}

func TestGroup(t *testing.T) {
	var empty *Group
	if !empty.IsEmpty() || empty.Tokens() != nil {
		t.Errorf("nil group should be empty")
	}
	g := NewGroup(kanbun.Token{Glyph: "二"})
	g.Prepend(kanbun.Token{Glyph: "一"})
	g.Append(kanbun.Token{Glyph: "三"})
	if g.Len() != 3 {
		t.Fatalf("expected group of 3 tokens, have %d", g.Len())
	}
	if s := kanbun.Glyphs(g.Tokens()); s != "一二三" {
		t.Errorf("expected group 一二三, have %s", s)
	}
	if first, ok := g.First(); !ok || first.Glyph != "一" {
		t.Errorf("expected first token to be 一, is %v", first)
	}
}
