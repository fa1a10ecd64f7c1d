package kanbun

import (
	"errors"
	"strings"
	"testing"
)

func TestReread(t *testing.T) {
	tok := Token{
		Glyph:     "猶",
		Reading:   Reading{Text: "な", Vis: Visible},
		Ending:    "ホ",
		ReReading: Reading{Text: "ゴト", Vis: Hidden},
		ReEnding:  "シ",
		Mark:      Mark{Family: FamilyA, Rank: 2},
		Span:      Span{From: 3, To: 30},
	}
	if !tok.IsReread() {
		t.Fatalf("expected token to be read twice")
	}
	d := tok.Reread()
	if d.Reading != tok.ReReading || d.Ending != "シ" {
		t.Errorf("derived token should carry the re-reading, is %v", d)
	}
	if d.IsReread() {
		t.Errorf("derived token must not be read twice again")
	}
	if d.Glyph != tok.Glyph || d.Mark != tok.Mark || d.Span != tok.Span {
		t.Errorf("derived token should keep glyph, mark and position")
	}
	if tok.Reading.Text != "な" {
		t.Errorf("original token has been modified")
	}
}

func TestTokenMarks(t *testing.T) {
	tok := Token{Glyph: "見", Link: true, Mark: Mark{Reversal: true}}
	if m := tok.Marks(); m != "‐レ" {
		t.Errorf("expected marks ‐レ, have %q", m)
	}
	if s := tok.String(); s != "見[‐レ]" {
		t.Errorf("unexpected token string %q", s)
	}
	if (Token{Glyph: "、"}).IsPunctuation() != true {
		t.Errorf("、 should be punctuation")
	}
	if Glyphs([]Token{{Glyph: "山"}, {Glyph: "川"}}) != "山川" {
		t.Errorf("Glyphs should concatenate glyphs")
	}
}

func TestStructuralParseError(t *testing.T) {
	text := "漢字［＃五］が読めません"
	err := NewStructuralParseError(text, len("漢字"), "unknown rank")
	if !errors.Is(err, ErrStructure) {
		t.Errorf("expected error to match ErrStructure")
	}
	if err.Offset != len("漢字") || !strings.HasPrefix(err.Remainder, "［＃五］") {
		t.Errorf("unexpected error position: %+v", err)
	}
	if !strings.Contains(err.Error(), "unknown rank") {
		t.Errorf("error message should contain reason, is %q", err.Error())
	}
}
