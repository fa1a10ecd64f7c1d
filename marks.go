package kanbun

import (
	"fmt"
	"strings"
)

// Family is one of the four families of rank marks. Families are
// independent of each other: marks of different families may interleave
// freely.
type Family uint8

// Rank families. NoFamily is used for marks without a rank.
const (
	NoFamily Family = iota
	FamilyA         // 一 二 三 四
	FamilyB         // 上 中 下
	FamilyC         // 甲 乙 丙 丁
	FamilyD         // 天 地 人
)

// Families lists the rank families in canonical order.
var Families = [...]Family{FamilyA, FamilyB, FamilyC, FamilyD}

// MaxRank is the largest number of ranks of any family.
const MaxRank = 4

var familySymbols = [...][]rune{
	NoFamily: nil,
	FamilyA:  {'一', '二', '三', '四'},
	FamilyB:  {'上', '中', '下'},
	FamilyC:  {'甲', '乙', '丙', '丁'},
	FamilyD:  {'天', '地', '人'},
}

// Size returns the number of ranks of a family.
func (f Family) Size() int {
	if int(f) >= len(familySymbols) {
		return 0
	}
	return len(familySymbols[f])
}

// Symbol returns the mark symbol for a rank within f, or 0 if the rank
// is out of range.
func (f Family) Symbol(r Rank) rune {
	if r < 1 || int(r) > f.Size() {
		return 0
	}
	return familySymbols[f][r-1]
}

func (f Family) String() string {
	if f == NoFamily || f.Size() == 0 {
		return "-"
	}
	return string(familySymbols[f])
}

// Rank is the 1-based rank of a mark within its family. Rank 1 is the
// lowest rank and triggers a flush of the family; higher ranks are held
// back until then.
type Rank uint8

// Symbols of the marks which do not belong to a rank family.
const (
	ReversalSymbol = 'レ' // swap with the next glyph (レ点)
	LinkSymbol     = '‐' // tie to the next glyph (竪点)
)

// Mark is a reading-order mark. The zero value is the absence of a mark.
// A mark has a rank, a reversal, or a lowest rank followed by a reversal
// (一レ, 上レ, 甲レ, 天レ).
type Mark struct {
	Family   Family
	Rank     Rank
	Reversal bool
}

// IsZero is true if m represents the absence of a mark.
func (m Mark) IsZero() bool {
	return m == Mark{}
}

// HasRank is true if m carries a rank of one of the four families.
func (m Mark) HasRank() bool {
	return m.Family != NoFamily && m.Rank > 0
}

// IsLowest is true if m carries the lowest rank of its family.
func (m Mark) IsLowest() bool {
	return m.HasRank() && m.Rank == 1
}

// RankOnly returns m with the reversal stripped.
func (m Mark) RankOnly() Mark {
	return Mark{Family: m.Family, Rank: m.Rank}
}

// Symbols returns the mark in annotation syntax, without brackets.
func (m Mark) Symbols() string {
	var b strings.Builder
	if m.HasRank() {
		b.WriteRune(m.Family.Symbol(m.Rank))
	}
	if m.Reversal {
		b.WriteRune(ReversalSymbol)
	}
	return b.String()
}

func (m Mark) String() string {
	if m.IsZero() {
		return "<no mark>"
	}
	return m.Symbols()
}

// rankOf maps a rank symbol to its family and rank.
var rankOf = func() map[rune]Mark {
	m := make(map[rune]Mark)
	for _, f := range Families {
		for i, r := range familySymbols[f] {
			m[r] = Mark{Family: f, Rank: Rank(i + 1)}
		}
	}
	return m
}()

// ParseMark interprets the symbols of a reading-order mark, e.g. "二" or
// "一レ". A rank prefix for a reversal must be the lowest rank of its family.
// Unknown symbols result in an error wrapping ErrStructure.
func ParseMark(symbols string) (Mark, error) {
	rs := []rune(symbols)
	var m Mark
	if len(rs) > 0 && rs[len(rs)-1] == ReversalSymbol {
		m.Reversal = true
		rs = rs[:len(rs)-1]
	}
	switch len(rs) {
	case 0:
		if !m.Reversal {
			return m, fmt.Errorf("%w: empty reading-order mark", ErrStructure)
		}
		return m, nil
	case 1:
		rank, ok := rankOf[rs[0]]
		if !ok {
			return Mark{}, fmt.Errorf("%w: unknown rank symbol %q", ErrStructure, rs[0])
		}
		if m.Reversal && !rank.IsLowest() {
			return Mark{}, fmt.Errorf("%w: rank %q may not prefix a reversal", ErrStructure, rs[0])
		}
		m.Family, m.Rank = rank.Family, rank.Rank
		return m, nil
	}
	return Mark{}, fmt.Errorf("%w: malformed reading-order mark %q", ErrStructure, symbols)
}

// IdeographicMarks maps mark symbols to the Unicode Kanbun annotation
// characters (U+3190…U+319F).
var IdeographicMarks = map[rune]rune{
	'‐': '㆐', 'レ': '㆑', '一': '㆒', '二': '㆓',
	'三': '㆔', '四': '㆕', '上': '㆖', '中': '㆗',
	'下': '㆘', '甲': '㆙', '乙': '㆚', '丙': '㆛',
	'丁': '㆜', '天': '㆝', '地': '㆞', '人': '㆟',
}

// Ideographic substitutes every mark symbol in s by its Kanbun annotation
// character. Other runes are copied unchanged.
func Ideographic(s string) string {
	return strings.Map(func(r rune) rune {
		if k, ok := IdeographicMarks[r]; ok {
			return k
		}
		return r
	}, s)
}
