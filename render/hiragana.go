package render

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Katakana ァ…ヶ and the iteration marks ヽ ヾ sit at a fixed offset from
// their hiragana counterparts.
const kanaOffset = 0x60

func toHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' || r == 'ヽ' || r == 'ヾ' {
		return r - kanaOffset
	}
	return r
}

var hiraganaFold = runes.Map(toHiragana)

// ToHiragana replaces every katakana in s by the corresponding hiragana.
// All other runes, including markup, are left untouched.
func ToHiragana(s string) string {
	h, _, err := transform.String(hiraganaFold, s)
	if err != nil {
		T().Errorf("kanbun: hiragana conversion failed: %v", err)
		return s
	}
	return h
}
