package main

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

var jaMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Japanese,
})

// hiraganaByLocale decides from the user's locale whether kundoku output
// should use hiragana, which is common in modern Japanese editions.
func hiraganaByLocale() bool {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		return false
	}
	tracer().Infof("detected user locale %v", userLocale)
	return isJapanese(language.Make(userLocale))
}

func isJapanese(lang language.Tag) bool {
	_, index, confidence := jaMatch.Match(lang)
	return index == 1 && confidence != language.No
}
