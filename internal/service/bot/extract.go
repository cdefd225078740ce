package bot

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalizedWord matches a word starting with an uppercase letter followed by
// at least one more letter. \b is ASCII-only, so matches are checked against
// their neighbouring runes in wholeWord.
var capitalizedWord = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

var weatherKeywords = []string{"weather", "temperature", "forecast", "beach", "hiking"}

// ExtractCity returns the last capitalized word of text. Any capitalized word
// qualifies, including sentence-initial ones, so "What is the weather" yields
// "What".
func ExtractCity(text string) (string, bool) {
	locs := capitalizedWord.FindAllStringIndex(text, -1)
	for i := len(locs) - 1; i >= 0; i-- {
		start, end := locs[i][0], locs[i][1]
		if wholeWord(text, start, end) {
			return text[start:end], true
		}
	}
	return "", false
}

// wholeWord reports whether text[start:end] is not part of a longer word,
// e.g. "Krak" in "Kraków".
func wholeWord(text string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MentionsWeather reports whether text asks about weather or activities.
func MentionsWeather(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
