// Package lang normalizes language codes coming from feeds, article dumps and config.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Base is the language the taxonomy hooks are written in.
const Base = "en"

// Normalize reduces a language code or tag to its lowercase base subtag ("fr-CA" -> "fr").
// Codes that do not parse are returned lowercased and trimmed.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// Same reports whether two codes refer to the same base language.
func Same(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

var snowballNames = map[string]string{
	"en": "english",
	"fr": "french",
	"es": "spanish",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"nb": "norwegian",
	"hu": "hungarian",
}

// SnowballName maps a language code to the name used by the snowball stemmers.
func SnowballName(code string) (string, bool) {
	name, ok := snowballNames[Normalize(code)]
	return name, ok
}
