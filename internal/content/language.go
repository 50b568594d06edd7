package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two UI languages the site is rendered in.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Languages lists the supported languages, Arabic first.
var Languages = []Language{Arabic, English}

// matcher order must follow Languages so Match indexes line up.
var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// ParseLanguage normalizes s ("EN", "en-US", "ar_EG") to a supported Language.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Language(s) {
	case Arabic, English:
		return Language(s), true
	}
	return "", false
}

// LanguageOrDefault parses s and falls back to Arabic when s is unset or invalid.
func LanguageOrDefault(s string) Language {
	if l, ok := ParseLanguage(s); ok {
		return l
	}
	return Arabic
}

// Dir returns the text direction for the language: "rtl" or "ltr".
func (l Language) Dir() string {
	if l == English {
		return "ltr"
	}
	return "rtl"
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// ToggleLabel is the text shown on the control that switches away from l.
func (l Language) ToggleLabel() string {
	return strings.ToUpper(string(l.Toggle()))
}

func (l Language) String() string { return string(l) }

// Negotiate resolves the language for a request. An explicit query value wins,
// then the Accept-Language header, then fallback.
func Negotiate(query, acceptLanguage string, fallback Language) Language {
	if l, ok := ParseLanguage(query); ok {
		return l
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Languages[idx]
			}
		}
	}
	return fallback
}
