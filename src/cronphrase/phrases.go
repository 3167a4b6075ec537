package cronphrase

import (
	"strconv"
	"strings"
)

// Language is a supported output language.
type Language int

const (
	English Language = iota
	Spanish
	French
)

var languageCodes = map[string]Language{
	"en": English,
	"es": Spanish,
	"fr": French,
}

// ParseLanguage resolves a language code case-insensitively. Unknown codes
// resolve to English.
func ParseLanguage(code string) Language {
	if lang, ok := languageCodes[strings.ToLower(code)]; ok {
		return lang
	}
	return English
}

func (l Language) String() string {
	for code, lang := range languageCodes {
		if lang == l {
			return code
		}
	}
	return "en"
}

// Phrase keys.
const (
	KeyEveryDay          = "EveryDay"
	KeyAtTime            = "AtTime"
	KeyEveryXMinutes     = "EveryXMinutes"
	KeyEveryXHours       = "EveryXHours"
	KeyEveryXHoursOn     = "EveryXHoursOn"
	KeyEveryDays         = "EveryDays"
	KeyEveryMonthOnDay   = "EveryMonthOnDay"
	KeyEveryXMonthsOnDay = "EveryXMonthsOnDay"
	KeyOnDayAndWeek      = "OnDayAndWeek"
	KeyListAnd           = "ListAnd"
	KeyDays              = "Days"
)

// PhraseSet maps phrase keys to templates with positional {0}, {1} slots.
type PhraseSet map[string]string

var phraseSets = map[Language]PhraseSet{
	English: {
		KeyEveryDay:          "Every day",
		KeyAtTime:            "at {0}",
		KeyEveryXMinutes:     "Every {0} minutes",
		KeyEveryXHours:       "Every {0} hours",
		KeyEveryXHoursOn:     "Every {0} hours on {1}",
		KeyEveryDays:         "Every {0}",
		KeyEveryMonthOnDay:   "Every month on the {0}",
		KeyEveryXMonthsOnDay: "Every {0} months on the {1}",
		KeyOnDayAndWeek:      "On {0} and {1}",
		KeyListAnd:           "and",
		KeyDays:              "days",
	},
	Spanish: {
		KeyEveryDay:          "Cada día",
		KeyAtTime:            "a las {0}",
		KeyEveryXMinutes:     "Cada {0} minutos",
		KeyEveryXHours:       "Cada {0} horas",
		KeyEveryXHoursOn:     "Cada {0} horas los {1}",
		KeyEveryDays:         "Cada {0}",
		KeyEveryMonthOnDay:   "Cada mes el día {0}",
		KeyEveryXMonthsOnDay: "Cada {0} meses el día {1}",
		KeyOnDayAndWeek:      "El {0} y los {1}",
		KeyListAnd:           "y",
		KeyDays:              "días",
	},
	French: {
		KeyEveryDay:          "Chaque jour",
		KeyAtTime:            "à {0}",
		KeyEveryXMinutes:     "Toutes les {0} minutes",
		KeyEveryXHours:       "Toutes les {0} heures",
		KeyEveryXHoursOn:     "Toutes les {0} heures le {1}",
		KeyEveryDays:         "Chaque {0}",
		KeyEveryMonthOnDay:   "Chaque mois le {0}",
		KeyEveryXMonthsOnDay: "Tous les {0} mois le {1}",
		KeyOnDayAndWeek:      "Le {0} et le {1}",
		KeyListAnd:           "et",
		KeyDays:              "jours",
	},
}

// PhrasesFor returns the phrase set for a language code.
func PhrasesFor(code string) PhraseSet {
	return phraseSets[ParseLanguage(code)]
}

// Phrase formats the template stored under key. A key with no template is
// used as the template itself.
func (p PhraseSet) Phrase(key string, args ...string) string {
	tmpl, ok := p[key]
	if !ok {
		tmpl = key
	}
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", arg)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
