package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/ngrash/go-cal/caldate"
)

type names struct {
	tag      language.Tag
	months   [12]string
	weekdays [7]string // starting on Sunday
}

func (n names) month(d caldate.Date) string {
	return fmt.Sprintf("%s %d", n.months[d.Month-1], d.Year)
}

func (n names) weekday(d caldate.Date) string {
	return n.weekdays[d.Weekday()]
}

var english = names{
	tag:      language.English,
	months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// The first entry is the fallback when nothing matches.
var locales = []names{
	english,
	{
		tag:      language.German,
		months:   [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		tag:      language.French,
		months:   [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		weekdays: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	},
	{
		tag:      language.Spanish,
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	{
		tag:      language.Russian,
		months:   [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
		weekdays: [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// ForLocale returns a Formatter for the best supported match of the
// preferred tags. English is used when nothing matches.
func ForLocale(preferred ...language.Tag) Formatter {
	l := match(preferred)
	return Formatter{Month: l.month, Weekday: l.weekday}
}

// Locale returns the supported tag ForLocale would pick for preferred.
func Locale(preferred ...language.Tag) language.Tag {
	return match(preferred).tag
}

func match(preferred []language.Tag) names {
	if len(preferred) == 0 {
		return english
	}
	_, i, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return english
	}
	return locales[i]
}

// ParseLocale parses a BCP 47 tag ("de-CH") or an Accept-Language header
// value ("fr-CH, fr;q=0.9, en;q=0.8") into preferred tags, best first.
func ParseLocale(s string) ([]language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tags, nil
}
