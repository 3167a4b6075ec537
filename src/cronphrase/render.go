package cronphrase

import (
	"strconv"
	"strings"
	"time"
)

// renderer turns canonical fields into a phrase for one conversion call.
type renderer struct {
	phrases PhraseSet
	days    DayMap
	loc     *time.Location
}

// render walks the recurrence shapes in priority order and returns the first
// match. When nothing matches the original input is returned as is.
func (r renderer) render(input string, f Fields) string {
	if n, ok := f.Minute.Step(); ok && f.Hour.IsStar() {
		return r.phrases.Phrase(KeyEveryXMinutes, n)
	}

	if n, ok := f.Hour.Step(); ok && f.Minute.Raw == "0" {
		if allWeekdays(f.DayOfWeek) {
			return r.phrases.Phrase(KeyEveryXHours, n)
		}
		return r.phrases.Phrase(KeyEveryXHoursOn, n, r.joinDays(f.DayOfWeek))
	}

	switch {
	case f.DayOfWeek.IsWildcard() && f.DayOfMonth.IsStar():
		return r.phrases.Phrase(KeyEveryDay) + " " + r.at(f)

	case !f.DayOfWeek.IsWildcard() && f.DayOfMonth.IsStar():
		return r.phrases.Phrase(KeyEveryDays, r.joinDays(f.DayOfWeek)) + " " + r.at(f)

	case !f.DayOfMonth.IsStar() && f.DayOfWeek.IsWildcard():
		day := Ordinal(f.DayOfMonth.Raw)
		if n, ok := f.Month.Step(); ok {
			return r.phrases.Phrase(KeyEveryXMonthsOnDay, n, day) + " " + r.at(f)
		}
		return r.phrases.Phrase(KeyEveryMonthOnDay, day) + " " + r.at(f)

	case !f.DayOfMonth.IsStar() && !f.DayOfWeek.IsWildcard():
		return r.phrases.Phrase(KeyOnDayAndWeek, Ordinal(f.DayOfMonth.Raw), r.joinDays(f.DayOfWeek)) + " " + r.at(f)
	}

	return input
}

func (r renderer) at(f Fields) string {
	return r.phrases.Phrase(KeyAtTime, FormatTime(f.Hour.Raw, f.Minute.Raw, r.loc))
}

// joinDays labels each weekday token, drops repeats and joins the labels as
// a list: "Mon", "Mon and Tue", "Mon, Tue and Wed".
func (r renderer) joinDays(dow Field) string {
	seen := make(map[string]bool)
	var labels []string
	for _, token := range dow.Tokens() {
		label := r.days.Label(token)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return JoinList(labels, r.phrases)
}

// JoinList joins labels with commas and the language's final conjunction.
func JoinList(labels []string, phrases PhraseSet) string {
	and := " " + phrases.Phrase(KeyListAnd) + " "
	switch len(labels) {
	case 0:
		return phrases.Phrase(KeyDays)
	case 1:
		return labels[0]
	case 2:
		return labels[0] + and + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + and + labels[len(labels)-1]
	}
}

// allWeekdays reports whether a weekday field covers the whole week: a
// wildcard, or a list whose distinct items are exactly 0 through 6.
func allWeekdays(dow Field) bool {
	if dow.IsWildcard() {
		return true
	}
	set := make(map[string]bool)
	for _, token := range dow.Tokens() {
		set[token] = true
	}
	if len(set) != 7 {
		return false
	}
	for d := 0; d < 7; d++ {
		if !set[strconv.Itoa(d)] {
			return false
		}
	}
	return true
}

// Ordinal renders a day of month as "1st", "2nd", "11th" and so on. Any
// "/step" suffix is dropped first; non-numeric input is returned unchanged.
func Ordinal(day string) string {
	if i := strings.Index(day, "/"); i >= 0 {
		day = day[:i]
	}
	n, err := strconv.Atoi(day)
	if err != nil {
		return day
	}
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
