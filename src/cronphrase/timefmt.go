package cronphrase

import (
	"strconv"
	"strings"
	"time"
)

const clockLayout = "03:04 PM"

// FormatTime renders an hour and minute field as a 12-hour clock string.
// A "*/N" field is read as N and anything unparseable as 0. The time is
// taken as UTC on a fixed date and shown in loc when loc is non-nil.
func FormatTime(hour, minute string, loc *time.Location) string {
	t := time.Date(2000, time.January, 1, clockValue(hour), clockValue(minute), 0, 0, time.UTC)
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(clockLayout)
}

func clockValue(field string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(field, "*/"))
	if err != nil {
		return 0
	}
	return n
}
