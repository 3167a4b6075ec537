package cronphrase

import "strings"

// FieldKind tags the shape of a single cron field.
type FieldKind int

const (
	// KindAny is "*" or "?".
	KindAny FieldKind = iota
	// KindStep is "*/N".
	KindStep
	// KindList is a comma separated list.
	KindList
	// KindValue is any other single token: a number, a name, a range or a
	// start/step pair such as "1/1".
	KindValue
)

// Field is one parsed cron field. Raw always holds the original token.
type Field struct {
	Kind     FieldKind
	Raw      string
	Interval string
	Items    []string
}

// ParseField classifies a raw cron field.
func ParseField(raw string) Field {
	switch {
	case raw == "*" || raw == "?":
		return Field{Kind: KindAny, Raw: raw}
	case strings.HasPrefix(raw, "*/"):
		return Field{Kind: KindStep, Raw: raw, Interval: raw[2:]}
	case strings.Contains(raw, ","):
		return Field{Kind: KindList, Raw: raw, Items: strings.Split(raw, ",")}
	default:
		return Field{Kind: KindValue, Raw: raw, Items: []string{raw}}
	}
}

// IsStar reports whether the field is literally "*".
func (f Field) IsStar() bool {
	return f.Raw == "*"
}

// IsWildcard reports whether the field is "*" or "?".
func (f Field) IsWildcard() bool {
	return f.Kind == KindAny
}

// Step returns the interval of a "*/N" field.
func (f Field) Step() (string, bool) {
	return f.Interval, f.Kind == KindStep
}

// Tokens returns the comma separated items of the field.
func (f Field) Tokens() []string {
	if f.Items != nil {
		return f.Items
	}
	return []string{f.Raw}
}

// Fields is the canonical five-field form of an expression.
type Fields struct {
	Minute     Field
	Hour       Field
	DayOfMonth Field
	Month      Field
	DayOfWeek  Field
}

func (f Fields) String() string {
	return strings.Join([]string{f.Minute.Raw, f.Hour.Raw, f.DayOfMonth.Raw, f.Month.Raw, f.DayOfWeek.Raw}, " ")
}

// Normalize reduces an expression to its five canonical tokens. Five tokens
// pass through untouched. Six or seven tokens are read as Quartz
// (seconds minute hour day month weekday [year]): seconds and year are
// dropped and a "?" weekday becomes "*". Any other count is not normalizable.
func Normalize(expr string) ([]string, bool) {
	parts := strings.Fields(expr)
	switch len(parts) {
	case 5:
		return parts, true
	case 6, 7:
		dow := parts[5]
		if dow == "?" {
			dow = "*"
		}
		return []string{parts[1], parts[2], parts[3], parts[4], dow}, true
	default:
		return nil, false
	}
}

// ParseFields normalizes expr and parses each canonical field.
func ParseFields(expr string) (Fields, bool) {
	parts, ok := Normalize(expr)
	if !ok {
		return Fields{}, false
	}
	return Fields{
		Minute:     ParseField(parts[0]),
		Hour:       ParseField(parts[1]),
		DayOfMonth: ParseField(parts[2]),
		Month:      ParseField(parts[3]),
		DayOfWeek:  ParseField(parts[4]),
	}, true
}
