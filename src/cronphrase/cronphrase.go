// Package cronphrase describes cron and Quartz cron expressions in plain
// language.
//
//	cronphrase.Describe("*/5 * * * *")      // "Every 5 minutes"
//	cronphrase.Describe("0 15 10 * * ?")    // "Every day at 10:15 AM"
//
// Only a fixed set of recurrence shapes is recognised. Expressions that do
// not have five fields after normalization yield InvalidExpression, and
// shapes with no phrase are returned unchanged.
package cronphrase

import "time"

// ToHumanReadable converts expr into a phrase using the given settings. When
// loc is non-nil the time of day is shown in that zone. The only error is a
// configuration error from the settings.
func ToHumanReadable(expr string, s Settings, loc *time.Location) (string, error) {
	days, err := DayMapFor(s)
	if err != nil {
		return "", err
	}
	fields, ok := ParseFields(expr)
	if !ok {
		return InvalidExpression, nil
	}
	r := renderer{
		phrases: PhrasesFor(s.Language),
		days:    days,
		loc:     loc,
	}
	return r.render(expr, fields), nil
}

// Describe converts expr with the default settings and no time zone.
func Describe(expr string) string {
	// default settings never fail
	phrase, _ := ToHumanReadable(expr, DefaultSettings(), nil)
	return phrase
}

// Service converts expressions with one fixed set of settings.
type Service struct {
	settings Settings
}

// NewService validates the settings and returns a Service bound to them.
func NewService(s Settings) (*Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Service{settings: s}, nil
}

// Settings returns the settings the service was built with.
func (s *Service) Settings() Settings {
	return s.settings
}

// Convert converts expr using the service settings.
func (s *Service) Convert(expr string, loc *time.Location) (string, error) {
	return ToHumanReadable(expr, s.settings, loc)
}
