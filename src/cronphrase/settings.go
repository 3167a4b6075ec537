package cronphrase

import "strings"

// DayNameFormat selects how weekday labels are rendered.
type DayNameFormat string

const (
	FormatShort  DayNameFormat = "short"
	FormatFull   DayNameFormat = "full"
	FormatSingle DayNameFormat = "single"
	FormatCustom DayNameFormat = "custom"
)

// Settings controls the language and day naming of a conversion.
type Settings struct {
	Language          string            `yaml:"language" json:"language"`
	DayNameFormat     DayNameFormat     `yaml:"dayNameFormat" json:"dayNameFormat"`
	CustomDayMappings map[string]string `yaml:"customDayMappings,omitempty" json:"customDayMappings,omitempty"`
}

// DefaultSettings returns English with short day names.
func DefaultSettings() Settings {
	return Settings{
		Language:      "en",
		DayNameFormat: FormatShort,
	}
}

// format resolves the configured day-name format, falling back to short.
func (s Settings) format() DayNameFormat {
	switch f := DayNameFormat(strings.ToLower(string(s.DayNameFormat))); f {
	case FormatFull, FormatSingle, FormatCustom:
		return f
	default:
		return FormatShort
	}
}

// Validate reports a configuration error for settings that can never
// produce a day map.
func (s Settings) Validate() error {
	_, err := DayMapFor(s)
	return err
}
