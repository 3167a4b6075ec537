package cronphrase

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidExpression is returned in place of a phrase when the expression does
// not normalize to five fields.
const InvalidExpression = "Invalid cron expression"

var (
	// ErrInvalidSettings is wrapped by every configuration error.
	ErrInvalidSettings = errors.New("invalid cron settings")
	// ErrInvalidExpression is wrapped by Validate failures.
	ErrInvalidExpression = errors.New("invalid cron expression")
)

// SettingsError describes a custom day mapping that is missing keys.
type SettingsError struct {
	Missing []string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("CustomDayMappings is missing keys: %s", strings.Join(e.Missing, ", "))
}

func (e *SettingsError) Unwrap() error {
	return ErrInvalidSettings
}
