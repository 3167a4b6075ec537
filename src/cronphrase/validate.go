package cronphrase

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// parser accepts the canonical five fields plus the @hourly style descriptors.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate checks that expr is a well formed cron or Quartz expression.
// The converter never calls it; callers that want strict input run it first.
func Validate(expr string) error {
	line := strings.TrimSpace(expr)
	if !strings.HasPrefix(line, "@") {
		parts, ok := Normalize(line)
		if !ok {
			return fmt.Errorf("%w: expected 5, 6 or 7 fields, got %d", ErrInvalidExpression, len(strings.Fields(line)))
		}
		line = strings.Join(parts, " ")
	}
	if _, err := parser.Parse(line); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidExpression, err)
	}
	return nil
}
