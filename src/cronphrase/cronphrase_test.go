package cronphrase

import (
	"errors"
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"every 5 minutes", "*/5 * * * *", "Every 5 minutes"},
		{"every 2 hours", "0 */2 * * *", "Every 2 hours"},
		{"every 2 hours on weekdays", "0 */2 * * 1,2,3,4,5", "Every 2 hours on Mon, Tue, Wed, Thu and Fri"},
		{"every 2 hours all weekdays listed", "0 */2 * * 0,1,2,3,4,5,6", "Every 2 hours"},
		{"every 2 hours all weekdays shuffled", "0 */2 * * 6,5,4,3,2,1,0,0", "Every 2 hours"},
		{"every day at time", "30 14 * * *", "Every day at 02:30 PM"},
		{"every monday", "15 10 * * 1", "Every Mon at 10:15 AM"},
		{"sunday alias collapses", "0 0 * * 0,7", "Every Sun at 12:00 AM"},
		{"every 27th", "0 4 27 * ?", "Every month on the 27th at 04:00 AM"},
		{"every 6 months on 27th", "0 4 27 */6 ?", "Every 6 months on the 27th at 04:00 AM"},
		{"day and weekday", "0 23 15 * 1", "On 15th and Mon at 11:00 PM"},
		{"quartz 6 fields", "0 15 10 * * ?", "Every day at 10:15 AM"},
		{"quartz 7 fields", "0 0 12 1/1 * ? *", "Every month on the 1st at 12:00 PM"},
		{"step minute with fixed hour", "*/15 9 * * *", "Every day at 09:15 AM"},
		{"unknown weekday token", "0 8 * * MON", "Every Day MON at 08:00 AM"},
		{"extra whitespace", "  */10   *  * * * ", "Every 10 minutes"},
		{"too few fields", "* * *", InvalidExpression},
		{"too many fields", "0 0 0 1 1 ? 2030 x", InvalidExpression},
		{"empty", "", InvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.expr); got != tt.want {
				t.Errorf("Describe(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestToHumanReadableLanguages(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		settings Settings
		want     string
	}{
		{"full day names", "0 23 15 * 1", Settings{Language: "en", DayNameFormat: FormatFull}, "On 15th and Monday at 11:00 PM"},
		{"single letters dedupe", "0 9 * * 2,4", Settings{Language: "en", DayNameFormat: FormatSingle}, "Every T at 09:00 AM"},
		{"unknown format is short", "0 9 * * 3", Settings{Language: "en", DayNameFormat: "medium"}, "Every Wed at 09:00 AM"},
		{"unknown language is english", "*/5 * * * *", Settings{Language: "de"}, "Every 5 minutes"},
		{"empty settings", "30 14 * * *", Settings{}, "Every day at 02:30 PM"},
		{"spanish minutes", "*/5 * * * *", Settings{Language: "es"}, "Cada 5 minutos"},
		{"spanish upper case code", "30 14 * * *", Settings{Language: "ES"}, "Cada día a las 02:30 PM"},
		{"spanish hours on days", "0 */2 * * 1,2", Settings{Language: "es", DayNameFormat: FormatFull}, "Cada 2 horas los Lunes y Martes"},
		{"spanish month day", "0 4 27 * *", Settings{Language: "es"}, "Cada mes el día 27th a las 04:00 AM"},
		{"french weekday", "15 10 * * 1", Settings{Language: "fr"}, "Chaque Lun à 10:15 AM"},
		{"french every n months", "0 4 1 */3 *", Settings{Language: "fr"}, "Tous les 3 mois le 1st à 04:00 AM"},
		{"french day and week", "0 23 15 * 1,5,6", Settings{Language: "fr", DayNameFormat: FormatFull}, "Le 15th et le Lundi, Vendredi et Samedi à 11:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHumanReadable(tt.expr, tt.settings, nil)
			if err != nil {
				t.Fatalf("ToHumanReadable() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToHumanReadable(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestToHumanReadableTimeZone(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{"no zone", nil, "Every day at 04:00 AM"},
		{"utc", time.UTC, "Every day at 04:00 AM"},
		{"utc+1", time.FixedZone("WAT", 60*60), "Every day at 05:00 AM"},
		{"utc-5 crosses midnight", time.FixedZone("EST", -5*60*60), "Every day at 11:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHumanReadable("0 4 * * *", DefaultSettings(), tt.loc)
			if err != nil {
				t.Fatalf("ToHumanReadable() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToHumanReadableCustomDays(t *testing.T) {
	custom := map[string]string{
		"0": "Su", "1": "Mo", "2": "Tu", "3": "We",
		"4": "Th", "5": "Fr", "6": "Sa", "7": "Su",
	}

	t.Run("complete mapping is used", func(t *testing.T) {
		s := Settings{Language: "en", DayNameFormat: FormatCustom, CustomDayMappings: custom}
		got, err := ToHumanReadable("0 9 * * 1,3", s, nil)
		if err != nil {
			t.Fatalf("ToHumanReadable() error = %v", err)
		}
		if want := "Every Mo and We at 09:00 AM"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("missing key fails", func(t *testing.T) {
		partial := make(map[string]string)
		for k, v := range custom {
			if k != "7" {
				partial[k] = v
			}
		}
		s := Settings{DayNameFormat: FormatCustom, CustomDayMappings: partial}
		_, err := ToHumanReadable("0 9 * * 1", s, nil)
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("error = %v, want ErrInvalidSettings", err)
		}
	})

	t.Run("invalid settings fail even for malformed input", func(t *testing.T) {
		s := Settings{DayNameFormat: FormatCustom}
		if _, err := ToHumanReadable("* *", s, nil); err == nil {
			t.Fatal("expected configuration error")
		}
	})
}

func TestService(t *testing.T) {
	svc, err := NewService(Settings{Language: "fr", DayNameFormat: FormatShort})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	got, err := svc.Convert("0 0 * * *", nil)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := "Chaque jour à 12:00 AM"; got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
	if svc.Settings().Language != "fr" {
		t.Errorf("Settings().Language = %q", svc.Settings().Language)
	}

	if _, err := NewService(Settings{DayNameFormat: "Custom"}); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewService(custom without mappings) error = %v, want ErrInvalidSettings", err)
	}
}
