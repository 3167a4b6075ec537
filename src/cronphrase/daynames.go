package cronphrase

// DayMap maps a cron weekday index ("0".."7") to a label.
type DayMap map[string]string

// weekdayKeys are the keys every day map must carry; "7" is Sunday again.
var weekdayKeys = []string{"0", "1", "2", "3", "4", "5", "6", "7"}

func newDayMap(sun, mon, tue, wed, thu, fri, sat string) DayMap {
	return DayMap{
		"0": sun, "1": mon, "2": tue, "3": wed,
		"4": thu, "5": fri, "6": sat, "7": sun,
	}
}

// dayTables is read-only after init.
var dayTables = map[Language]map[DayNameFormat]DayMap{
	English: {
		FormatSingle: newDayMap("S", "M", "T", "W", "T", "F", "S"),
		FormatShort:  newDayMap("Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"),
		FormatFull:   newDayMap("Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"),
	},
	Spanish: {
		FormatSingle: newDayMap("D", "L", "M", "X", "J", "V", "S"),
		FormatShort:  newDayMap("Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"),
		FormatFull:   newDayMap("Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"),
	},
	French: {
		FormatSingle: newDayMap("D", "L", "M", "M", "J", "V", "S"),
		FormatShort:  newDayMap("Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"),
		FormatFull:   newDayMap("Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"),
	},
}

// DayMapFor returns the weekday labels for the given settings. A custom
// format must supply every key from "0" to "7"; anything less is a
// configuration error listing the missing keys.
func DayMapFor(s Settings) (DayMap, error) {
	format := s.format()
	if format == FormatCustom {
		if len(s.CustomDayMappings) == 0 {
			return nil, &SettingsError{Missing: append([]string(nil), weekdayKeys...)}
		}
		var missing []string
		for _, k := range weekdayKeys {
			if _, ok := s.CustomDayMappings[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return nil, &SettingsError{Missing: missing}
		}
		return DayMap(s.CustomDayMappings), nil
	}
	return dayTables[ParseLanguage(s.Language)][format], nil
}

// Label returns the label for a weekday token, or "Day <token>" when the
// map has none.
func (m DayMap) Label(token string) string {
	if name, ok := m[token]; ok {
		return name
	}
	return "Day " + token
}
