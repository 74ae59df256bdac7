package locale

import "golang.org/x/text/language"

// nameTable holds the display names of one language. Months are indexed
// from January, weekdays from Sunday.
type nameTable struct {
	months      [12]string
	shortMonths [12]string
	weekdays    [7]string
	minWeekdays [7]string
	quarter     string
}

// supported lists the languages with name tables; the matcher picks the
// closest one and falls back to the first.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var tables = []nameTable{
	{
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		weekdays:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		minWeekdays: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		quarter:     "Q",
	},
	{
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		weekdays:    [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		minWeekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		quarter:     "Q",
	},
	{
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		shortMonths: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		weekdays:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		minWeekdays: [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
		quarter:     "T",
	},
	{
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		shortMonths: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		weekdays:    [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		minWeekdays: [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
		quarter:     "T",
	},
}

// Week data by region, after the CLDR supplemental week tables.
var (
	sundayFirst = regionSet(
		"AG", "AS", "BD", "BR", "BS", "BT", "BW", "BZ", "CA", "CO", "DM", "DO",
		"ET", "GT", "GU", "HK", "HN", "ID", "IL", "IN", "JM", "JP", "KE", "KH",
		"KR", "LA", "MH", "MM", "MO", "MT", "MX", "MZ", "NI", "NP", "PA", "PE",
		"PH", "PK", "PR", "PT", "PY", "SA", "SG", "SV", "TH", "TT", "TW", "UM",
		"US", "VE", "VI", "WS", "YE", "ZA", "ZW",
	)
	saturdayFirst = regionSet(
		"AE", "AF", "BH", "DJ", "DZ", "EG", "IQ", "IR", "JO", "KW", "LY", "OM",
		"QA", "SD", "SY",
	)
	fridaySaturdayWeekend = regionSet(
		"AE", "BH", "DZ", "EG", "IL", "IQ", "JO", "KW", "LY", "OM", "QA", "SA",
		"SD", "SY", "YE",
	)
	twelveHour = regionSet(
		"AU", "BD", "CA", "CO", "EG", "IN", "MX", "MY", "NZ", "PH", "PK", "SA",
		"US",
	)
	monthDayYear = regionSet("US", "PH", "PR", "UM", "VI", "AS", "GU")
	yearFirst    = regionSet("CN", "HU", "JP", "KR", "LT", "MN", "SE", "TW")

	rtlScripts = map[string]bool{"ar": true, "he": true, "fa": true, "ur": true}
)

func regionSet(regions ...string) map[string]bool {
	m := make(map[string]bool, len(regions))
	for _, r := range regions {
		m[r] = true
	}
	return m
}
