package calendar

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayCount returns the number of days of the given zero-based month. Months
// outside 0–11 are normalized first, so DayCount(2024, 13) is February 2025.
func DayCount(year, month int) int {
	a := NormalizeAnchor(year, month)
	if a.Month == 1 {
		if IsLeapYear(a.Year) {
			return 29
		}
		return 28
	}
	// 31/30 alternation restarting in August.
	if (a.Month%7)%2 == 0 {
		return 31
	}
	return 30
}
