package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	values := map[SelectionMode][]string{
		ModeDate:         {"", "2024-03-15", "0002-01-01"},
		ModeDates:        {"2024-03-01,2024-03-05,2024-04-30"},
		ModeDateRange:    {"2024-03-05", "2024-03-05,2024-03-10"},
		ModeWeek:         {"2020-W53"},
		ModeWeeks:        {"2024-W01,2024-W11"},
		ModeWeekRange:    {"2024-W10,2024-W12"},
		ModeMonth:        {"2024-12"},
		ModeMonths:       {"2023-01,2024-02"},
		ModeMonthRange:   {"2023-11,2024-02"},
		ModeQuarter:      {"2024-Q1"},
		ModeQuarters:     {"2024-Q1,2024-Q4"},
		ModeQuarterRange: {"2023-Q4,2024-Q2"},
		ModeYear:         {"1999"},
		ModeYears:        {"1999,2000,2024"},
		ModeYearRange:    {"2020,2029"},
		ModeTime:         {"00:00", "09:30", "23:59"},
		ModeTimeRange:    {"09:00,17:30"},
		ModeDateTime:     {"", "2024-03-05T14:45", "2024-03-05T00:00"},
	}

	// Every mode is covered.
	assert.Len(t, values, len(Modes()))

	for mode, vs := range values {
		for _, v := range vs {
			s := Decode(NewState(mode, testToday), v)
			assert.Equal(t, v, Encode(s), "mode %s", mode)

			again := Decode(s, Encode(s))
			assert.True(t, again.Equal(s), "mode %s value %q", mode, v)
		}
	}
}

func TestEncode_EmptySelection(t *testing.T) {
	for _, m := range Modes() {
		if m.Behavior().Kind == KindTime {
			continue
		}
		assert.Equal(t, "", Encode(NewState(m, testToday)), "mode %s", m)
	}
	assert.Equal(t, "00:00", Encode(NewState(ModeTime, testToday)))
	assert.Equal(t, "00:00,00:00", Encode(NewState(ModeTimeRange, testToday)))
}

func TestDecode_Lenient(t *testing.T) {
	tests := []struct {
		mode SelectionMode
		in   string
		want string
	}{
		{ModeDates, "garbage, 2024-03-05 ,2024-13-01,,2024-03-01", "2024-03-01,2024-03-05"},
		{ModeDates, "2024-03-05,2024-03-05", "2024-03-05"},
		{ModeDate, "2024-03-20,2024-03-05", "2024-03-20"},
		{ModeDateRange, "2024-03-20,2024-03-05,2024-03-10", "2024-03-05,2024-03-10"},
		{ModeMonths, "2024-03-05,2024-03,2024", "2024-03"},
		{ModeWeek, "2021-W53", ""},
		{ModeTime, "9:30", "09:30"},
		{ModeTime, "25:00", "00:00"},
		{ModeTime, "nonsense,10:15", "10:15"},
		{ModeTimeRange, "08:00", "08:00,00:00"},
		{ModeDateTime, "2024-03-05T9:05", "2024-03-05T09:05"},
		{ModeDateTime, "2024-03-05", "2024-03-05T00:00"},
		{ModeDateTime, "2024-03-05Tlate", "2024-03-05T00:00"},
		{ModeDate, "2024-03-05T10:00", ""},
	}

	for _, tt := range tests {
		got := Encode(Decode(NewState(tt.mode, testToday), tt.in))
		assert.Equal(t, tt.want, got, "mode %s, input %q", tt.mode, tt.in)
	}
}

func TestDecode_ResetsTimes(t *testing.T) {
	s := NewState(ModeTimeRange, testToday)
	s.Time1 = TimeValue{10, 0}
	s.Time2 = TimeValue{11, 0}

	s = Decode(s, "")
	assert.Equal(t, TimeValue{}, s.Time1)
	assert.Equal(t, TimeValue{}, s.Time2)
}
