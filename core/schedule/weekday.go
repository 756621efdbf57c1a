package schedule

import (
	"strings"
	"time"
)

// weekdays maps lowered full English day names to time.Weekday.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a full English day name, case-insensitively.
func ParseWeekday(text string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return 0, &ParseError{Text: text, Reason: "unknown weekday"}
	}
	return day, nil
}

// DaySet is a set of weekdays, one bit per time.Weekday.
// The zero value is the empty set.
type DaySet uint8

func NewDaySet(days ...time.Weekday) DaySet {
	var set DaySet
	for _, day := range days {
		set |= 1 << uint(day)
	}
	return set
}

// ParseDays parses a list of day names into a DaySet; duplicates collapse.
func ParseDays(texts []string) (DaySet, error) {
	var set DaySet
	for _, text := range texts {
		day, err := ParseWeekday(text)
		if err != nil {
			return 0, err
		}
		set |= 1 << uint(day)
	}
	return set, nil
}

func (s DaySet) Has(day time.Weekday) bool { return s&(1<<uint(day)) != 0 }
func (s DaySet) IsEmpty() bool             { return s == 0 }

// Overlaps reports whether both sets share at least one weekday.
// Either set being empty yields false.
func (s DaySet) Overlaps(other DaySet) bool { return s&other != 0 }

// Days returns the member weekdays in Sunday..Saturday order.
func (s DaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if s.Has(day) {
			days = append(days, day)
		}
	}
	return days
}

func (s DaySet) String() string {
	names := make([]string, 0, 7)
	for _, day := range s.Days() {
		names = append(names, day.String())
	}
	return strings.Join(names, ", ")
}
