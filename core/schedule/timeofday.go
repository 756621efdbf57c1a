package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time normalized to minutes since midnight (0..1439).
// EndOfDay (1440) only ever appears as the exclusive end of a range.
type TimeOfDay int

const EndOfDay = TimeOfDay(minutesPerDay)

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour()%24, t.Minute())
}

// ParseError indicates human-entered schedule text that could not be understood.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Text, e.Reason)
}

// ParseTimeOfDay parses a clock time in either of the two conventions found
// in batch records: 12-hour with an AM/PM marker ("10:00 AM") or 24-hour
// ("14:00"). The marker (case-insensitive) selects the 12-hour convention.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	clock := strings.ToUpper(strings.TrimSpace(text))
	if clock == "" {
		return 0, &ParseError{Text: text, Reason: "empty time"}
	}

	var twelveHour, pm bool
	if i := strings.Index(clock, "AM"); i >= 0 {
		twelveHour = true
		clock = strings.TrimSpace(clock[:i] + clock[i+2:])
	} else if i := strings.Index(clock, "PM"); i >= 0 {
		twelveHour, pm = true, true
		clock = strings.TrimSpace(clock[:i] + clock[i+2:])
	}

	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, &ParseError{Text: text, Reason: "missing ':' separator"}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, &ParseError{Text: text, Reason: "non-numeric hour"}
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &ParseError{Text: text, Reason: "non-numeric minute"}
	}
	if minute < 0 || minute > 59 {
		return 0, &ParseError{Text: text, Reason: "minute out of range"}
	}

	if twelveHour {
		if hour < 1 || hour > 12 {
			return 0, &ParseError{Text: text, Reason: "hour out of range"}
		}
		hour %= 12 // 12 AM -> 00:xx, 12 PM -> 12:xx
		if pm {
			hour += 12
		}
	} else if hour < 0 || hour > 23 {
		return 0, &ParseError{Text: text, Reason: "hour out of range"}
	}

	return TimeOfDay(hour*60 + minute), nil
}
