package schedule

import "strings"

// TimeRange is a half-open clock interval [Start, End).
// End <= Start means the range wraps past midnight (e.g. "23:00 - 01:00")
// and is evaluated as the two segments [Start, 24:00) and [00:00, End).
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseTimeRange parses "<start> - <end>". Only the first hyphen is treated
// as the separator. Text without a separator is taken as the start time with
// the rest of the day as the range.
func ParseTimeRange(text string) (TimeRange, error) {
	parts := strings.SplitN(text, "-", 2)

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	if len(parts) == 1 {
		return TimeRange{Start: start, End: EndOfDay}, nil
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) wrapsMidnight() bool { return r.End <= r.Start }

type segment struct {
	start, end TimeOfDay
}

func (r TimeRange) segments() []segment {
	if r.wrapsMidnight() {
		return []segment{{r.Start, EndOfDay}, {0, r.End}}
	}
	return []segment{{r.Start, r.End}}
}

// Overlaps reports whether both ranges share any instant on a common day.
// The intersection test is strict on both ends: back-to-back ranges
// (end == start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	for _, a := range r.segments() {
		for _, b := range other.segments() {
			if a.start < b.end && b.start < a.end {
				return true
			}
		}
	}
	return false
}

// RangesOverlap is the nil-tolerant form of TimeRange.Overlaps: a schedule
// without a comparable time range never yields an overlap (fail-open).
func RangesOverlap(a, b *TimeRange) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Overlaps(*b)
}

func (r TimeRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}
