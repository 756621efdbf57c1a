package schedule

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    time.Weekday
		wantErr bool
	}{
		{name: "exact", text: "Monday", want: time.Monday},
		{name: "lowercase", text: "friday", want: time.Friday},
		{name: "uppercase", text: "SUNDAY", want: time.Sunday},
		{name: "whitespace", text: " Wednesday ", want: time.Wednesday},
		{name: "abbreviation rejected", text: "Wed", wantErr: true},
		{name: "typo rejected", text: "Wednsday", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDaySet(t *testing.T) {
	set, err := ParseDays([]string{"Monday", "Wednesday", "monday"}) // duplicates collapse
	if err != nil {
		t.Fatalf("ParseDays() failed: %v", err)
	}
	if got := set.Days(); len(got) != 2 || got[0] != time.Monday || got[1] != time.Wednesday {
		t.Errorf("Days() = %v, want [Monday Wednesday]", got)
	}
	if set.String() != "Monday, Wednesday" {
		t.Errorf("String() = %q, want %q", set.String(), "Monday, Wednesday")
	}

	if _, err = ParseDays([]string{"Monday", "Moonday"}); err == nil {
		t.Error("ParseDays() with a bad name did not fail")
	}
}

func TestDaySetOverlaps(t *testing.T) {
	mw := NewDaySet(time.Monday, time.Wednesday)
	tw := NewDaySet(time.Tuesday, time.Wednesday)
	fs := NewDaySet(time.Friday, time.Saturday)

	if !mw.Overlaps(tw) {
		t.Error("Overlaps() = false for sets sharing Wednesday")
	}
	if mw.Overlaps(fs) {
		t.Error("Overlaps() = true for disjoint sets")
	}
	var empty DaySet
	if empty.Overlaps(mw) || mw.Overlaps(empty) || empty.Overlaps(empty) {
		t.Error("Overlaps() = true with an empty set")
	}
}
