package schedule

import "testing"

func mustRange(t *testing.T, text string) TimeRange {
	t.Helper()
	r, err := ParseTimeRange(text)
	if err != nil {
		t.Fatalf("ParseTimeRange(%q) failed: %v", text, err)
	}
	return r
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "plain overlap", a: "10:00 - 11:00", b: "10:30 - 11:30", want: true},
		{name: "containment", a: "09:00 - 17:00", b: "12:00 - 13:00", want: true},
		{name: "identical", a: "10:00 - 11:00", b: "10:00 - 11:00", want: true},
		{name: "disjoint", a: "08:00 - 09:00", b: "10:00 - 11:00", want: false},
		{name: "touching boundary is not overlap", a: "09:00 - 10:00", b: "10:00 - 11:00", want: false},
		{name: "12h and 24h describe the same interval", a: "2:00 PM - 3:00 PM", b: "14:00 - 15:00", want: true},
		{name: "midnight wrap overlaps early morning", a: "23:00 - 01:00", b: "00:30 - 02:00", want: true},
		{name: "midnight wrap overlaps late evening", a: "23:00 - 01:00", b: "22:00 - 23:30", want: true},
		{name: "midnight wrap misses midday", a: "23:00 - 01:00", b: "10:00 - 12:00", want: false},
		{name: "midnight wrap touching boundary", a: "23:00 - 01:00", b: "01:00 - 02:00", want: false},
		{name: "two midnight wraps", a: "23:30 - 00:30", b: "00:00 - 01:00", want: true},
		{name: "open-ended range overlaps evening", a: "16:00", b: "20:00 - 21:00", want: true},
		{name: "open-ended range misses morning", a: "16:00", b: "08:00 - 09:00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustRange(t, tt.a), mustRange(t, tt.b)
			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("Overlaps(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// symmetry
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps(%q, %q) = %v, want %v (asymmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	r := mustRange(t, "10:00 - 11:00")

	if RangesOverlap(nil, &r) {
		t.Error("RangesOverlap(nil, r) = true, want false")
	}
	if RangesOverlap(&r, nil) {
		t.Error("RangesOverlap(r, nil) = true, want false")
	}
	if RangesOverlap(nil, nil) {
		t.Error("RangesOverlap(nil, nil) = true, want false")
	}
	other := mustRange(t, "10:30 - 12:00")
	if !RangesOverlap(&r, &other) {
		t.Error("RangesOverlap(r, other) = false, want true")
	}
}

func TestTimeRangeString(t *testing.T) {
	if s := mustRange(t, "9:00 AM - 2:30 PM").String(); s != "09:00 - 14:30" {
		t.Errorf("String() = %q, want %q", s, "09:00 - 14:30")
	}
}
