package schedule

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "12h morning", text: "10:00 AM", want: 600},
		{name: "12h afternoon", text: "3:30 PM", want: 930},
		{name: "12h lowercase marker", text: "2:05 pm", want: 845},
		{name: "12h no space before marker", text: "11:15AM", want: 675},
		{name: "12h midnight", text: "12:00 AM", want: 0},
		{name: "12h noon", text: "12:00 PM", want: 720},
		{name: "24h morning", text: "09:45", want: 585},
		{name: "24h afternoon", text: "14:00", want: 840},
		{name: "24h midnight", text: "00:00", want: 0},
		{name: "24h last minute", text: "23:59", want: 1439},
		{name: "surrounding whitespace", text: "  8:00 AM  ", want: 480},
		{name: "empty", text: "", wantErr: true},
		{name: "free text", text: "tomorrow", wantErr: true},
		{name: "missing colon", text: "1000 AM", wantErr: true},
		{name: "24h hour out of range", text: "25:00", wantErr: true},
		{name: "12h hour out of range", text: "13:00 PM", wantErr: true},
		{name: "12h zero hour", text: "0:30 AM", wantErr: true},
		{name: "minute out of range", text: "10:61", wantErr: true},
		{name: "non-numeric minute", text: "10:xx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*ParseError); !ok {
					t.Errorf("ParseTimeOfDay(%q) error type = %T, want *ParseError", tt.text, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    TimeRange
		wantErr bool
	}{
		{name: "12h range", text: "10:00 AM - 11:00 AM", want: TimeRange{600, 660}},
		{name: "24h range", text: "14:00 - 15:00", want: TimeRange{840, 900}},
		{name: "mixed conventions", text: "11:30 AM - 13:00", want: TimeRange{690, 780}},
		{name: "no space around separator", text: "09:00-10:30", want: TimeRange{540, 630}},
		{name: "wraps midnight", text: "23:00 - 01:00", want: TimeRange{1380, 60}},
		{name: "start only is open-ended", text: "16:00", want: TimeRange{960, EndOfDay}},
		{name: "bad start", text: "soon - 10:00", wantErr: true},
		{name: "bad end", text: "10:00 - late", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeRange(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeRange(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTimeRange(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	if s := TimeOfDay(605).String(); s != "10:05" {
		t.Errorf("String() = %q, want %q", s, "10:05")
	}
	if s := EndOfDay.String(); s != "00:00" {
		t.Errorf("String() = %q, want %q", s, "00:00")
	}
}
