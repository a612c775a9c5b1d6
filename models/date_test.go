package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-11-12", NewDate(2025, time.November, 12), false},
		{"2025-01-01", NewDate(2025, time.January, 1), false},
		{"12-11-2025", Date{}, true},
		{"", Date{}, true},
		{"2025-13-40", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.November, 12)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-11-12"` {
		t.Errorf("marshal = %s, want \"2025-11-12\"", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDateUnmarshalAcceptsRFC3339(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-11-12T15:04:05Z"`), &d); err != nil {
		t.Fatalf("unmarshal RFC3339: %v", err)
	}
	if !d.Equal(NewDate(2025, time.November, 12)) {
		t.Errorf("got %s, want 2025-11-12", d)
	}

	if err := json.Unmarshal([]byte(`"no es fecha"`), &d); err == nil {
		t.Error("expected error on garbage input")
	}
}

func TestDateComparisonAndArithmetic(t *testing.T) {
	a := NewDate(2025, time.November, 12)
	b := a.AddDays(1)

	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Errorf("comparison inconsistent for %s and %s", a, b)
	}
	if got := a.AddDays(30); !got.Equal(NewDate(2025, time.December, 12)) {
		t.Errorf("AddDays(30) = %s", got)
	}
	if got := MaxDate(a, b); !got.Equal(b) {
		t.Errorf("MaxDate = %s, want %s", got, b)
	}
	if got := a.Display(); got != "12-11-2025" {
		t.Errorf("Display = %q", got)
	}
	if got := a.Weekday(); got != "Wednesday" {
		t.Errorf("Weekday = %q", got)
	}
}
