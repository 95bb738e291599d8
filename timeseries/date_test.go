package timeseries

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025/01/15", Date{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if (err != nil) != tc.err {
				t.Fatalf("ParseDate(%q) error = %v, want err=%v", tc.input, err, tc.err)
			}
			if !tc.err && got != tc.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Overflowing days normalize into the next month.
	got := NewDate(2024, time.January, 32)
	if want := NewDate(2024, time.February, 1); got != want {
		t.Errorf("NewDate(2024, 1, 32) = %v, want %v", got, want)
	}
	if got := NewDate(2024, time.February, 28).Add(1); got != NewDate(2024, time.February, 29) {
		t.Errorf("Add(1) over a leap day = %v", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := NewDate(2024, time.March, 1), NewDate(2024, time.March, 2)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.February, 13)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-02-13"` {
		t.Errorf("Marshal = %s, want \"2024-02-13\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date is not IsZero()")
	}
	if Today().IsZero() {
		t.Error("Today() reports IsZero()")
	}
}
