package validation

import "testing"

func TestParseAmount(t *testing.T) {
	tt := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{" 12.5 ", 12.5, true},
		{"0.01", 0.01, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"1.234", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1e30", 0, false},
		{"0.29", 0.29, true},
		{"1e2", 100, true},
		{"15e-4", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
	}

	for _, tc := range tt {
		got, err := ParseAmount(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("[%q] want ok: %v, got err: %v", tc.in, tc.ok, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("[%q] want: %v, got: %v", tc.in, tc.want, got)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Fatalf("want 42, got %d %v", id, err)
	}
	for _, in := range []string{"0", "-1", "x", ""} {
		if _, err := ParseID(in); err == nil {
			t.Fatalf("[%q] want error", in)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	tt := []struct {
		start, end string
		ok         bool
	}{
		{"", "", true},
		{"2023-01-01", "2023-02-01", true},
		{"2023-01-01", "2023-01-01", true},
		{"2023-02-01", "2023-01-01", false},
		{"2023-01-01", "", false},
		{"01/01/2023", "2023-02-01", false},
	}

	for _, tc := range tt {
		if err := ValidateDateRange(tc.start, tc.end); (err == nil) != tc.ok {
			t.Fatalf("[%s..%s] want ok: %v, got err: %v", tc.start, tc.end, tc.ok, err)
		}
	}
}
