package util

import (
	"testing"
	"time"
)

func TestFormatISTMillis(t *testing.T) {
	t.Run("expresses a UTC instant in IST", func(t *testing.T) {
		in := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		got := FormatISTMillis(in)
		want := "2024-01-01T05:30:00.000+05:30"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps millisecond precision", func(t *testing.T) {
		in := time.Date(2024, 6, 15, 12, 30, 45, 123_000_000, time.UTC)
		got := FormatISTMillis(in)
		want := "2024-06-15T18:00:45.123+05:30"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("round trips through the layout", func(t *testing.T) {
		got := FormatISTMillis(time.Now())
		if _, err := time.Parse(ISTMillisFormat, got); err != nil {
			t.Errorf("output %q does not parse with its own layout: %v", got, err)
		}
	})
}

func TestNowIST(t *testing.T) {
	now := NowIST()
	_, offset := now.Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("offset %d, want +05:30", offset)
	}
}
