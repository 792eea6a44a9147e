package policy

import (
	"testing"
	"time"
)

func TestCanEditBooking_Cutoff(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dateFrom string
		want     bool
	}{
		{"exactly 24h before check-in", now.Add(24 * time.Hour).Format(time.RFC3339), true},
		{"1ms inside the cutoff", now.Add(24*time.Hour - time.Millisecond).Format(time.RFC3339Nano), false},
		{"well before the cutoff", now.Add(72 * time.Hour).Format(time.RFC3339), true},
		{"check-in already passed", now.Add(-time.Hour).Format(time.RFC3339), false},
		{"check-in right now", now.Format(time.RFC3339), false},
		{"unparseable date", "not-a-date", false},
		{"empty date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEditBooking(tt.dateFrom, now); got != tt.want {
				t.Errorf("CanEditBooking(%q) = %v, want %v", tt.dateFrom, got, tt.want)
			}
		})
	}
}

func TestIsUpcoming_BareDates(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		dateTo string
		want   bool
	}{
		{"far future", "2099-01-01", true},
		{"long past", "2000-01-01", false},
		{"checkout today stays upcoming until end of day", "2024-06-01", true},
		{"checkout yesterday", "2024-05-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpcoming(tt.dateTo, now); got != tt.want {
				t.Errorf("IsUpcoming(%q) = %v, want %v", tt.dateTo, got, tt.want)
			}
			if got := IsPast(tt.dateTo, now); got == tt.want {
				t.Errorf("IsPast(%q) = %v, want %v", tt.dateTo, got, !tt.want)
			}
		})
	}
}

func TestIsUpcoming_EndOfDayBoundary(t *testing.T) {
	endOfDay := time.Date(2024, 6, 1, 23, 59, 59, int(999*time.Millisecond), time.Local)

	if !IsUpcoming("2024-06-01", endOfDay) {
		t.Error("IsUpcoming at 23:59:59.999 = false, want true")
	}
	if IsUpcoming("2024-06-01", endOfDay.Add(time.Millisecond)) {
		t.Error("IsUpcoming just after midnight = true, want false")
	}
}

// A timestamp-bearing dateTo is compared as-is, without end-of-day
// normalization.
func TestIsUpcoming_ExplicitTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if IsUpcoming("2024-06-01T08:00:00Z", now) {
		t.Error("checkout at 08:00 should be past by noon")
	}
	if !IsUpcoming("2024-06-01T18:00:00Z", now) {
		t.Error("checkout at 18:00 should still be upcoming at noon")
	}
}

// The stay window only consults dateTo: a booking whose check-in has
// passed is still upcoming until checkout.
func TestIsUpcoming_StayInProgress(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local)

	if !IsUpcoming("2024-06-07", now) {
		t.Error("stay in progress should bucket as upcoming")
	}
}

func TestIsUpcomingIsPast_Complement(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	dates := []string{
		"2099-01-01",
		"2000-01-01",
		"2024-06-01",
		"2024-06-01T12:00:00Z",
		"2024-06-01T00:00:00Z",
		"garbage",
		"",
	}

	for _, d := range dates {
		if IsUpcoming(d, now) == IsPast(d, now) {
			t.Errorf("IsUpcoming(%q) == IsPast(%q): buckets must be exact complements", d, d)
		}
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", "2024-06-01T10:30:00Z", time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC), false},
		{"bare date is local midnight", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), false},
		{"no zone suffix is local", "2024-06-01T10:30:00", time.Date(2024, 6, 1, 10, 30, 0, 0, time.Local), false},
		{"garbage", "tomorrow", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInstant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
