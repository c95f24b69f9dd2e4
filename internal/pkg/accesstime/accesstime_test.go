package accesstime

import (
	"testing"
	"time"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, sec, 0, time.UTC)
}

func TestIsBlocked(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just before midnight", at(23, 59, 59), true},
		{"midnight", at(0, 0, 0), true},
		{"last blocked second", at(5, 59, 59), true},
		{"window opens", at(6, 0, 0), false},
		{"midday", at(12, 30, 0), false},
		{"last allowed second", at(21, 59, 59), false},
		{"window closes", at(22, 0, 0), true},
		{"late evening", at(22, 0, 1), true},
	}
	for _, c := range cases {
		if got := IsBlocked(c.now); got != c.want {
			t.Errorf("%s: IsBlocked(%v) = %v, want %v", c.name, c.now, got, c.want)
		}
	}
}

func TestUntilNextBlock(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"morning, same-day target", at(6, 0, 0), 16 * time.Hour},
		{"one second before close", at(21, 59, 59), time.Second},
		{"exactly at close, next day", at(22, 0, 0), 24 * time.Hour},
		{"after close, next day", at(23, 0, 0), 23 * time.Hour},
		{"past midnight", at(1, 0, 0), 21 * time.Hour},
	}
	for _, c := range cases {
		if got := UntilNextBlock(c.now); got != c.want {
			t.Errorf("%s: UntilNextBlock(%v) = %v, want %v", c.name, c.now, got, c.want)
		}
	}
}
