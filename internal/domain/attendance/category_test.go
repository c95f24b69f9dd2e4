package attendance

import (
	"testing"
	"time"
)

func tod(hour, min, sec int) time.Time {
	return time.Date(2025, time.June, 2, hour, min, sec, 0, time.UTC)
}

func TestClassifyEvent_CheckIn(t *testing.T) {
	cases := []struct {
		at   time.Time
		want Category
	}{
		{tod(7, 0, 0), CategoryOnTimeIn},
		{tod(9, 29, 59), CategoryOnTimeIn},
		{tod(9, 30, 0), CategoryOnTimeIn}, // deadline is inclusive
		{tod(9, 30, 1), CategoryLate},
		{tod(12, 0, 0), CategoryLate},
	}
	for _, c := range cases {
		if got := ClassifyEvent(EventCheckIn, c.at); got != c.want {
			t.Errorf("ClassifyEvent(entrada, %s) = %v, want %v", c.at.Format("15:04:05"), got, c.want)
		}
	}
}

func TestClassifyEvent_CheckOut(t *testing.T) {
	cases := []struct {
		at   time.Time
		want Category
	}{
		{tod(17, 29, 59), CategoryEarlyOut},
		{tod(17, 30, 0), CategoryOnTimeOut}, // threshold is inclusive
		{tod(17, 30, 1), CategoryOnTimeOut},
		{tod(20, 0, 0), CategoryOnTimeOut},
		{tod(13, 0, 0), CategoryEarlyOut},
	}
	for _, c := range cases {
		if got := ClassifyEvent(EventCheckOut, c.at); got != c.want {
			t.Errorf("ClassifyEvent(salida, %s) = %v, want %v", c.at.Format("15:04:05"), got, c.want)
		}
	}
}

func TestCombine(t *testing.T) {
	cases := []struct {
		entry, exit, want Category
	}{
		{CategoryOnTimeIn, CategoryOnTimeOut, CategoryOnTimeOut},
		{CategoryOnTimeIn, CategoryEarlyOut, CategoryEarlyOut},
		{CategoryLate, CategoryOnTimeOut, CategoryLate},
		{CategoryLate, CategoryEarlyOut, CategoryLateAndEarlyOut},
	}
	for _, c := range cases {
		if got := Combine(c.entry, c.exit); got != c.want {
			t.Errorf("Combine(%v, %v) = %v, want %v", c.entry, c.exit, got, c.want)
		}
	}
}

func TestEventTypeValid(t *testing.T) {
	if !EventType("entrada").Valid() || !EventType("salida").Valid() {
		t.Error("expected entrada and salida to be valid event types")
	}
	if EventType("").Valid() || EventType("pausa").Valid() {
		t.Error("expected unknown event types to be invalid")
	}
}
