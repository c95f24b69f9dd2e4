package attendance

import "time"

// EventType is the kind of mark a user submits against a calendar date.
type EventType string

const (
	EventCheckIn  EventType = "entrada"
	EventCheckOut EventType = "salida"
)

// Valid reports whether e is one of the two accepted event types.
func (e EventType) Valid() bool {
	return e == EventCheckIn || e == EventCheckOut
}

// Category classifies a day's attendance. The numeric values are the
// IDs of the category taxonomy in the database and appear in reports;
// they are stable and must not be renumbered.
type Category int

const (
	CategoryOnTimeIn        Category = 1
	CategoryOnTimeOut       Category = 2
	CategoryEarlyOut        Category = 3
	CategoryLate            Category = 4
	CategoryLateAndEarlyOut Category = 6
)

var categoryNames = map[Category]string{
	CategoryOnTimeIn:        "Entrada Normal",
	CategoryOnTimeOut:       "Salida Normal",
	CategoryEarlyOut:        "Salida Anticipada",
	CategoryLate:            "Atraso",
	CategoryLateAndEarlyOut: "Atraso y Salida Anticipada",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Desconocida"
}

// Work schedule thresholds. A single fixed schedule applies to every
// user: on-time arrival up to 09:30:00 inclusive, on-time departure
// from 17:30:00 inclusive.
const (
	checkInDeadlineSeconds   = 9*3600 + 30*60  // 09:30:00
	checkOutThresholdSeconds = 17*3600 + 30*60 // 17:30:00
)

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// ClassifyEvent maps an event and its wall-clock time to a category.
// Check-ins at or before 09:30:00 are on time, later ones are late.
// Check-outs at or after 17:30:00 are on time, earlier ones leave early.
func ClassifyEvent(event EventType, at time.Time) Category {
	tod := secondsOfDay(at)
	if event == EventCheckIn {
		if tod <= checkInDeadlineSeconds {
			return CategoryOnTimeIn
		}
		return CategoryLate
	}
	if tod >= checkOutThresholdSeconds {
		return CategoryOnTimeOut
	}
	return CategoryEarlyOut
}

// Combine derives the day's final category once a check-out completes
// the record. ClassifyEvent only ever yields OnTimeIn/Late for entries
// and OnTimeOut/EarlyOut for exits, so the four listed pairs are
// exhaustive; the trailing return keeps the function total but is not
// reachable with classifier output.
func Combine(entry, exit Category) Category {
	switch {
	case entry == CategoryOnTimeIn && exit == CategoryOnTimeOut:
		return CategoryOnTimeOut
	case entry == CategoryOnTimeIn && exit == CategoryEarlyOut:
		return CategoryEarlyOut
	case entry == CategoryLate && exit == CategoryOnTimeOut:
		return CategoryLate
	case entry == CategoryLate && exit == CategoryEarlyOut:
		return CategoryLateAndEarlyOut
	}
	return exit
}
