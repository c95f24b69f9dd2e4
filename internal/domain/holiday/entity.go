package holiday

import "time"

// HolidayEntry is one labeled public holiday. The dataset is provisioned
// ahead of time (seeded by migration) and never written at runtime.
type HolidayEntry struct {
	Date  time.Time
	Label string
}

// HolidayResponse is the wire representation used by the calendar endpoint.
type HolidayResponse struct {
	Date  string `json:"fecha"`
	Label string `json:"nombre"`
}

func NewHolidayResponse(e HolidayEntry) HolidayResponse {
	return HolidayResponse{
		Date:  e.Date.Format("2006-01-02"),
		Label: e.Label,
	}
}
