package slot

// Slot is a fixed daily time interval from the static catalog. Times are
// local time-of-day strings ("06:00"), not timestamps: the same slot exists
// on every date.
type Slot struct {
	ID        int    `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Defaults is the canonical catalog, inserted once into an empty slots table.
var Defaults = []Slot{
	{StartTime: "06:00", EndTime: "07:00"},
	{StartTime: "07:00", EndTime: "08:00"},
	{StartTime: "08:00", EndTime: "09:00"},
	{StartTime: "09:00", EndTime: "10:00"},
	{StartTime: "17:00", EndTime: "18:00"},
	{StartTime: "18:00", EndTime: "19:00"},
	{StartTime: "19:00", EndTime: "20:00"},
}
