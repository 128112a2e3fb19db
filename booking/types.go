package booking

import "time"

// Booking assigns one catalog slot to one user for one calendar date.
// Owner is tracked by email, matching the token identity; bookings are not
// foreign-keyed to the users table.
type Booking struct {
	ID          int       `json:"id"`
	SlotID      int       `json:"slot_id"`
	UserEmail   string    `json:"user_email"`
	BookingDate string    `json:"booking_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// SlotAvailability is one catalog slot with its booked flag for a given date.
type SlotAvailability struct {
	ID        int    `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Booked    bool   `json:"booked"`
}

// UserBooking is a ledger row joined with its slot times.
type UserBooking struct {
	BookingID   int    `json:"booking_id"`
	SlotID      int    `json:"slot_id"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// DateFormat is the calendar-date wire format. Dates have no time component.
const DateFormat = "2006-01-02"
