package api

import (
	"net/http"
	"time"

	"gym-slots/booking"
	"gym-slots/slot"
)

func (a *API) getSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		a.Response(w, http.StatusBadRequest, "date query param required (YYYY-MM-DD)")
		return
	}
	if _, err := time.Parse(booking.DateFormat, date); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	bookingAccessor := booking.NewAccessor(a.db, slot.NewAccessor(a.db))
	availability, err := bookingAccessor.Availability(r.Context(), date)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	if availability == nil {
		availability = []booking.SlotAvailability{}
	}

	a.Response(w, http.StatusOK, availability)
}
