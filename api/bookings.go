package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gym-slots/booking"
	"gym-slots/metrics"
	"gym-slots/slot"
)

type bookingRequest struct {
	SlotID int    `json:"slot_id"`
	Date   string `json:"date"`
}

func (a *API) parseBookingRequest(w http.ResponseWriter, r *http.Request) (bookingRequest, bool) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if req.SlotID == 0 || req.Date == "" {
		a.Response(w, http.StatusBadRequest, "slot_id and date are required")
		return req, false
	}
	if _, err := time.Parse(booking.DateFormat, req.Date); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return req, false
	}
	return req, true
}

func (a *API) bookSlot(w http.ResponseWriter, r *http.Request) {
	req, ok := a.parseBookingRequest(w, r)
	if !ok {
		return
	}

	bookingAccessor := booking.NewAccessor(a.db, slot.NewAccessor(a.db))
	if _, err := bookingAccessor.Book(r.Context(), identity(r), req.SlotID, req.Date); err != nil {
		if errors.Is(err, booking.ErrAlreadyBooked) {
			metrics.IncBookingConflict()
		}
		a.Error(w, r, err)
		return
	}

	metrics.IncBookingCreated()
	a.Response(w, http.StatusOK, "Slot booked successfully")
}

func (a *API) cancelSlot(w http.ResponseWriter, r *http.Request) {
	req, ok := a.parseBookingRequest(w, r)
	if !ok {
		return
	}

	bookingAccessor := booking.NewAccessor(a.db, slot.NewAccessor(a.db))
	if err := bookingAccessor.Cancel(r.Context(), identity(r), req.SlotID, req.Date); err != nil {
		a.Error(w, r, err)
		return
	}

	metrics.IncBookingCancelled()
	a.Response(w, http.StatusOK, "Slot cancelled successfully")
}

type myBookingsResponse struct {
	Bookings []booking.UserBooking `json:"bookings"`
}

func (a *API) myBookings(w http.ResponseWriter, r *http.Request) {
	bookingAccessor := booking.NewAccessor(a.db, slot.NewAccessor(a.db))
	bookings, err := bookingAccessor.ListForUser(r.Context(), identity(r))
	if err != nil {
		a.Error(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []booking.UserBooking{}
	}

	a.Response(w, http.StatusOK, myBookingsResponse{Bookings: bookings})
}
