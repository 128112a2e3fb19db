package api

import (
	"errors"
	"net/http"

	"gym-slots/auth"
	"gym-slots/booking"
	"gym-slots/user"
)

// Error maps typed domain errors onto the status codes of the API contract.
// The three token failures share a 401 but keep their distinct messages.
// Anything unclassified is a 500 with a generic body.
func (a *API) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, user.ErrDuplicateEmail):
		status, msg = http.StatusBadRequest, "Email already exists"
	case errors.Is(err, user.ErrNotFound):
		status, msg = http.StatusNotFound, "User not found"
	case errors.Is(err, user.ErrInvalidPassword):
		status, msg = http.StatusUnauthorized, "Incorrect password"
	case errors.Is(err, booking.ErrSlotNotFound):
		status, msg = http.StatusNotFound, "Slot not found"
	case errors.Is(err, booking.ErrAlreadyBooked):
		status, msg = http.StatusBadRequest, "Slot already booked for this date"
	case errors.Is(err, booking.ErrNotFound):
		status, msg = http.StatusNotFound, "No booking found"
	case errors.Is(err, auth.ErrTokenMissing):
		status, msg = http.StatusUnauthorized, "Token missing"
	case errors.Is(err, auth.ErrTokenExpired):
		status, msg = http.StatusUnauthorized, "Token expired"
	case errors.Is(err, auth.ErrTokenInvalid):
		status, msg = http.StatusUnauthorized, "Invalid token"
	}

	if status == http.StatusInternalServerError {
		a.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	a.Response(w, status, msg)
}
