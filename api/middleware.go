package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gym-slots/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// requireAuth is the gate in front of every identity-requiring route. The
// Authorization header carries the token verbatim, no Bearer prefix.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := auth.ParseToken(r.Header.Get("Authorization"), a.secret)
		if err != nil {
			a.Error(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identity returns the authenticated email set by requireAuth.
func identity(r *http.Request) string {
	email, _ := r.Context().Value(identityKey).(string)
	return email
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		a.logger.Info().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (a *API) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				a.logger.Error().Any("panic", v).Str("path", r.URL.Path).Msg("recovered")
				a.Response(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
