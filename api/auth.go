package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gym-slots/auth"
	"gym-slots/metrics"
	"gym-slots/user"
)

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var payload user.Registration

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := payload.Validate(); err != nil {
		a.Response(w, http.StatusBadRequest, fmt.Errorf("validate: %w", err).Error())
		return
	}

	userAccessor := user.NewAccessor(a.db)

	if _, err := userAccessor.Register(r.Context(), payload); err != nil {
		a.Error(w, r, err)
		return
	}

	metrics.IncRegistration()
	a.Response(w, http.StatusCreated, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    user.User `json:"user"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userAccessor := user.NewAccessor(a.db)
	u, err := userAccessor.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		a.Error(w, r, err)
		return
	}

	token, err := auth.MakeToken(u.Email, a.secret)
	if err != nil {
		a.Error(w, r, err)
		return
	}

	a.Response(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    *u,
	})
}
