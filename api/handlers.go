package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type API struct {
	router *mux.Router
	db     *sql.DB
	secret string
	logger zerolog.Logger
}

func NewAPI(db *sql.DB, secret string, logger zerolog.Logger) *API {
	r := mux.NewRouter()
	r = r.PathPrefix("/api").Subrouter()
	return &API{
		router: r,
		db:     db,
		secret: secret,
		logger: logger,
	}
}

func (a *API) Router() *mux.Router {
	return a.router
}

func (a *API) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return a.logRequests(a.recoverPanics(cors(a.router)))
}

type Response struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{
		Status:   status,
		Response: data,
	})
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (a *API) RegisterRoutes() {
	// register/login are the brute-forceable routes, keep them behind the limiter
	rl := newRateLimiter(5, 10)

	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	a.router.Handle("/register", rl.limit(http.HandlerFunc(a.register))).Methods(http.MethodPost)
	a.router.Handle("/login", rl.limit(http.HandlerFunc(a.login))).Methods(http.MethodPost)
	a.router.HandleFunc("/slots", a.getSlots).Methods(http.MethodGet)

	authed := a.router.NewRoute().Subrouter()
	authed.Use(a.requireAuth)
	authed.HandleFunc("/book-slot", a.bookSlot).Methods(http.MethodPost)
	authed.HandleFunc("/cancel-slot", a.cancelSlot).Methods(http.MethodPost)
	authed.HandleFunc("/my-bookings", a.myBookings).Methods(http.MethodGet)

	a.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		a.Response(w, http.StatusNotFound, "Route not found")
	})
}
