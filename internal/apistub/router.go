package apistub

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/alexivanou/citynews/internal/stats"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const sessionCookieName = "session"

// NewRouter creates the HTTP router for the stub server. With requireAuth
// enabled, requests arriving without a session cookie are rejected with
// 401 after the cookie is issued, so the caller's next attempt succeeds.
func NewRouter(store *Store, collector *stats.Collector, requireAuth bool, logger *zap.Logger) *mux.Router {
	handler := NewHandler(store, collector, logger)

	router := mux.NewRouter()
	router.Use(sessionMiddleware(requireAuth))

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cities", handler.SuggestCities).Methods("GET")
	api.HandleFunc("/cities/{city}/{state}", handler.GetCityInfo).Methods("GET")
	api.HandleFunc("/news/global", handler.GetGlobalNews).Methods("GET")
	api.HandleFunc("/news/{city}/{state}", handler.GetCityNews).Methods("GET")
	api.HandleFunc("/stats", handler.GetStats).Methods("GET")

	return router
}

// sessionMiddleware issues a session cookie on first contact and, when
// auth is required, rejects requests made without one.
func sessionMiddleware(requireAuth bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := r.Cookie(sessionCookieName); err != nil {
				http.SetCookie(w, &http.Cookie{
					Name:  sessionCookieName,
					Value: fmt.Sprintf("dev-%08x", rand.Uint32()),
					Path:  "/",
				})
				if requireAuth {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
