package apistub

import (
	"encoding/json"
	"net/http"

	"github.com/alexivanou/citynews/internal/stats"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler handles HTTP requests against the fixture store
type Handler struct {
	store     *Store
	collector *stats.Collector
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(store *Store, collector *stats.Collector, logger *zap.Logger) *Handler {
	return &Handler{store: store, collector: collector, logger: logger}
}

// SuggestCities handles GET /api/cities?query=
func (h *Handler) SuggestCities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	h.collector.RecordSuccess("cities_suggest")
	h.writeJSON(w, h.store.Suggestions(query))
}

// GetCityInfo handles GET /api/cities/{city}/{state}
func (h *Handler) GetCityInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	info, ok := h.store.CityInfo(vars["city"], vars["state"])
	if !ok {
		h.collector.RecordFailure("cities_info")
		http.Error(w, "city not found", http.StatusNotFound)
		return
	}

	h.collector.RecordSuccess("cities_info")
	h.writeJSON(w, info)
}

// GetCityNews handles GET /api/news/{city}/{state}
func (h *Handler) GetCityNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	articles, ok := h.store.News(vars["city"], vars["state"])
	if !ok {
		h.collector.RecordFailure("news_city")
		http.Error(w, "city not found", http.StatusNotFound)
		return
	}

	h.collector.RecordSuccess("news_city")
	h.writeJSON(w, articles)
}

// GetGlobalNews handles GET /api/news/global
func (h *Handler) GetGlobalNews(w http.ResponseWriter, r *http.Request) {
	h.collector.RecordSuccess("news_global")
	h.writeJSON(w, h.store.GlobalNews())
}

// GetStats handles GET /api/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.collector.Collect())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
