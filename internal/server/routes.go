package server

import "net/http"

// SetupRoutes registers the relay's endpoints on mux.
func SetupRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/itinerary/generate", h.HandleGenerate)
	mux.HandleFunc("POST /api/itinerary/customize", h.HandleCustomize)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
}
