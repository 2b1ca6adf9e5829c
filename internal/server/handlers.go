package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"itinerary-relay/internal/common/errors"
	"itinerary-relay/internal/common/logger"
	"itinerary-relay/internal/common/observability"
	"itinerary-relay/internal/itinerary"
)

// ItineraryPlanner is the pipeline behind the HTTP surface.
type ItineraryPlanner interface {
	Generate(ctx context.Context, req itinerary.GenerateRequest) (*itinerary.Itinerary, error)
	Customize(ctx context.Context, req itinerary.CustomizeRequest) (*itinerary.Itinerary, error)
}

type Handler struct {
	planner      ItineraryPlanner
	version      string
	maxBodyBytes int64
	log          logger.Logger
	obs          *observability.Observability
}

func NewHandler(planner ItineraryPlanner, version string, maxBodyBytes int64, log logger.Logger, obs *observability.Observability) *Handler {
	return &Handler{
		planner:      planner,
		version:      version,
		maxBodyBytes: maxBodyBytes,
		log:          log,
		obs:          obs,
	}
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.obs.RecordDuration(r.Context(), "generate", time.Since(start))
	}()

	var req itinerary.GenerateRequest
	if !h.decodeBody(w, r, &req) {
		h.obs.RecordRequest(r.Context(), "generate", "400")
		return
	}

	it, err := h.planner.Generate(r.Context(), req)
	if err != nil {
		h.writePlannerError(w, r, "generate", string(errors.ErrCodeGeneration), err)
		return
	}

	h.obs.RecordRequest(r.Context(), "generate", "200")
	writeItinerary(w, it)
}

func (h *Handler) HandleCustomize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.obs.RecordDuration(r.Context(), "customize", time.Since(start))
	}()

	var req itinerary.CustomizeRequest
	if !h.decodeBody(w, r, &req) {
		h.obs.RecordRequest(r.Context(), "customize", "400")
		return
	}

	it, err := h.planner.Customize(r.Context(), req)
	if err != nil {
		h.writePlannerError(w, r, "customize", string(errors.ErrCodeCustomization), err)
		return
	}

	h.obs.RecordRequest(r.Context(), "customize", "200")
	writeItinerary(w, it)
}

// HandleHealth reports liveness. No dependency checks: the relay holds no
// connections worth probing, and a missing credential degrades to mock
// rather than making the service unhealthy.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.WithError(err).Warn("failed to decode request body", map[string]interface{}{
			"path": r.URL.Path,
		})
		writeError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest), "Invalid request body")
		return false
	}
	return true
}

// writePlannerError maps pipeline errors onto the envelope. Validation
// failures are the client's fault (400); everything else is reported under
// the operation's blanket code (500).
func (h *Handler) writePlannerError(w http.ResponseWriter, r *http.Request, operation, fallbackCode string, err error) {
	if errors.CodeOf(err) == errors.ErrCodeInvalidRequest {
		h.obs.RecordRequest(r.Context(), operation, "400")
		writeError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidRequest), errors.MessageOf(err))
		return
	}

	h.log.WithError(err).Error("request failed", map[string]interface{}{
		"operation": operation,
		"code":      string(errors.CodeOf(err)),
	})
	h.obs.RecordRequest(r.Context(), operation, "500")
	writeError(w, http.StatusInternalServerError, fallbackCode, errors.MessageOf(err))
}
