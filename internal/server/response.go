package server

import (
	"encoding/json"
	"net/http"

	"itinerary-relay/internal/itinerary"
)

// WriteJSONResponse writes v as the JSON body with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeItinerary writes the success envelope wrapping an itinerary.
func writeItinerary(w http.ResponseWriter, it *itinerary.Itinerary) {
	WriteJSONResponse(w, http.StatusOK, itinerary.APIResponse{
		Success: true,
		Data:    &itinerary.ResponseData{Itinerary: it},
	})
}

// writeError writes the failure envelope. The code is what the client
// branches on; the message is what it shows.
func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSONResponse(w, statusCode, itinerary.APIResponse{
		Success: false,
		Error:   &itinerary.ErrorDetail{Message: message, Code: code},
	})
}
