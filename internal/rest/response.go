package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/quiverapp/quiver/api/internal/model"
)

// maxPayloadBytes caps request bodies accepted by the adapter
const maxPayloadBytes = 1 << 20

// DataResponse wraps a single-object response with optional HATEOAS links
type DataResponse struct {
	Data  interface{}       `json:"data"`
	Links map[string]string `json:"_links,omitempty"`
}

// CollectionResponse wraps a sequence response
type CollectionResponse struct {
	Data  interface{}       `json:"data"`
	Links map[string]string `json:"_links,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a single-object envelope
func WriteData(w http.ResponseWriter, status int, data interface{}, links map[string]string) {
	WriteJSON(w, status, DataResponse{Data: data, Links: links})
}

// WriteCollection writes a sequence envelope
func WriteCollection(w http.ResponseWriter, status int, data interface{}, links map[string]string) {
	WriteJSON(w, status, CollectionResponse{Data: data, Links: links})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteAccepted writes a 202 Accepted response with no body
func WriteAccepted(w http.ResponseWriter) {
	w.WriteHeader(http.StatusAccepted)
}

// readPayload reads the request body up to the payload size cap
func readPayload(w http.ResponseWriter, r *http.Request) ([]byte, *model.ProblemDetails) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		return nil, model.NewBadRequestError("request body unreadable or too large")
	}
	if len(body) == 0 {
		return nil, model.NewBadRequestError("request body is required")
	}
	return body, nil
}
