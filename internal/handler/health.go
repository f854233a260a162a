package handler

import (
	"net/http"

	"github.com/quiverapp/quiver/api/internal/rest"
)

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
