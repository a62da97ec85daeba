package rest

import (
	"encoding/json"
	"net/http"
)

// the archive endpoint serves the latest finished matches only; full paging
// is left to the clients that sync the archive wholesale
const recentResultsLimit = 20

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	results, err := that.results.ListRecent(r.Context(), recentResultsLimit)
	if err != nil {
		that.logger.Error("failed to list match results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(results); err != nil {
		that.logger.Error("failed to encode match results", "error", err)
	}
}
