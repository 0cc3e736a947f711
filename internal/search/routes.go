package search

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paperdesk/internal/state"
)

// RegisterRoutes mounts the literature search API routes.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/search", func(r chi.Router) {
		r.Post("/", handleSearch(svc))
		r.Get("/export.csv", handleExportCSV(svc))
		r.Get("/export.json", handleExportJSON(svc))
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

type searchRequest struct {
	Query string `json:"query"`
}

func handleSearch(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Query == "" {
			writeError(w, http.StatusBadRequest, "query is required")
			return
		}

		session := state.SessionID(w, r)
		results, err := svc.Search(r.Context(), session, req.Query)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if results == nil {
			results = []Result{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"results": results,
			"count":   len(results),
		})
	}
}

func handleExportCSV(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := state.SessionID(w, r)
		results := svc.LastResults(session)
		if len(results) == 0 {
			writeError(w, http.StatusNotFound, "no search results to export")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="search-results.csv"`)
		if err := WriteCSV(w, results); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}

func handleExportJSON(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := state.SessionID(w, r)
		results := svc.LastResults(session)
		if len(results) == 0 {
			writeError(w, http.StatusNotFound, "no search results to export")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="search-results.json"`)
		if err := WriteJSON(w, results); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}
