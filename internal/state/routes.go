package state

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the workspace state API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/state", func(r chi.Router) {
		r.Get("/", handleListState(store))
		r.Delete("/", handleClearState(store))
		r.Get("/{key}", handleGetState(store))
		r.Put("/{key}", handleSetState(store))
		r.Delete("/{key}", handleDeleteState(store))
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

func handleListState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionID(w, r)
		values, err := store.All(r.Context(), session)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "values": values})
	}
}

func handleClearState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionID(w, r)
		if err := store.Clear(r.Context(), session); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func handleGetState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionID(w, r)
		key := chi.URLParam(r, "key")
		value, err := store.Get(r.Context(), session, key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "key": key, "value": value})
	}
}

type setStateRequest struct {
	Value string `json:"value"`
}

func handleSetState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionID(w, r)
		key := chi.URLParam(r, "key")

		var req setStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := store.Set(r.Context(), session, key, req.Value); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "key": key})
	}
}

func handleDeleteState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionID(w, r)
		key := chi.URLParam(r, "key")
		if err := store.Delete(r.Context(), session, key); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
