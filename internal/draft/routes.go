package draft

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paperdesk/internal/state"
)

// RegisterRoutes mounts the draft pipeline API routes.
func RegisterRoutes(r chi.Router, gen *Generator, store *Store) {
	r.Route("/api/draft", func(r chi.Router) {
		r.Post("/titles", handleTitles(gen))
		r.Post("/outline", handleOutline(gen))
		r.Post("/generate-paper", handleGeneratePaper(gen))
		r.Post("/format-latex", handleFormatLaTeX(store))
		r.Post("/refine-section", handleRefineSection(gen))
		r.Get("/history", handleHistory(store))
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

type titlesRequest struct {
	Topic string `json:"topic"`
}

func handleTitles(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req titlesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Topic == "" {
			writeError(w, http.StatusBadRequest, "topic is required")
			return
		}

		titles := gen.SuggestTitles(r.Context(), req.Topic)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "titles": titles})
	}
}

type outlineRequest struct {
	Topic     string `json:"topic"`
	PaperType string `json:"paper_type"`
}

func handleOutline(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req outlineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Topic == "" {
			writeError(w, http.StatusBadRequest, "topic is required")
			return
		}

		outline := gen.GenerateOutline(r.Context(), req.Topic, PaperType(req.PaperType))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "outline": outline})
	}
}

type generatePaperRequest struct {
	Topic      string           `json:"topic"`
	PaperType  string           `json:"paper_type"`
	Literature []LiteratureItem `json:"literature"`
}

func handleGeneratePaper(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generatePaperRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Topic == "" {
			writeError(w, http.StatusBadRequest, "topic is required")
			return
		}

		paper := gen.GeneratePaper(r.Context(), req.Topic, PaperType(req.PaperType), req.Literature, nil)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"paper_type": paper.Type,
			"sections":   paper.Sections,
			"order":      paper.Order,
		})
	}
}

type formatLaTeXRequest struct {
	Topic        string            `json:"topic"`
	Title        string            `json:"title"`
	Author       string            `json:"author"`
	Institution  string            `json:"institution"`
	PaperType    string            `json:"paper_type"`
	TemplateType string            `json:"template_type"`
	Sections     map[string]string `json:"sections"`
	Order        []string          `json:"order"`
	Literature   []LiteratureItem  `json:"literature"`
}

func handleFormatLaTeX(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req formatLaTeXRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Sections) == 0 {
			writeError(w, http.StatusBadRequest, "sections are required")
			return
		}
		if len(req.Order) == 0 {
			for section := range req.Sections {
				req.Order = append(req.Order, section)
			}
		}

		paper := &Paper{
			Type:     PaperType(req.PaperType),
			Topic:    req.Topic,
			Sections: req.Sections,
			Order:    req.Order,
		}
		meta := Metadata{
			Title:        req.Title,
			Authors:      req.Author,
			Institution:  req.Institution,
			TemplateType: req.TemplateType,
		}

		formatter := NewFormatter(req.TemplateType)
		latex := formatter.CompleteDocument(paper, meta, req.Literature)
		bibliography := formatter.Bibliography()

		session := state.SessionID(w, r)
		if _, err := store.Save(r.Context(), Record{
			SessionID: session,
			Topic:     req.Topic,
			Title:     req.Title,
			PaperType: string(paper.Type),
			LaTeX:     latex,
		}); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"latex":        latex,
			"bibliography": bibliography,
		})
	}
}

type refineSectionRequest struct {
	Text     string `json:"text"`
	Feedback string `json:"feedback"`
}

func handleRefineSection(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refineSectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		if req.Feedback == "" {
			writeError(w, http.StatusBadRequest, "feedback is required")
			return
		}

		refined := gen.RefineSection(r.Context(), req.Text, req.Feedback)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"original": req.Text,
			"refined":  refined,
		})
	}
}

func handleHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := state.SessionID(w, r)
		records, err := store.List(r.Context(), session, 20)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if records == nil {
			records = []Record{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "drafts": records})
	}
}
