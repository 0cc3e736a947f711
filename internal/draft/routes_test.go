package draft

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"paperdesk/internal/db"
)

func setupDraftAPI(t *testing.T) *chi.Mux {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	r := chi.NewRouter()
	RegisterRoutes(r, NewGenerator(nil, ""), NewStore(database))
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTitlesEndpoint(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/titles", `{"topic":"edge computing"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool     `json:"success"`
		Titles  []string `json:"titles"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if len(resp.Titles) != 5 {
		t.Errorf("got %d titles, want 5", len(resp.Titles))
	}
}

func TestTitlesEndpointRequiresTopic(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/titles", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("want success=false with error, got %+v", resp)
	}
}

func TestOutlineEndpoint(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/outline", `{"topic":"edge computing","paper_type":"review"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Outline string `json:"outline"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if !strings.Contains(resp.Outline, "## Findings") {
		t.Errorf("review outline missing Findings section:\n%s", resp.Outline)
	}
}

func TestGeneratePaperEndpoint(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/generate-paper", `{"topic":"edge computing","paper_type":"review"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success  bool              `json:"success"`
		Sections map[string]string `json:"sections"`
		Order    []string          `json:"order"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	want := PaperStructure(TypeReview)
	if len(resp.Order) != len(want) {
		t.Fatalf("order has %d sections, want %d", len(resp.Order), len(want))
	}
	for _, section := range resp.Order {
		if resp.Sections[section] == "" {
			t.Errorf("section %q is empty", section)
		}
	}
}

func TestFormatLaTeXEndpoint(t *testing.T) {
	r := setupDraftAPI(t)
	body := `{
		"topic": "edge computing",
		"title": "Edge Computing at Scale",
		"author": "R. Tester",
		"paper_type": "review",
		"sections": {"abstract": "A summary.", "introduction": "Opening."},
		"order": ["abstract", "introduction"],
		"literature": [{"title": "Deep Nets", "authors": "Jane Smith", "year": "2020", "venue": "NeurIPS"}]
	}`
	rec := postJSON(t, r, "/api/draft/format-latex", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success      bool   `json:"success"`
		LaTeX        string `json:"latex"`
		Bibliography string `json:"bibliography"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	for _, want := range []string{`\title{Edge Computing at Scale}`, `\begin{abstract}`, `\section{Introduction}`} {
		if !strings.Contains(resp.LaTeX, want) {
			t.Errorf("latex missing %q", want)
		}
	}
	if !strings.Contains(resp.Bibliography, "@article{Smith2020,") {
		t.Errorf("bibliography missing entry:\n%s", resp.Bibliography)
	}

	// The formatted draft is saved to the session history.
	hist := httptest.NewRequest(http.MethodGet, "/api/draft/history", nil)
	for _, c := range rec.Result().Cookies() {
		hist.AddCookie(c)
	}
	histRec := httptest.NewRecorder()
	r.ServeHTTP(histRec, hist)

	var histResp struct {
		Success bool     `json:"success"`
		Drafts  []Record `json:"drafts"`
	}
	if err := json.NewDecoder(histRec.Body).Decode(&histResp); err != nil {
		t.Fatalf("decoding history: %v", err)
	}
	if len(histResp.Drafts) != 1 {
		t.Fatalf("history has %d drafts, want 1", len(histResp.Drafts))
	}
	if histResp.Drafts[0].Title != "Edge Computing at Scale" {
		t.Errorf("saved title = %q", histResp.Drafts[0].Title)
	}
}

func TestFormatLaTeXRequiresSections(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/format-latex", `{"title":"No Body"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRefineSectionEndpoint(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/refine-section",
		`{"text":"Original section text.","feedback":"Tighten the prose."}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success  bool   `json:"success"`
		Original string `json:"original"`
		Refined  string `json:"refined"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	// With no provider configured the original text comes back unchanged.
	if resp.Refined != "Original section text." {
		t.Errorf("refined = %q", resp.Refined)
	}
}

func TestRefineSectionRequiresFeedback(t *testing.T) {
	r := setupDraftAPI(t)
	rec := postJSON(t, r, "/api/draft/refine-section", `{"text":"Some text."}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
