package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"paperdesk/internal/db"
	"paperdesk/internal/draft"
	"paperdesk/internal/search"
	"paperdesk/internal/state"
)

type testApp struct {
	router    *chi.Mux
	workspace *state.Store
	cookies   []*http.Cookie
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	workspace := state.NewStore(database)
	searcher := search.NewService(search.MockSource{}, nil, 5)
	gen := draft.NewGenerator(nil, "")

	r := chi.NewRouter()
	RegisterRoutes(r, workspace, searcher, gen)
	return &testApp{router: r, workspace: workspace}
}

// do performs a request, carrying the session cookie across calls.
func (a *testApp) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	if len(a.cookies) == 0 {
		a.cookies = rec.Result().Cookies()
	}
	return rec
}

func TestTopicViewRenders(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Research Topic") {
		t.Error("topic view missing heading")
	}
}

func TestSetTopicRequiresValue(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodPost, "/topic", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSetTopicRedirectsToSearch(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodPost, "/topic", url.Values{"topic": {"swarm robotics"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/search" {
		t.Errorf("Location = %q", loc)
	}

	view := app.do(t, http.MethodGet, "/", nil)
	if !strings.Contains(view.Body.String(), "swarm robotics") {
		t.Error("stored topic not shown on topic view")
	}
}

func TestSearchViewRunsQuery(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodGet, "/search?q=swarm+robotics", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Swarm Robotics") {
		t.Error("results table missing interpolated titles")
	}
	if !strings.Contains(body, "/api/search/export.csv") {
		t.Error("export links missing")
	}
}

func TestOutlineRequiresTopic(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodPost, "/draft/outline", url.Values{"paper_type": {"review"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSetTitleRequiresValue(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodPost, "/draft/title", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDraftFlow(t *testing.T) {
	app := setupApp(t)

	app.do(t, http.MethodPost, "/topic", url.Values{"topic": {"swarm robotics"}})
	app.do(t, http.MethodPost, "/draft/title", url.Values{"title": {"Swarms in Review"}})

	// Paper generation before an outline exists is rejected.
	if rec := app.do(t, http.MethodPost, "/draft/paper", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("paper without outline: status = %d, want 400", rec.Code)
	}

	if rec := app.do(t, http.MethodPost, "/draft/outline", url.Values{"paper_type": {"review"}}); rec.Code != http.StatusSeeOther {
		t.Fatalf("outline: status = %d", rec.Code)
	}

	view := app.do(t, http.MethodGet, "/draft", nil)
	body := view.Body.String()
	if !strings.Contains(body, "<h2>Findings</h2>") {
		t.Error("rendered outline missing Findings heading")
	}

	if rec := app.do(t, http.MethodPost, "/draft/paper", nil); rec.Code != http.StatusSeeOther {
		t.Fatalf("paper: status = %d", rec.Code)
	}

	view = app.do(t, http.MethodGet, "/draft", nil)
	body = view.Body.String()
	if !strings.Contains(body, "LaTeX Source") {
		t.Error("draft view missing LaTeX source after generation")
	}
	if strings.Contains(body, "LaTeX Preview") {
		t.Error("preview shown before compiling")
	}
	for _, heading := range []string{"<h3>Introduction</h3>", "<h3>Methods</h3>", "<h3>Conclusion</h3>"} {
		if !strings.Contains(body, heading) {
			t.Errorf("draft view missing section heading %s", heading)
		}
	}

	if rec := app.do(t, http.MethodPost, "/draft/compile", nil); rec.Code != http.StatusSeeOther {
		t.Fatalf("compile: status = %d", rec.Code)
	}

	view = app.do(t, http.MethodGet, "/draft", nil)
	body = view.Body.String()
	if !strings.Contains(body, "LaTeX Preview") {
		t.Error("draft view missing LaTeX preview after compile")
	}
	if !strings.Contains(body, `class="paper-title"`) {
		t.Error("LaTeX preview missing rendered title")
	}
}

func TestCompileRequiresDocument(t *testing.T) {
	app := setupApp(t)
	rec := app.do(t, http.MethodPost, "/draft/compile", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSuggestTitlesRendersSuggestions(t *testing.T) {
	app := setupApp(t)
	app.do(t, http.MethodPost, "/topic", url.Values{"topic": {"swarm robotics"}})

	rec := app.do(t, http.MethodPost, "/draft/suggest", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "A Systematic Review of swarm robotics") {
		t.Error("suggestions not rendered")
	}
}

func TestSectionViewsMalformedJSON(t *testing.T) {
	if views := sectionViews("{not json", "[]"); views != nil {
		t.Errorf("malformed sections produced %d views", len(views))
	}
	if views := sectionViews("", ""); views != nil {
		t.Error("empty sections produced views")
	}
}

func TestBuildDraftViewDefaults(t *testing.T) {
	app := setupApp(t)
	view, err := (&Handler{workspace: app.workspace}).buildDraftView(context.Background(), "fresh-session")
	if err != nil {
		t.Fatalf("buildDraftView: %v", err)
	}
	if view.PaperType != "standard" {
		t.Errorf("default paper type = %q", view.PaperType)
	}
	if view.Topic != "" || view.OutlineHTML != "" {
		t.Error("fresh session view not empty")
	}
}
