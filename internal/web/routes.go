// Package web serves the three server-rendered views: topic capture,
// literature search and the drafting workspace. View models are built
// from the state store alone so they stay testable without a browser.
package web

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paperdesk/internal/draft"
	"paperdesk/internal/markup"
	"paperdesk/internal/search"
	"paperdesk/internal/state"
)

var (
	topicTmpl  = template.Must(template.New("topic").Parse(pageHeader + topicBody + pageFooter))
	searchTmpl = template.Must(template.New("search").Parse(pageHeader + searchBody + pageFooter))
	draftTmpl  = template.Must(template.New("draft").Parse(pageHeader + draftBody + pageFooter))
)

// Handler bundles the dependencies of the HTML views.
type Handler struct {
	workspace *state.Store
	searcher  *search.Service
	gen       *draft.Generator
}

// RegisterRoutes mounts the HTML views.
func RegisterRoutes(r chi.Router, workspace *state.Store, searcher *search.Service, gen *draft.Generator) {
	h := &Handler{workspace: workspace, searcher: searcher, gen: gen}

	r.Get("/", h.topicView)
	r.Post("/topic", h.setTopic)
	r.Get("/search", h.searchView)
	r.Get("/draft", h.draftView)
	r.Post("/draft/suggest", h.suggestTitles)
	r.Post("/draft/title", h.setTitle)
	r.Post("/draft/outline", h.generateOutline)
	r.Post("/draft/paper", h.generatePaper)
	r.Post("/draft/compile", h.compilePaper)
}

type topicViewModel struct {
	Topic string
}

func (h *Handler) topicView(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	topic, err := h.workspace.Topic(r.Context(), session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render(w, topicTmpl, topicViewModel{Topic: topic})
}

func (h *Handler) setTopic(w http.ResponseWriter, r *http.Request) {
	topic := r.FormValue("topic")
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	session := state.SessionID(w, r)
	if err := h.workspace.SetTopic(r.Context(), session, topic); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

type searchViewModel struct {
	Topic   string
	Query   string
	Results []search.Result
}

func (h *Handler) searchView(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	ctx := r.Context()

	topic, err := h.workspace.Topic(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := searchViewModel{Topic: topic, Query: r.URL.Query().Get("q")}
	if view.Query != "" {
		results, err := h.searcher.Search(ctx, session, view.Query)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		view.Results = results
	} else {
		view.Results = h.searcher.LastResults(session)
	}

	render(w, searchTmpl, view)
}

type sectionViewModel struct {
	Heading string
	HTML    template.HTML
}

type draftViewModel struct {
	Topic       string
	Title       string
	PaperType   string
	Suggestions []string
	OutlineHTML template.HTML
	Sections    []sectionViewModel
	LaTeX       string
	Compiled    bool
	PreviewHTML template.HTML
}

// buildDraftView assembles the drafting view model from stored state.
func (h *Handler) buildDraftView(ctx context.Context, session string) (draftViewModel, error) {
	values, err := h.workspace.All(ctx, session)
	if err != nil {
		return draftViewModel{}, err
	}

	view := draftViewModel{
		Topic:     values[state.KeyTopic],
		Title:     values[state.KeyTitle],
		PaperType: values[state.KeyPaperType],
	}
	if view.PaperType == "" {
		view.PaperType = "standard"
	}

	if outline := values[state.KeyOutline]; outline != "" {
		view.OutlineHTML = template.HTML(markup.MarkdownToHTML(outline))
	}
	view.LaTeX = values[state.KeyLaTeX]
	view.Compiled = values[state.KeyCompiled] == "true"
	if view.LaTeX != "" && view.Compiled {
		view.PreviewHTML = template.HTML(markup.LaTeXToHTML(view.LaTeX, view.Title))
	}

	view.Sections = sectionViews(values[state.KeySections], values[state.KeyOrder])
	return view, nil
}

// sectionViews decodes the stored section map and order into rendered
// view models. Malformed stored JSON yields no sections.
func sectionViews(sectionsJSON, orderJSON string) []sectionViewModel {
	if sectionsJSON == "" {
		return nil
	}

	var sections map[string]string
	if err := json.Unmarshal([]byte(sectionsJSON), &sections); err != nil {
		log.Printf("web: decoding stored sections: %v", err)
		return nil
	}
	var order []string
	if err := json.Unmarshal([]byte(orderJSON), &order); err != nil || len(order) == 0 {
		order = make([]string, 0, len(sections))
		for name := range sections {
			order = append(order, name)
		}
	}

	views := make([]sectionViewModel, 0, len(order))
	for _, name := range order {
		body, ok := sections[name]
		if !ok {
			continue
		}
		views = append(views, sectionViewModel{
			Heading: draft.SectionDisplayName(name),
			HTML:    renderMarkdown(body),
		})
	}
	return views
}

func (h *Handler) draftView(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	view, err := h.buildDraftView(r.Context(), session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render(w, draftTmpl, view)
}

func (h *Handler) suggestTitles(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	ctx := r.Context()

	view, err := h.buildDraftView(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if view.Topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	view.Suggestions = h.gen.SuggestTitles(ctx, view.Topic)
	render(w, draftTmpl, view)
}

func (h *Handler) setTitle(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	session := state.SessionID(w, r)
	if err := h.workspace.Set(r.Context(), session, state.KeyTitle, title); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/draft", http.StatusSeeOther)
}

func (h *Handler) generateOutline(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	ctx := r.Context()

	topic, err := h.workspace.Topic(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	paperType := r.FormValue("paper_type")
	if paperType == "" {
		paperType = "standard"
	}

	outline := h.gen.GenerateOutline(ctx, topic, draft.PaperType(paperType))
	if err := h.workspace.Set(ctx, session, state.KeyOutline, outline); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.workspace.Set(ctx, session, state.KeyPaperType, paperType); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/draft", http.StatusSeeOther)
}

func (h *Handler) generatePaper(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	ctx := r.Context()

	values, err := h.workspace.All(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	topic := values[state.KeyTopic]
	title := values[state.KeyTitle]
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if values[state.KeyOutline] == "" {
		http.Error(w, "outline is required", http.StatusBadRequest)
		return
	}

	paperType := values[state.KeyPaperType]
	if paperType == "" {
		paperType = "standard"
	}
	literature := literatureFromResults(h.searcher.LastResults(session))

	paper := h.gen.GeneratePaper(ctx, topic, draft.PaperType(paperType), literature, nil)

	formatter := draft.NewFormatter("")
	latex := formatter.CompleteDocument(paper, draft.Metadata{
		Title:       title,
		Authors:     values[state.KeyAuthor],
		Institution: values[state.KeyInstitution],
	}, literature)

	sectionsJSON, _ := json.Marshal(paper.Sections)
	orderJSON, _ := json.Marshal(paper.Order)
	for key, value := range map[string]string{
		state.KeySections: string(sectionsJSON),
		state.KeyOrder:    string(orderJSON),
		state.KeyLaTeX:    latex,
		state.KeyCompiled: "false",
	} {
		if err := h.workspace.Set(ctx, session, key, value); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/draft", http.StatusSeeOther)
}

// compilePaper marks the stored document as compiled so the draft view
// shows the HTML approximation instead of the LaTeX source.
func (h *Handler) compilePaper(w http.ResponseWriter, r *http.Request) {
	session := state.SessionID(w, r)
	ctx := r.Context()

	latex, err := h.workspace.LaTeX(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if latex == "" {
		http.Error(w, "no document to compile", http.StatusBadRequest)
		return
	}

	if err := h.workspace.Set(ctx, session, state.KeyCompiled, "true"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/draft", http.StatusSeeOther)
}

func literatureFromResults(results []search.Result) []draft.LiteratureItem {
	items := make([]draft.LiteratureItem, 0, len(results))
	for _, res := range results {
		items = append(items, draft.LiteratureItem{
			Title:   res.Title,
			Authors: res.Authors,
			Year:    res.Year,
			Venue:   res.Venue,
			Summary: res.Summary,
		})
	}
	return items
}

func render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("web: rendering %s: %v", tmpl.Name(), err)
	}
}
