package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leadpilot/leadpilot/internal/entity"
)

// The real landing pages live on the marketing site; this renders a minimal
// functional page so ad traffic hitting the API host still converts.
var quoteTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<form method="POST" action="/api/leads">
  <input type="hidden" name="capture_page" value="{{.Slug}}">
  <input name="name" placeholder="Your name" required>
  <input name="phone" placeholder="Phone number" required>
  <input name="service" placeholder="What do you need done?">
  <button type="submit">Get my free quote</button>
</form>
</body>
</html>`))

type QuoteHandler struct {
	Pages   entity.CapturePageRepositoryInterface
	BaseURL string
}

func NewQuoteHandler(pages entity.CapturePageRepositoryInterface, baseURL string) *QuoteHandler {
	return &QuoteHandler{Pages: pages, BaseURL: baseURL}
}

// GET /quote/{slug}
func (h *QuoteHandler) HandleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(chi.URLParam(r, "slug"))

	// A direct slug link that matches nothing is a 404; only the
	// industry/city route falls back to the main site.
	page, err := h.Pages.FindBySlug(r.Context(), slug)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	h.render(w, r, page)
}

// GET /quote/{industry}/{city}
func (h *QuoteHandler) HandleByIndustryCity(w http.ResponseWriter, r *http.Request) {
	industry := strings.ToLower(chi.URLParam(r, "industry"))
	city := strings.ToLower(chi.URLParam(r, "city"))

	page, err := h.Pages.FindByIndustryCity(r.Context(), industry, city)
	if errors.Is(err, entity.ErrPageNotFound) {
		http.Redirect(w, r, h.BaseURL, http.StatusFound)
		return
	}
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	h.render(w, r, page)
}

// POST /api/capture-pages/{slug}/view
func (h *QuoteHandler) HandleCountView(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(chi.URLParam(r, "slug"))

	if err := h.Pages.IncrementViews(r.Context(), slug); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *QuoteHandler) render(w http.ResponseWriter, r *http.Request, page *entity.CapturePage) {
	// A failed counter bump should not cost us the page view.
	if err := h.Pages.IncrementViews(r.Context(), page.Slug); err != nil {
		log.Printf("warning: view counter for %s failed: %v", page.Slug, err)
	}

	title := page.Title
	if title == "" {
		title = "Get a free quote"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	quoteTemplate.Execute(w, map[string]string{
		"Title": title,
		"Slug":  page.Slug,
	})
}
