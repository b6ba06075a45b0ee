package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

type AdminHandler struct {
	Overview     *usecase.OverviewUseCase
	CreateClient *usecase.CreateClientUseCase
	CreatePage   *usecase.CreateCapturePageUseCase
	WeeklyReport *usecase.WeeklyReportUseCase

	Trials      entity.TrialRepositoryInterface
	Subscribers entity.SubscriberRepositoryInterface
	Leads       entity.LeadRepositoryInterface
	Clients     entity.ClientRepositoryInterface
	EmailLog    entity.EmailLogRepositoryInterface
	Activities  entity.LeadActivityRepositoryInterface
}

func NewAdminHandler(
	overview *usecase.OverviewUseCase,
	createClient *usecase.CreateClientUseCase,
	createPage *usecase.CreateCapturePageUseCase,
	weeklyReport *usecase.WeeklyReportUseCase,
	trials entity.TrialRepositoryInterface,
	subscribers entity.SubscriberRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	clients entity.ClientRepositoryInterface,
	emailLog entity.EmailLogRepositoryInterface,
	activities entity.LeadActivityRepositoryInterface,
) *AdminHandler {
	return &AdminHandler{
		Overview:     overview,
		CreateClient: createClient,
		CreatePage:   createPage,
		WeeklyReport: weeklyReport,
		Trials:       trials,
		Subscribers:  subscribers,
		Leads:        leads,
		Clients:      clients,
		EmailLog:     emailLog,
		Activities:   activities,
	}
}

// GET /api/admin/overview
func (h *AdminHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.Overview.Execute(r.Context())
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// GET /api/admin/trials
func (h *AdminHandler) HandleListTrials(w http.ResponseWriter, r *http.Request) {
	trials, err := h.Trials.List(r.Context())
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"trials": trials, "total": len(trials)})
}

// GET /api/admin/subscribers
func (h *AdminHandler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Subscribers.List(r.Context())
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"subscribers": subs, "total": len(subs)})
}

// GET /api/admin/leads?client_id=&status=&limit=
func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	filter := entity.LeadFilter{
		ClientID: r.URL.Query().Get("client_id"),
		Status:   r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	leads, err := h.Leads.List(r.Context(), filter)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"leads": leads, "total": len(leads)})
}

// GET /api/admin/clients
func (h *AdminHandler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context())
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"clients": clients, "total": len(clients)})
}

// GET /api/admin/emails
func (h *AdminHandler) HandleListEmails(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.EmailLog.List(r.Context(), limit)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"emails": entries, "total": len(entries)})
}

// GET /api/admin/leads/{id}/activity
func (h *AdminHandler) HandleListLeadActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// The audit trail only exists for leads that exist.
	if _, err := h.Leads.FindByID(r.Context(), id); err != nil {
		respondUsecaseError(w, err)
		return
	}

	activity, err := h.Activities.ListByLead(r.Context(), id)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"activity": activity, "total": len(activity)})
}

// POST /api/admin/clients
func (h *AdminHandler) HandleCreateClient(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := h.CreateClient.Execute(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"client": map[string]string{
			"id":             out.ID,
			"dashboardToken": out.DashboardToken,
		},
		"dashboardUrl": out.DashboardURL,
	})
}

// POST /api/admin/capture-pages
func (h *AdminHandler) HandleCreateCapturePage(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCapturePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := h.CreatePage.Execute(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      out.ID,
		"url":     out.URL,
	})
}

// POST /api/admin/clients/{id}/weekly-report
func (h *AdminHandler) HandleSendWeeklyReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.WeeklyReport.Execute(r.Context(), id); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
