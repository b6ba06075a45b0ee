package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

func TestDashboardHandlerSuccess(t *testing.T) {
	mockClients := new(MockClientRepository)
	mockLeads := new(MockLeadRepository)

	client := &entity.Client{
		ID:           "client-1",
		BusinessName: "Reyes Roofing",
		Plan:         "starter",
		PlanPrice:    500,
		Status:       entity.ClientStatusActive,
	}
	leads := []*entity.Lead{
		{ID: "l1", Status: entity.LeadStatusBooked, CreatedAt: time.Now()},
		{ID: "l2", Status: entity.LeadStatusNew, CreatedAt: time.Now()},
	}

	mockClients.On("FindByToken", mock.Anything, "tok-123").Return(client, nil)
	mockLeads.On("ListByClient", mock.Anything, "client-1").Return(leads, nil)

	h := NewDashboardHandler(usecase.NewDashboardUseCase(mockClients, mockLeads))

	r := chi.NewRouter()
	r.Get("/api/dashboard/{token}", h.Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/tok-123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.DashboardOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Reyes Roofing", out.Client.BusinessName)
	assert.Equal(t, 2, out.Stats.TotalLeads)
	assert.Equal(t, "50.0", out.Stats.CloseRate)
	assert.Len(t, out.Weekly, 4)
}

func TestDashboardHandlerUnknownToken(t *testing.T) {
	mockClients := new(MockClientRepository)
	mockClients.On("FindByToken", mock.Anything, "nope").Return(nil, entity.ErrClientNotFound)

	h := NewDashboardHandler(usecase.NewDashboardUseCase(mockClients, new(MockLeadRepository)))

	r := chi.NewRouter()
	r.Get("/api/dashboard/{token}", h.Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
