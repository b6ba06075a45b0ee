package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leadpilot/leadpilot/internal/usecase"
)

func TestSubscribeHandlerSuccess(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	mockSubs.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishEmail", mock.Anything, mock.Anything).Return(nil)

	h := NewSubscribeHandler(usecase.NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com"))

	body := `{"email": "new@example.com", "source": "landing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestSubscribeHandlerInvalidEmail(t *testing.T) {
	h := NewSubscribeHandler(usecase.NewSubscribeUseCase(new(MockSubscriberRepository), new(MockEmailQueue), "ops@example.com"))

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", bytes.NewBufferString(`{"email": "bad"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeHandlerBadJSON(t *testing.T) {
	h := NewSubscribeHandler(usecase.NewSubscribeUseCase(new(MockSubscriberRepository), new(MockEmailQueue), "ops@example.com"))

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", bytes.NewBufferString("<xml>"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
