package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const version = "1.0.0"

type HealthHandler struct {
	DB            *sql.DB
	RabbitMQ      *amqp091.Connection
	SMTPHost      string
	BillingAPIKey string
	StartTime     time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Timestamp    time.Time         `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, rabbitMQ *amqp091.Connection, smtpHost, billingAPIKey string) *HealthHandler {
	return &HealthHandler{
		DB:            db,
		RabbitMQ:      rabbitMQ,
		SMTPHost:      smtpHost,
		BillingAPIKey: billingAPIKey,
		StartTime:     time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			deps["database"] = "unhealthy: " + err.Error()
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.SMTPHost != "" {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	if h.BillingAPIKey != "" {
		deps["billing"] = "configured"
	} else {
		deps["billing"] = "not configured"
	}

	status := "ok"
	httpStatus := http.StatusOK
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	respondJSON(w, httpStatus, HealthResponse{
		Status:       status,
		Version:      version,
		Timestamp:    time.Now().UTC(),
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
