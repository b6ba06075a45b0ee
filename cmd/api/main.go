package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leadpilot/leadpilot/internal/config"
	"github.com/leadpilot/leadpilot/internal/infra/database"
	"github.com/leadpilot/leadpilot/internal/infra/http/handlers"
	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal(err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitURL())
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	subscriberRepo := database.NewSubscriberRepository(db)
	trialRepo := database.NewTrialRepository(db)
	clientRepo := database.NewClientRepository(db)
	leadRepo := database.NewLeadRepository(db)
	pageRepo := database.NewCapturePageRepository(db)
	emailLogRepo := database.NewEmailLogRepository(db)
	activityRepo := database.NewLeadActivityRepository(db)

	// 2. Mail transport + queue
	sender := mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser,
		cfg.SMTPPassword, cfg.FromAddress, emailLogRepo)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Delivery worker (drains the mail queue)
	worker := queue.NewWorker(rabbitMQ.Ch, sender)
	go worker.Start(queue.QueueName)

	// 4. Usecases
	subscribeUC := usecase.NewSubscribeUseCase(subscriberRepo, producer, cfg.NotifyEmail)
	trialSignupUC := usecase.NewTrialSignupUseCase(trialRepo, subscriberRepo, producer, cfg.NotifyEmail)
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, pageRepo, clientRepo,
		producer, cfg.NotifyEmail, cfg.BaseURL)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	dashboardUC := usecase.NewDashboardUseCase(clientRepo, leadRepo)
	overviewUC := usecase.NewOverviewUseCase(subscriberRepo, trialRepo, clientRepo, leadRepo)
	createClientUC := usecase.NewCreateClientUseCase(clientRepo, trialRepo, cfg.BaseURL)
	createPageUC := usecase.NewCreateCapturePageUseCase(pageRepo, clientRepo, cfg.BaseURL)
	weeklyReportUC := usecase.NewWeeklyReportUseCase(clientRepo, leadRepo, producer, cfg.BaseURL)

	// 5. Handlers
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.SMTPHost, cfg.WhopAPIKey)
	subscribeHandler := handlers.NewSubscribeHandler(subscribeUC)
	trialHandler := handlers.NewTrialHandler(trialSignupUC)
	leadHandler := handlers.NewLeadHandler(captureLeadUC, updateLeadUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	adminHandler := handlers.NewAdminHandler(overviewUC, createClientUC, createPageUC,
		weeklyReportUC, trialRepo, subscriberRepo, leadRepo, clientRepo, emailLogRepo,
		activityRepo)
	quoteHandler := handlers.NewQuoteHandler(pageRepo, cfg.BaseURL)
	facebookHandler := handlers.NewFacebookWebhookHandler(cfg.FacebookVerifyToken)
	zapierHandler := handlers.NewZapierWebhookHandler(captureLeadUC)
	whopHandler := handlers.NewWhopWebhookHandler(clientRepo, producer,
		cfg.WhopWebhookSecret, cfg.NotifyEmail)

	publicLimiter := handlers.NewRateLimiter(20, time.Minute)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Whop-Signature"},
	}))

	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Public form endpoints, rate limited.
	r.Group(func(r chi.Router) {
		r.Use(publicLimiter.Handler)
		r.Post("/api/subscribe", subscribeHandler.Handle)
		r.Post("/api/trial-signup", trialHandler.Handle)
		r.Post("/api/leads", leadHandler.Capture)
	})

	r.Patch("/api/leads/{id}", leadHandler.Update)
	r.Get("/api/dashboard/{token}", dashboardHandler.Handle)

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/overview", adminHandler.HandleOverview)
		r.Get("/trials", adminHandler.HandleListTrials)
		r.Get("/subscribers", adminHandler.HandleListSubscribers)
		r.Get("/leads", adminHandler.HandleListLeads)
		r.Get("/leads/{id}/activity", adminHandler.HandleListLeadActivity)
		r.Get("/clients", adminHandler.HandleListClients)
		r.Get("/emails", adminHandler.HandleListEmails)
		r.Post("/clients", adminHandler.HandleCreateClient)
		r.Post("/clients/{id}/weekly-report", adminHandler.HandleSendWeeklyReport)
		r.Post("/capture-pages", adminHandler.HandleCreateCapturePage)
	})

	r.Post("/api/capture-pages/{slug}/view", quoteHandler.HandleCountView)

	r.Get("/api/webhooks/facebook", facebookHandler.HandleVerify)
	r.Post("/api/webhooks/facebook", facebookHandler.HandleDelivery)
	r.Post("/api/webhooks/zapier", zapierHandler.Handle)
	r.Post("/api/webhooks/whop", whopHandler.Handle)

	r.Get("/quote/{slug}", quoteHandler.HandleBySlug)
	r.Get("/quote/{industry}/{city}", quoteHandler.HandleByIndustryCity)

	addr := ":" + cfg.Port
	log.Printf("leadpilot api listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
