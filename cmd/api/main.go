package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/kommo"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/nationalize"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/infra/worker"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)

	// 2. Gateways e Adapters
	inference := nationalize.NewClient(os.Getenv("NATIONALIZE_URL"))
	crmClient := kommo.NewClient(os.Getenv("KOMMO_API_TOKEN"), envOr("KOMMO_BASE_URL", "https://liguemedicina.kommo.com/api/v4"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var mailSender *mail.EmailSender
	if os.Getenv("MAIL_HOST") != "" {
		mailSender = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)
	}

	// 3. Worker da fila (consome q.crm-sync e entrega no Kommo)
	queueWorker := queue.NewWorker(rabbitMQ.Ch, crmClient)
	go queueWorker.Start(queue.QueueName)

	// 4. UseCases
	enrichUC := usecase.NewEnrichBatchUseCase(
		leadRepo,
		inference,
		envOr("BATCH_DELIMITER", ","),
		envInt("MAX_CONCURRENT_LOOKUPS", usecase.DefaultMaxConcurrentLookups),
	)

	var digestMailer usecase.DigestMailer
	if mailSender != nil {
		digestMailer = mailSender
	}
	syncUC := usecase.NewSyncLeadsUseCase(
		leadRepo,
		producer,
		digestMailer,
		os.Getenv("SALES_TEAM_EMAIL"),
	)

	// 5. Varredura periódica (não sobrepõe execuções)
	syncWorker := worker.NewCRMSyncWorker(syncUC, envDuration("SYNC_INTERVAL", worker.DefaultSyncInterval))
	go syncWorker.Start(context.Background())

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(enrichUC, leadRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/leads/batch", leadHandler.HandleBatch)
	r.Get("/api/leads", leadHandler.HandleList)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Server SmartLead rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
