package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abcideas/leadflow/internal/infra/database"
	"github.com/abcideas/leadflow/internal/infra/http/handlers"
	"github.com/abcideas/leadflow/internal/infra/http/middleware"
	"github.com/abcideas/leadflow/internal/infra/integration/whatsapp"
	"github.com/abcideas/leadflow/internal/infra/mail"
	"github.com/abcideas/leadflow/internal/infra/queue"
	"github.com/abcideas/leadflow/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositorios
	leadRepo := database.NewLeadRepository(db)
	interRepo := database.NewInteractionRepository(db)

	// 2. Adapters de salida
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)
	whatsappClient := whatsapp.NewClient()

	// 3. Worker (consume la cola y despacha los mensajes generados)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, whatsappClient)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	recordInterUC := usecase.NewRecordInteractionUseCase(leadRepo, interRepo)
	segmentUC := usecase.NewSegmentLeadUseCase(leadRepo)
	generateUC := usecase.NewGenerateMessageUseCase(leadRepo, interRepo, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, leadRepo)
	interHandler := handlers.NewInteractionHandler(recordInterUC, leadRepo, interRepo)
	segmentHandler := handlers.NewSegmentHandler(segmentUC, generateUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/leads", leadHandler.List)
	r.Post("/leads", leadHandler.Create)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	r.Get("/leads/{id}/interacciones", interHandler.List)
	r.Post("/leads/{id}/interacciones", interHandler.Create)

	r.Post("/leads/{id}/segmentar", segmentHandler.Segment)
	r.Post("/leads/{id}/siguiente-mensaje", segmentHandler.NextMessage)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Lead Flow API escuchando en :%s", port)
	http.ListenAndServe(":"+port, r)
}
