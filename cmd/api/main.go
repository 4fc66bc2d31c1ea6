package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/grautech/leadpipe/internal/infra/database"
	"github.com/grautech/leadpipe/internal/infra/http/handlers"
	"github.com/grautech/leadpipe/internal/infra/http/middleware"
	"github.com/grautech/leadpipe/internal/infra/mail"
	"github.com/grautech/leadpipe/internal/infra/queue"
	"github.com/grautech/leadpipe/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	tagRepo := database.NewTagRepository(db)
	activityRepo := database.NewActivityRepository(db)
	stageRepo := database.NewStageRepository(db)

	// 2. Fila de eventos (opcional: sem broker o CRM continua servindo,
	// só perde as notificações)
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, eventos desligados: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// 3. Worker de notificações (consome a fila e avisa o comercial)
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("SALES_INBOX"),
		)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	pipeline := usecase.NewLoadPipelineUseCase(stageRepo)
	createLead := usecase.NewCreateLeadUseCase(leadRepo, tagRepo, activityRepo, pipeline)
	updateLead := usecase.NewUpdateLeadUseCase(leadRepo, tagRepo, pipeline, producer)
	duplicateLead := usecase.NewDuplicateLeadUseCase(leadRepo, createLead)
	addNote := usecase.NewAddNoteUseCase(leadRepo, activityRepo)
	moveStage := usecase.NewMoveStageUseCase(leadRepo, activityRepo, pipeline, producer)
	ingestLead := usecase.NewIngestLeadUseCase(leadRepo, tagRepo, activityRepo, pipeline, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, activityRepo, createLead, updateLead, duplicateLead, addNote, moveStage)
	tagHandler := handlers.NewTagHandler(tagRepo)
	stageHandler := handlers.NewStageHandler(pipeline)
	webhookHandler := handlers.NewWebhookHandler(ingestLead)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.HandleList)
		r.Post("/", leadHandler.HandleCreate)
		r.Put("/{id}", leadHandler.HandleUpdate)
		r.Delete("/{id}", leadHandler.HandleDelete)
		r.Post("/{id}/duplicate", leadHandler.HandleDuplicate)
		r.Post("/{id}/notes", leadHandler.HandleAddNote)
		r.Get("/{id}/activities", leadHandler.HandleListActivities)
		r.Patch("/{id}/status", leadHandler.HandleUpdateStatus)
		r.Patch("/{id}/move", leadHandler.HandleMove)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Get("/", tagHandler.HandleList)
		r.Post("/", tagHandler.HandleCreate)
		r.Put("/{id}", tagHandler.HandleUpdate)
		r.Delete("/{id}", tagHandler.HandleDelete)
	})

	r.Get("/pipeline/stages", stageHandler.HandleList)

	r.Post("/webhook/typebot", webhookHandler.Handle)
	r.Options("/webhook/typebot", webhookHandler.Handle)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 LeadPipe rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
