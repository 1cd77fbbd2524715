package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/otaku-quiz/backend/internal/config"
	"github.com/otaku-quiz/backend/internal/content"
	"github.com/otaku-quiz/backend/internal/database"
	"github.com/otaku-quiz/backend/internal/quiz"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	repo := content.NewStore(db)
	sessions := quiz.NewManager(cfg.SessionTTL)
	service := quiz.NewService(repo, sessions)
	handler := quiz.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/series", handler.ListSeries).Methods("GET")
	api.HandleFunc("/series/counts", handler.SeriesCounts).Methods("GET")
	api.HandleFunc("/series/difficulty-counts", handler.DifficultyCounts).Methods("GET")
	api.HandleFunc("/sessions", handler.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", handler.GetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}/answers", handler.SubmitAnswer).Methods("POST")
	api.HandleFunc("/sessions/{id}/results", handler.Results).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s (driver=%s)", cfg.Port, cfg.DBDriver)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
