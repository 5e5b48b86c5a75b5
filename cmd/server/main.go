package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/storygen/backend/internal/auth"
	"github.com/storygen/backend/internal/config"
	"github.com/storygen/backend/internal/database"
	"github.com/storygen/backend/internal/generator"
	"github.com/storygen/backend/internal/story"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	gen, err := generator.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	// Initialize handlers
	storyStore := story.NewStore(db)
	storyService := story.NewService(gen, storyStore, cfg)
	storyHandler := story.NewHandler(storyService, storyStore)
	authHandler := auth.NewHandler(db)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/story/generate", storyHandler.GenerateStory).Methods("POST")
	api.HandleFunc("/feedback", storyHandler.SubmitFeedback).Methods("POST")
	api.HandleFunc("/feedback/export", storyHandler.ExportFeedback).Methods("GET")
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

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

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
