package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/config"
	"github.com/homehunt-ie/backend/importers"
	"github.com/homehunt-ie/backend/routes"
	"github.com/homehunt-ie/backend/session"
	"github.com/homehunt-ie/backend/store"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func buildStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "mongo":
		client, err := config.ConnectDB(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewMongo(client.Database(cfg.DBName))
		if err := s.EnsureIndexes(context.Background()); err != nil {
			config.CloseDBConnection(client)
			return nil, nil, err
		}
		return s, func() { config.CloseDBConnection(client) }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	loadEnv()
	cfg := config.Load()

	s, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up the store: %v", err)
	}
	defer closeStore()

	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute

	var redisClient *redis.Client
	var sessions session.Store = session.NewMemoryStore(sessionTTL)
	if cfg.RedisAddr != "" {
		redisClient, err = config.ConnectRedis(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, sessionTTL)
	}

	imps := []importers.Importer{
		importers.NewDaft(s, cfg.DaftAPIKey),
		importers.NewPPR(s),
	}

	router := mux.NewRouter()
	routes.Routes(router, s, sessions, redisClient, imps, cfg)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s (store=%s)", cfg.Port, cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
