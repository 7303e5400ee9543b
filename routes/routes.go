package routes

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/homehunt-ie/backend/config"
	"github.com/homehunt-ie/backend/controllers"
	"github.com/homehunt-ie/backend/importers"
	"github.com/homehunt-ie/backend/middleware"
	"github.com/homehunt-ie/backend/session"
	"github.com/homehunt-ie/backend/store"
)

func Routes(router *mux.Router, s store.Store, sessions session.Store, redisClient *redis.Client, imps []importers.Importer, cfg config.Config) {
	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute

	// Property routes
	router.HandleFunc("/api/properties", controllers.GetAllProperties(s, redisClient)).Methods("GET")
	router.HandleFunc("/api/properties/{id}", controllers.GetPropertyByID(s)).Methods("GET")
	router.HandleFunc("/api/properties", controllers.CreateProperty(s, redisClient)).Methods("POST")

	// Viewing routes
	router.HandleFunc("/api/viewings", controllers.CreateViewing(s)).Methods("POST")

	// Auth routes
	router.HandleFunc("/api/auth/signup", controllers.Signup(s)).Methods("POST")
	router.HandleFunc("/api/auth/login", controllers.Login(s, sessions, sessionTTL)).Methods("POST")
	router.HandleFunc("/api/auth/token", controllers.TokenSignIn(s, sessions, cfg.AuthTokenKey, sessionTTL)).Methods("POST")
	router.HandleFunc("/api/auth/logout", controllers.Logout(sessions)).Methods("POST")
	router.HandleFunc("/api/auth/me", controllers.Me(sessions)).Methods("GET")

	// Routes that require authentication
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.Auth(sessions))
	admin.HandleFunc("/import", controllers.ImportListings(imps)).Methods("POST")
}
