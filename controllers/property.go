package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/models"
	"github.com/homehunt-ie/backend/search"
	"github.com/homehunt-ie/backend/store"
)

type ContextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey = ContextKey("userID")

const propertyCacheTTL = 10 * time.Minute

// GetAllProperties returns the full listing catalog, optionally narrowed by
// the filter query parameters. Responses are cached in Redis when a client
// is configured.
func GetAllProperties(s store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, filtered, err := parseCriteria(r.URL.Query())
		if err != nil {
			log.Printf("Invalid filter parameters: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid filter parameters")
			return
		}

		cacheKey := generateCacheKey(r.URL.Query())
		if redisClient != nil {
			cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cachedData))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for key %s: %v", cacheKey, err)
			}
		}

		properties, err := s.GetProperties(r.Context())
		if err != nil {
			log.Printf("Error fetching properties: %v", err)
			respondError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}

		if filtered {
			properties = search.Filter(properties, criteria)
		}

		resultBytes, err := json.Marshal(properties)
		if err != nil {
			log.Printf("Failed to serialize properties: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}

		if redisClient != nil {
			if err := redisClient.Set(r.Context(), cacheKey, resultBytes, propertyCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

// GetPropertyByID returns a single listing or 404.
func GetPropertyByID(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			log.Printf("Invalid property ID %q: %v", mux.Vars(r)["id"], err)
			respondError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		property, err := s.GetProperty(r.Context(), id)
		if err == store.ErrNotFound {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching property %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}

		respondJSON(w, http.StatusOK, property)
	}
}

// CreateProperty stores a new listing and invalidates the listing cache.
func CreateProperty(s store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data models.InsertProperty
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			log.Printf("Invalid request body: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid property data")
			return
		}
		if err := data.Validate(); err != nil {
			log.Printf("Invalid property data: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid property data")
			return
		}

		property, err := s.CreateProperty(r.Context(), data)
		if err != nil {
			log.Printf("Insert failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create property")
			return
		}

		if redisClient != nil {
			go deletePropertyCache(redisClient)
		}

		respondJSON(w, http.StatusCreated, property)
	}
}

func parseCriteria(query url.Values) (search.Criteria, bool, error) {
	var c search.Criteria
	filtered := false

	intParams := map[string]*int{
		"minPrice":  &c.MinPrice,
		"maxPrice":  &c.MaxPrice,
		"bedrooms":  &c.Bedrooms,
		"bathrooms": &c.Bathrooms,
	}
	for name, dst := range intParams {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return search.Criteria{}, false, fmt.Errorf("invalid %s: %q", name, raw)
		}
		*dst = n
		filtered = true
	}

	if term := query.Get("q"); term != "" {
		c.Term = term
		filtered = true
	}
	return c, filtered, nil
}

func generateCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "properties:" + hex.EncodeToString(sum[:])
}

func deletePropertyCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "properties:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern %q: %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d listing cache keys: %v", len(keysToDelete), err)
		return
	}
	log.Printf("Listing cache invalidated, deleted %d keys", len(keysToDelete))
}
