package controllers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/models"
	"github.com/homehunt-ie/backend/store"
)

// CreateViewing books a viewing appointment. The referenced property must
// exist; a booking against an unknown listing is rejected with 404.
func CreateViewing(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data models.InsertViewing
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			log.Printf("Invalid request body: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid viewing data")
			return
		}
		if err := data.Validate(); err != nil {
			log.Printf("Invalid viewing data: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid viewing data")
			return
		}

		if _, err := s.GetProperty(r.Context(), data.PropertyID); err != nil {
			if err == store.ErrNotFound {
				log.Printf("Viewing requested for unknown property %d", data.PropertyID)
				respondError(w, http.StatusNotFound, "Property not found")
				return
			}
			log.Printf("Error checking property %d: %v", data.PropertyID, err)
			respondError(w, http.StatusInternalServerError, "Failed to create viewing")
			return
		}

		viewing, err := s.CreateViewing(r.Context(), data)
		if err != nil {
			log.Printf("Insert failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create viewing")
			return
		}

		respondJSON(w, http.StatusCreated, viewing)
	}
}
