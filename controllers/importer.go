package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/importers"
)

// ImportResult reports the outcome of one listing source.
type ImportResult struct {
	Source   string `json:"source"`
	Imported int    `json:"imported"`
	Error    string `json:"error,omitempty"`
}

// ImportListings runs every configured listing importer and reports per-source
// counts. Sources are external placeholder APIs, so individual failures are
// reported rather than failing the whole run.
func ImportListings(imps []importers.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(int64)
		if !ok {
			respondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		results := make([]ImportResult, 0, len(imps))
		for _, imp := range imps {
			count, err := imp.Run(r.Context())
			result := ImportResult{Source: imp.Name(), Imported: count}
			if err != nil {
				log.Printf("Importer %s failed: %v", imp.Name(), err)
				result.Error = err.Error()
			} else {
				log.Printf("Importer %s created %d listings (triggered by user %d)", imp.Name(), count, userID)
			}
			results = append(results, result)
		}

		respondJSON(w, http.StatusAccepted, results)
	}
}
