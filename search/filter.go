// Package search holds the listing filter. It is a pure function over an
// already-fetched property list; the listing endpoint applies it when query
// parameters are present, and clients are free to run the same logic locally.
package search

import (
	"strings"

	"github.com/homehunt-ie/backend/models"
)

// Criteria narrows a property list. MaxPrice <= 0 means no upper price
// bound; an empty Term matches everything.
type Criteria struct {
	MinPrice  int
	MaxPrice  int
	Bedrooms  int
	Bathrooms int
	Term      string
}

// Filter returns the properties matching all criteria, preserving input
// order. The price range is inclusive, bedroom/bathroom counts are minimums,
// and the term is a case-insensitive substring match against title or
// address.
func Filter(properties []models.Property, c Criteria) []models.Property {
	term := strings.ToLower(c.Term)

	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if p.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		if p.Bedrooms < c.Bedrooms || p.Bathrooms < c.Bathrooms {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Address), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
