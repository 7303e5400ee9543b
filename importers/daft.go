package importers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/homehunt-ie/backend/models"
	"github.com/homehunt-ie/backend/store"
)

const daftBaseURL = "https://api.daft.ie/v3"

type daftListing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        int      `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Address      string   `json:"address"`
	PropertyType string   `json:"propertyType"`
	DaftURL      string   `json:"daftUrl"`
	Images       []string `json:"images"`
}

// Daft imports listings from the Daft.ie API. Access requires a partnership
// key; without one every run fails at the fetch.
type Daft struct {
	store   store.Store
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDaft(s store.Store, apiKey string) *Daft {
	return &Daft{store: s, apiKey: apiKey, baseURL: daftBaseURL, client: http.DefaultClient}
}

func (d *Daft) Name() string { return "daft" }

func (d *Daft) Run(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/properties", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch daft listings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch daft listings: %s", resp.Status)
	}

	var listings []daftListing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return 0, fmt.Errorf("decode daft listings: %w", err)
	}

	created := 0
	for _, l := range listings {
		_, err := d.store.CreateProperty(ctx, models.InsertProperty{
			Title:       l.Title,
			Description: fmt.Sprintf("%s property on %s. View more details on Daft.ie: %s", l.PropertyType, l.Address, l.DaftURL),
			Price:       l.Price,
			Bedrooms:    l.Bedrooms,
			Bathrooms:   l.Bathrooms,
			Address:     l.Address,
			// Addresses are not geocoded; the source carries no coordinates.
			Location: models.Location{},
			Images:   l.Images,
			UserID:   systemUserID,
		})
		if err != nil {
			return created, fmt.Errorf("store daft listing %s: %w", l.ID, err)
		}
		created++
	}
	return created, nil
}
