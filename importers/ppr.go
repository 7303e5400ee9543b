package importers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/homehunt-ie/backend/models"
	"github.com/homehunt-ie/backend/store"
)

const pprBaseURL = "https://api.propertypriceregister.ie/v1"

type pprRecord struct {
	DateOfSale          string `json:"date_of_sale"`
	Address             string `json:"address"`
	County              string `json:"county"`
	Price               string `json:"price"`
	PropertyDescription string `json:"property_description"`
}

// PPR imports sale records from the Property Price Register. The register
// publishes no bedroom or bathroom counts and no images, so those fields stay
// zero. Prices arrive as formatted strings ("€350,000.00") and are reduced to
// digits.
type PPR struct {
	store   store.Store
	baseURL string
	client  *http.Client
}

func NewPPR(s store.Store) *PPR {
	return &PPR{store: s, baseURL: pprBaseURL, client: http.DefaultClient}
}

func (p *PPR) Name() string { return "ppr" }

func (p *PPR) Run(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/properties", nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch PPR data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch PPR data: %s", resp.Status)
	}

	var records []pprRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode PPR data: %w", err)
	}

	created := 0
	for _, rec := range records {
		_, err := p.store.CreateProperty(ctx, models.InsertProperty{
			Title:       fmt.Sprintf("Property in %s", rec.County),
			Description: fmt.Sprintf("%s - Sold on %s", rec.PropertyDescription, rec.DateOfSale),
			Price:       parsePrice(rec.Price),
			Address:     rec.Address,
			Location:    models.Location{},
			Images:      []string{},
			UserID:      systemUserID,
		})
		if err != nil {
			return created, fmt.Errorf("store PPR record: %w", err)
		}
		created++
	}
	return created, nil
}

func parsePrice(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
