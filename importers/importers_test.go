package importers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homehunt-ie/backend/store"
)

func TestDaft_Run(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"d-1","title":"Terraced House","price":425000,"bedrooms":3,"bathrooms":1,
			 "address":"4 Oxford Road, Ranelagh, Dublin 6","propertyType":"Terraced",
			 "daftUrl":"https://daft.ie/d-1","images":["https://daft.ie/d-1.jpg"]}
		]`))
	}))
	defer srv.Close()

	s := store.NewMemory()
	imp := NewDaft(s, "test-key")
	imp.baseURL = srv.URL

	count, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "Bearer test-key", gotAuth)

	properties, err := s.GetProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Terraced House", properties[0].Title)
	assert.Contains(t, properties[0].Description, "daft.ie")
	assert.Equal(t, int64(systemUserID), properties[0].UserID)
}

func TestDaft_RunFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	imp := NewDaft(store.NewMemory(), "")
	imp.baseURL = srv.URL

	count, err := imp.Run(context.Background())
	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestPPR_Run(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date_of_sale":"2025-03-14","address":"9 The Rise, Blackrock","county":"Dublin",
			 "price":"450,000","not_full_market_price":"No","vat_exclusive":"No",
			 "property_description":"Second-Hand Dwelling house /Apartment"}
		]`))
	}))
	defer srv.Close()

	s := store.NewMemory()
	imp := NewPPR(s)
	imp.baseURL = srv.URL

	count, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	properties, err := s.GetProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Property in Dublin", properties[0].Title)
	assert.Equal(t, 450000, properties[0].Price)
	// The register carries no bedroom or bathroom data.
	assert.Zero(t, properties[0].Bedrooms)
	assert.Zero(t, properties[0].Bathrooms)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 450000, parsePrice("450,000"))
	assert.Equal(t, 450000, parsePrice("€450,000"))
	assert.Equal(t, 0, parsePrice("n/a"))
}
