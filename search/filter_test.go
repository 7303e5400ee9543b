package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homehunt-ie/backend/models"
)

func sampleProperties() []models.Property {
	return []models.Property{
		{
			ID:        1,
			Title:     "Victorian Redbrick",
			Price:     750000,
			Bedrooms:  3,
			Bathrooms: 2,
			Address:   "12 Strand Road, Sandymount, Dublin 4",
		},
		{
			ID:        2,
			Title:     "Modern Apartment",
			Price:     450000,
			Bedrooms:  2,
			Bathrooms: 1,
			Address:   "8 Hanover Quay, Grand Canal Dock, Dublin 2",
		},
	}
}

func TestFilter_OpenCriteriaReturnsAll(t *testing.T) {
	properties := sampleProperties()
	got := Filter(properties, Criteria{})
	assert.Equal(t, properties, got)
}

func TestFilter_PriceRangeScenario(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{MinPrice: 0, MaxPrice: 500000})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilter_PriceBoundsInclusive(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{MinPrice: 450000, MaxPrice: 750000})
	assert.Len(t, got, 2)

	got = Filter(sampleProperties(), Criteria{MinPrice: 450001, MaxPrice: 749999})
	assert.Empty(t, got)
}

func TestFilter_BedroomAndBathroomMinimums(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{Bedrooms: 3})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Filter(sampleProperties(), Criteria{Bathrooms: 2})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Filter(sampleProperties(), Criteria{Bedrooms: 4})
	assert.Empty(t, got)
}

func TestFilter_TermMatchesTitleOrAddress(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{Term: "sandymount"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Filter(sampleProperties(), Criteria{Term: "MODERN"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilter_UnmatchedTermReturnsEmpty(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{Term: "galway"})
	assert.Empty(t, got)
}

func TestFilter_Idempotent(t *testing.T) {
	c := Criteria{MaxPrice: 500000, Term: "dock"}
	once := Filter(sampleProperties(), c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleProperties(), Criteria{Term: "dublin"})
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}
