package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homehunt-ie/backend/models"
)

func insertProperty(title string) models.InsertProperty {
	return models.InsertProperty{
		Title:       title,
		Description: "A fine home",
		Price:       350000,
		Bedrooms:    3,
		Bathrooms:   2,
		Address:     "1 Main Street, Dublin",
		Images:      []string{"https://example.com/1.jpg"},
		UserID:      1,
	}
}

func TestCreateProperty_IDsIncreaseFromOne(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		p, err := s.CreateProperty(ctx, insertProperty(fmt.Sprintf("Listing %d", i)))
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestGetProperties_InsertionOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := s.CreateProperty(ctx, insertProperty(title))
		require.NoError(t, err)
	}

	properties, err := s.GetProperties(ctx)
	require.NoError(t, err)
	require.Len(t, properties, 3)
	for i, title := range titles {
		assert.Equal(t, title, properties[i].Title)
		assert.Equal(t, int64(i+1), properties[i].ID)
	}
}

func TestGetProperty_UnknownID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.GetProperty(ctx, 42)
	assert.Equal(t, ErrNotFound, err)

	_, err = s.GetProperty(ctx, 0)
	assert.Equal(t, ErrNotFound, err)
}

func TestCreateViewing_IndependentIDSequence(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	p, err := s.CreateProperty(ctx, insertProperty("Listing"))
	require.NoError(t, err)

	v, err := s.CreateViewing(ctx, models.InsertViewing{
		PropertyID: p.ID,
		UserID:     1,
		Date:       time.Now().Add(48 * time.Hour),
		Name:       "Aoife Byrne",
		Email:      "aoife@example.com",
		Phone:      "0851234567",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, p.ID, v.PropertyID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.InsertUser{Email: "sean@example.com", Password: "hash", Name: "Sean"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = s.CreateUser(ctx, models.InsertUser{Email: "sean@example.com", Password: "other", Name: "Impostor"})
	assert.Equal(t, ErrEmailTaken, err)

	// The failed insert must not burn an id.
	u2, err := s.CreateUser(ctx, models.InsertUser{Email: "maeve@example.com", Password: "hash", Name: "Maeve"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u2.ID)
}

func TestGetUserByEmail_ExactMatch(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.InsertUser{Email: "sean@example.com", Password: "hash", Name: "Sean"})
	require.NoError(t, err)

	u, err := s.GetUserByEmail(ctx, "sean@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sean", u.Name)

	// Case-sensitive exact match.
	_, err = s.GetUserByEmail(ctx, "Sean@example.com")
	assert.Equal(t, ErrNotFound, err)
}

func TestGetUserByID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.InsertUser{Email: "sean@example.com", Password: "hash", Name: "Sean"})
	require.NoError(t, err)

	u, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, u.Email)

	_, err = s.GetUserByID(ctx, 99)
	assert.Equal(t, ErrNotFound, err)
}
