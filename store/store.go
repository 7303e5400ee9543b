package store

import (
	"context"
	"errors"

	"github.com/homehunt-ie/backend/models"
)

var (
	// ErrNotFound is returned when a lookup matches no entity.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by CreateUser when the email is already
	// registered. The check and the insert happen atomically.
	ErrEmailTaken = errors.New("email already registered")
)

// Store holds users, properties and viewings. Implementations assign ids
// strictly increasing from 1 per entity type, stamp creation times, and never
// expose update or delete operations. The memory implementation is the
// reference; the Mongo implementation backs the same contract with a real
// database and translates its native errors into the sentinels above.
type Store interface {
	GetProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	CreateProperty(ctx context.Context, data models.InsertProperty) (*models.Property, error)

	CreateViewing(ctx context.Context, data models.InsertViewing) (*models.Viewing, error)

	CreateUser(ctx context.Context, data models.InsertUser) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}
