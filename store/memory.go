package store

import (
	"context"
	"sync"
	"time"

	"github.com/homehunt-ie/backend/models"
)

// Memory is the in-memory reference store. A single mutex serializes all
// access so that ids stay monotonic and the collections stay append-only
// under concurrent request handling.
type Memory struct {
	mu sync.Mutex

	properties   []models.Property
	propertyByID map[int64]int
	viewings     map[int64]models.Viewing
	users        map[int64]models.User

	nextPropertyID int64
	nextViewingID  int64
	nextUserID     int64
}

func NewMemory() *Memory {
	return &Memory{
		propertyByID:   make(map[int64]int),
		viewings:       make(map[int64]models.Viewing),
		users:          make(map[int64]models.User),
		nextPropertyID: 1,
		nextViewingID:  1,
		nextUserID:     1,
	}
}

func (m *Memory) GetProperties(_ context.Context) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Property, len(m.properties))
	copy(out, m.properties)
	return out, nil
}

func (m *Memory) GetProperty(_ context.Context, id int64) (*models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.propertyByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := m.properties[idx]
	return &p, nil
}

func (m *Memory) CreateProperty(_ context.Context, data models.InsertProperty) (*models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := models.Property{
		ID:          m.nextPropertyID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Address:     data.Address,
		Location:    data.Location,
		Images:      data.Images,
		UserID:      data.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	m.nextPropertyID++
	m.propertyByID[p.ID] = len(m.properties)
	m.properties = append(m.properties, p)
	return &p, nil
}

func (m *Memory) CreateViewing(_ context.Context, data models.InsertViewing) (*models.Viewing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := models.Viewing{
		ID:         m.nextViewingID,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		Date:       data.Date,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Message:    data.Message,
		CreatedAt:  time.Now().UTC(),
	}
	m.nextViewingID++
	m.viewings[v.ID] = v
	return &v, nil
}

// CreateUser checks email uniqueness and inserts inside the same critical
// section, so two concurrent sign-ups with the same email cannot both
// succeed.
func (m *Memory) CreateUser(_ context.Context, data models.InsertUser) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == data.Email {
			return nil, ErrEmailTaken
		}
	}

	u := models.User{
		ID:        m.nextUserID,
		Email:     data.Email,
		Password:  data.Password,
		Name:      data.Name,
		CreatedAt: time.Now().UTC(),
	}
	m.nextUserID++
	m.users[u.ID] = u
	return &u, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
