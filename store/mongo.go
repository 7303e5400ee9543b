package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homehunt-ie/backend/models"
)

// Mongo backs the Store contract with MongoDB. Ids come from a counters
// collection so they stay strictly increasing across restarts, and the unique
// index on users.email makes CreateUser's check-and-insert atomic. Native
// driver errors are translated into the store sentinels rather than leaked.
type Mongo struct {
	properties *mongo.Collection
	viewings   *mongo.Collection
	users      *mongo.Collection
	counters   *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		properties: db.Collection("properties"),
		viewings:   db.Collection("viewings"),
		users:      db.Collection("users"),
		counters:   db.Collection("counters"),
	}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (s *Mongo) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func (s *Mongo) GetProperties(ctx context.Context) ([]models.Property, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.properties.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return properties, nil
}

func (s *Mongo) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	err := s.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find property %d: %w", id, err)
	}
	return &p, nil
}

func (s *Mongo) CreateProperty(ctx context.Context, data models.InsertProperty) (*models.Property, error) {
	id, err := s.nextID(ctx, "properties")
	if err != nil {
		return nil, err
	}

	p := models.Property{
		ID:          id,
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
	if _, err := s.properties.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return &p, nil
}

func (s *Mongo) CreateViewing(ctx context.Context, data models.InsertViewing) (*models.Viewing, error) {
	id, err := s.nextID(ctx, "viewings")
	if err != nil {
		return nil, err
	}

	v := models.Viewing{
		ID:         id,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		Date:       data.Date,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Message:    data.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.viewings.InsertOne(ctx, v); err != nil {
		return nil, fmt.Errorf("insert viewing: %w", err)
	}
	return &v, nil
}

func (s *Mongo) CreateUser(ctx context.Context, data models.InsertUser) (*models.User, error) {
	id, err := s.nextID(ctx, "users")
	if err != nil {
		return nil, err
	}

	u := models.User{
		ID:        id,
		Email:     data.Email,
		Password:  data.Password,
		Name:      data.Name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Mongo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}
