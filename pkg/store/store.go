// Package store persists user-defined scale definitions in MongoDB, so the
// server can serve custom scales alongside the built-in catalog.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// Config locates the definitions collection.
type Config struct {
	// URI is a standard MongoDB connection string.
	URI string
	// Database defaults to "electricslide".
	Database string
	// Collection defaults to "definitions".
	Collection string
}

func (c Config) withDefaults() Config {
	if c.Database == "" {
		c.Database = "electricslide"
	}
	if c.Collection == "" {
		c.Collection = "definitions"
	}
	return c
}

// definitionDoc is the stored form of a definition, keyed by scale name.
type definitionDoc struct {
	Name       string           `bson:"_id"`
	Definition scale.Definition `bson:"definition"`
	CreatedAt  time.Time        `bson:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt"`
}

// Store is a MongoDB-backed collection of named custom definitions.
type Store struct {
	client *mongo.Client
	col    *mongo.Collection
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg = cfg.withDefaults()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}
	return &Store{
		client: client,
		col:    client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Save upserts a definition under its name. Saving an existing name
// replaces the stored definition and bumps its update time.
func (s *Store) Save(ctx context.Context, def *scale.Definition) error {
	if def.Name == "" {
		return errors.New(errors.ErrCodeIncompleteDefinition, "definition has no name")
	}
	now := time.Now().UTC()
	doc := definitionDoc{
		Name:       def.Name,
		Definition: *def,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var existing definitionDoc
	err := s.col.FindOne(ctx, bson.M{"_id": def.Name}).Decode(&existing)
	switch {
	case err == nil:
		doc.CreatedAt = existing.CreatedAt
	case err != mongo.ErrNoDocuments:
		return errors.Wrap(errors.ErrCodeStore, err, "look up definition %q", def.Name)
	}

	_, err = s.col.ReplaceOne(ctx, bson.M{"_id": def.Name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save definition %q", def.Name)
	}
	return nil
}

// Get retrieves a stored definition by name.
func (s *Store) Get(ctx context.Context, name string) (*scale.Definition, error) {
	var doc definitionDoc
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeUnknownScale, "no stored definition %q", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load definition %q", name)
	}
	return &doc.Definition, nil
}

// List returns the names of every stored definition, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list definitions")
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decode definition name")
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "iterate definitions")
	}
	return names, nil
}

// Delete removes a stored definition. Deleting an unknown name reports
// UNKNOWN_SCALE so callers can distinguish it from backend failures.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete definition %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeUnknownScale, "no stored definition %q", name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "disconnect from mongodb")
	}
	return nil
}
