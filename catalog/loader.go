package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ronak1998bacancy/E-commerce/models"
)

// Loader produces the full product list from a catalog source.
type Loader interface {
	Load() ([]models.Product, error)
}

// FileLoader reads products from a JSON array file (data.json).
type FileLoader struct {
	Path string
}

func (l FileLoader) Load() ([]models.Product, error) {
	data, err := os.ReadFile(l.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found", l.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.Path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", l.Path, err)
	}

	return products, nil
}

// MongoLoader reads products from a Mongo collection at startup.
type MongoLoader struct {
	Collection *mongo.Collection
}

func (l MongoLoader) Load() ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := l.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

var validate = validator.New()

// validateProducts rejects the whole load when any record is malformed, so a
// bad file fails at startup instead of surfacing as odd scores later.
func validateProducts(products []models.Product) error {
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("product %d (%q): %w", i, p.Name, err)
		}
	}
	return nil
}
