package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-backend/models"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantStore persists the catalog and answers the two read queries
// built in query.go.
type RestaurantStore interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	// AppendMenuItem adds item to the menu of the first restaurant whose
	// name matches exactly (names are not unique) and returns the stored
	// item with its menu position.
	AppendMenuItem(ctx context.Context, restaurantName string, item models.MenuItem) (*models.MenuItem, int, error)
	Search(ctx context.Context, f SearchFilter) ([]SearchResult, error)
	CategoryTree(ctx context.Context) ([]RestaurantCategories, error)
}

type MongoRestaurantStore struct {
	col *mongo.Collection
}

func NewMongoRestaurantStore(db *mongo.Database) *MongoRestaurantStore {
	return &MongoRestaurantStore{col: db.Collection("restaurants")}
}

func (s *MongoRestaurantStore) List(ctx context.Context) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	restaurants := []models.Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *MongoRestaurantStore) AppendMenuItem(ctx context.Context, restaurantName string, item models.MenuItem) (*models.MenuItem, int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated models.Restaurant
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"name": restaurantName},
		bson.M{"$push": bson.M{"menus": item}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, ErrRestaurantNotFound
		}
		return nil, 0, err
	}
	pos := len(updated.Menus) - 1
	return &updated.Menus[pos], pos, nil
}

func (s *MongoRestaurantStore) Search(ctx context.Context, f SearchFilter) ([]SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := s.col.Aggregate(ctx, BuildSearchPipeline(f))
	if err != nil {
		return nil, err
	}
	results := []SearchResult{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *MongoRestaurantStore) CategoryTree(ctx context.Context) ([]RestaurantCategories, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := s.col.Aggregate(ctx, BuildCategoryPipeline())
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID CategoryTriple `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	triples := make([]CategoryTriple, 0, len(rows))
	for _, row := range rows {
		triples = append(triples, row.ID)
	}
	return BuildCategoryTree(triples), nil
}
