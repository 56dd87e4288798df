package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Имена коллекций MongoDB
const (
	HazardsCollection = "hazards"
	TrafficCollection = "traffic_reports"
)

// mongoDocument - элемент коллекции с номером позиции для сохранения порядка
type mongoDocument[T any] struct {
	Position int `bson:"position"`
	Item     T   `bson:",inline"`
}

// MongoCollection хранит элементы коллекции отдельными документами
type MongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name)}
}

func (r *MongoCollection[T]) Load(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []mongoDocument[T]
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.Item)
	}
	return items, nil
}

// Save заменяет все документы коллекции.
// Транзакции на одиночном сервере недоступны, поэтому между удалением и вставкой
// возможно окно с пустой коллекцией.
func (r *MongoCollection[T]) Save(ctx context.Context, items []T) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.coll.Name(), err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = mongoDocument[T]{Position: i, Item: item}
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert %s: %w", r.coll.Name(), err)
	}
	return nil
}
