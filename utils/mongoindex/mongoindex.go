package mongoindex

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexName - mongo's default name for keys, e.g. client_id_1_created_at_-1
func IndexName(keys []bson.E) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, fmt.Sprintf("%v_%v", k.Key, k.Value))
	}
	return strings.Join(names, "_")
}

// EnsureIndex creates the index on c unless one with the same name exists.
func EnsureIndex(ctx context.Context, c *mongo.Collection, keys []bson.E, unique bool) error {
	indexName := IndexName(keys)

	cur, err := c.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var idx struct {
			Name string `bson:"name"`
		}
		if cur.Decode(&idx) == nil && idx.Name == indexName {
			return nil
		}
	}

	_, err = c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D(keys),
		Options: options.Index().SetBackground(true).SetUnique(unique).SetName(indexName),
	})
	if err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	return nil
}
