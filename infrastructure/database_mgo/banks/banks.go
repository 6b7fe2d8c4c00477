package banks

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
)

// RepoImpl -
type RepoImpl struct {
	collection *mongo.Collection
}

// FindActive - banks with a BIN that are not paused
func (r RepoImpl) FindActive(ctx context.Context) ([]entities.Bank, error) {
	result := []entities.Bank{}
	cur, err := r.collection.Find(ctx,
		bson.M{
			"bin":    bson.M{"$exists": true, "$ne": ""},
			"status": bson.M{"$in": bson.A{"ACTIVE", "", nil}},
		},
		&options.FindOptions{
			Sort: bson.M{"bin": 1},
		})
	if err != nil {
		return nil, fmt.Errorf("find banks: %w", err)
	}

	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var bank entities.Bank

		err = cur.Decode(&bank)
		if err == nil {
			result = append(result, bank)
		}
	}

	return result, cur.Err()
}

// NewBankRepository -
func NewBankRepository(db *mongo.Client, dbName string) *RepoImpl {
	return &RepoImpl{
		collection: db.Database(dbName).Collection(constants.CollectionBanks),
	}
}
