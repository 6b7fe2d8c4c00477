package scan_history

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
	"vietqr-system/utils/mongoindex"
)

type ScanHistoryCollection struct {
	collection *mongo.Collection
}

func (o *ScanHistoryCollection) Insert(ctx context.Context, record *entities.ScanRecord) error {
	_, err := o.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("insert scan %s: %w", record.ScanID, err)
	}
	return nil
}

func (o *ScanHistoryCollection) FindRecent(ctx context.Context, clientID string, limit int64) (res []*entities.ScanRecord, err error) {
	res = []*entities.ScanRecord{}
	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := o.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find scans: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var record *entities.ScanRecord
		errDecode := cursor.Decode(&record)

		if errDecode == nil {
			res = append(res, record)
		}
	}
	return res, cursor.Err()
}

// EnsureIndexes - history is listed per client, newest first
func (o *ScanHistoryCollection) EnsureIndexes(ctx context.Context) error {
	err := mongoindex.EnsureIndex(ctx, o.collection, []bson.E{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}}, false)
	if err != nil {
		return err
	}
	return mongoindex.EnsureIndex(ctx, o.collection, []bson.E{{Key: "payload_hash", Value: 1}}, false)
}

func NewScanHistoryCollection(db *mongo.Client, dbName string) *ScanHistoryCollection {
	return &ScanHistoryCollection{
		collection: db.Database(dbName).Collection(constants.CollectionScanHistory),
	}
}
