package store

import (
	"context"
	"log/slog"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore keeps one document per active request, keyed by request id.
type MongoStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewMongoStore(db *mongo.Database, collection string, logger *slog.Logger) *MongoStore {
	return &MongoStore{
		collection: db.Collection(collection),
		logger:     logger,
	}
}

// EnsureIndexes creates the lookup indexes for the collection.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "promptTime", Value: 1}}},
	}
	if _, err := s.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create feedback indexes", err)
	}
	return nil
}

func (s *MongoStore) LoadAll(ctx context.Context) ([]*feedback.FeedbackRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "promptTime", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load feedback requests", err)
	}

	var docs []requestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read feedback requests", err)
	}

	reqs, err := fromDocuments(docs)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecode, "failed to decode feedback requests", err)
	}
	return reqs, nil
}

func (s *MongoStore) SaveAll(ctx context.Context, reqs []*feedback.FeedbackRequest) error {
	ids := make(bson.A, 0, len(reqs))
	models := make([]mongo.WriteModel, 0, len(reqs))
	for _, doc := range toDocuments(reqs) {
		ids = append(ids, doc.ID)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: doc.ID}}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	if len(models) > 0 {
		if _, err := s.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to upsert feedback requests", err)
		}
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$nin", Value: ids}}}}
	if _, err := s.collection.DeleteMany(ctx, filter); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to prune feedback requests", err)
	}
	return nil
}
