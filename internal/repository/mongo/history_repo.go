package mongo

import (
	"context"
	"errors"

	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollectionName = "workout_history"

// mongoHistoryRepository implements repository.HistoryRepository. There is
// deliberately no Update or Delete: history records are immutable.
type mongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new WorkoutHistory repository.
func NewMongoHistoryRepository(db *mongo.Database) repository.HistoryRepository {
	return &mongoHistoryRepository{
		collection: db.Collection(historyCollectionName),
	}
}

// Create inserts a finished-session record.
func (r *mongoHistoryRepository) Create(ctx context.Context, history *domain.WorkoutHistory) (primitive.ObjectID, error) {
	if history.OwnerID == primitive.NilObjectID || history.WorkoutID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("history requires ownerId and workoutId")
	}
	if history.DurationMinutes < 0 {
		return primitive.NilObjectID, errors.New("history duration cannot be negative")
	}

	history.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, history)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted history ID")
	}
	return insertedID, nil
}

// GetByOwnerID retrieves a student's history, most recent first.
func (r *mongoHistoryRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutHistory, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []domain.WorkoutHistory
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureHistoryIndexes creates necessary indexes. Call during startup.
func EnsureHistoryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "startedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
