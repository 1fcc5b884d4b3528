package mongo

import (
	"context"
	"errors"
	"time"

	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository. It keeps a
// handle on the client as well as the collection because BatchUpdateDays
// needs a session for its transaction.
type mongoWorkoutRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(client *mongo.Client, db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		client:     client,
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.OwnerID == primitive.NilObjectID || workout.AuthorID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout requires ownerId and authorId")
	}
	if workout.Objective == "" {
		return primitive.NilObjectID, errors.New("workout requires an objective")
	}

	workout.ID = primitive.NewObjectID()
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == primitive.NilObjectID {
			workout.Exercises[i].ID = primitive.NewObjectID()
		}
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByOwnerID retrieves all workouts of one student, scheduled first.
func (r *mongoWorkoutRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update rewrites the mutable fields of a workout.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == primitive.NilObjectID {
			workout.Exercises[i].ID = primitive.NewObjectID()
		}
	}

	updateDoc := bson.M{
		"$set": bson.M{
			"objective": workout.Objective,
			"exercises": workout.Exercises,
			"dayOfWeek": workout.DayOfWeek,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": workout.ID}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a workout owned by ownerID.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	if id == primitive.NilObjectID || ownerID == primitive.NilObjectID {
		return errors.New("workout ID and owner ID are required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// BatchUpdateDays applies day-of-week changes in one transaction so a swap
// can never be half-applied.
func (r *mongoWorkoutRepository) BatchUpdateDays(ctx context.Context, updates []domain.DayUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()
		for _, u := range updates {
			result, err := r.collection.UpdateOne(sc,
				bson.M{"_id": u.WorkoutID},
				bson.M{"$set": bson.M{"dayOfWeek": u.DayOfWeek, "updatedAt": now}},
			)
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				return nil, repository.ErrNotFound
			}
		}
		return nil, nil
	})
	return err
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "authorId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
