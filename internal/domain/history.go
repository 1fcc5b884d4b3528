package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExecutedSet records what actually happened in one set of one exercise
// during a workout session. Weight and RepsDone stay nil until the student
// fills them in.
type ExecutedSet struct {
	SetNumber int      `bson:"setNumber" json:"setNumber"` // 1-based
	Weight    *float64 `bson:"weight" json:"weight"`
	RepsDone  *int     `bson:"repsDone" json:"repsDone"`
	Completed bool     `bson:"completed" json:"completed"`
}

// ExecutedExercise groups the executed sets of one exercise inside a
// history record, keeping the exercise name denormalized so history stays
// readable even if the source workout is later edited or deleted.
type ExecutedExercise struct {
	ExerciseID   primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name         string             `bson:"name" json:"name"`
	ExecutedSets []ExecutedSet      `bson:"executedSets" json:"executedSets"`
}

// WorkoutHistory is the immutable record of one finished workout session.
// It is written exactly once, when the session finishes, and never updated.
type WorkoutHistory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID         primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	WorkoutID       primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	StartedAt       time.Time          `bson:"startedAt" json:"startedAt"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Exercises       []ExecutedExercise `bson:"exercises" json:"exercises"`
}
