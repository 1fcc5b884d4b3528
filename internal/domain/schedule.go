package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// DayUpdate is one day-of-week change produced by conflict resolution.
// A batch of DayUpdates must be persisted atomically: applying only part of
// a swap would leave two workouts of the same owner on the same day.
type DayUpdate struct {
	WorkoutID primitive.ObjectID
	DayOfWeek *int // nil unschedules
}
