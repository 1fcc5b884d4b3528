// Package scheduler resolves weekly day-of-week slots for a student's
// workouts. At most one workout per owner may occupy a given day; conflicts
// are resolved deterministically by swapping slots with the current
// occupant, so no schedule slot is ever silently lost.
package scheduler

import (
	"errors"

	"academiafit/gym-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrWorkoutNotFound means workoutID does not belong to ownerID in the
	// provided set. This is a caller bug, not a schedule conflict.
	ErrWorkoutNotFound = errors.New("workout not found for owner")

	// ErrInvalidDay means requestedDay is outside 0..6.
	ErrInvalidDay = errors.New("day of week must be between 0 and 6")
)

// AssignDay computes the day updates needed to move workoutID to
// requestedDay (or unschedule it when requestedDay is nil), given every
// workout of the owner.
//
// Rules:
//   - nil requestedDay unschedules the workout; nothing else changes.
//   - A free day is simply taken.
//   - A day occupied by another workout X of the same owner is swapped:
//     X inherits the target workout's previous day (which may be nil,
//     unscheduling X), and the target takes requestedDay.
//
// The returned updates must be applied as a single atomic batch; partial
// application could leave two workouts on the same day.
func AssignDay(ownerID, workoutID primitive.ObjectID, requestedDay *int, workouts []domain.Workout) ([]domain.DayUpdate, error) {
	var target *domain.Workout
	for i := range workouts {
		if workouts[i].ID == workoutID && workouts[i].OwnerID == ownerID {
			target = &workouts[i]
			break
		}
	}
	if target == nil {
		return nil, ErrWorkoutNotFound
	}

	if requestedDay == nil {
		return []domain.DayUpdate{{WorkoutID: workoutID, DayOfWeek: nil}}, nil
	}
	day := *requestedDay
	if day < 0 || day > 6 {
		return nil, ErrInvalidDay
	}

	var occupant *domain.Workout
	for i := range workouts {
		w := &workouts[i]
		if w.ID == workoutID || w.OwnerID != ownerID || w.DayOfWeek == nil {
			continue
		}
		if *w.DayOfWeek == day {
			occupant = w
			break
		}
	}

	updates := []domain.DayUpdate{{WorkoutID: workoutID, DayOfWeek: &day}}
	if occupant != nil {
		// The occupant takes over the target's previous slot. Copy the
		// value so the update does not alias the input workout.
		var inherited *int
		if target.DayOfWeek != nil {
			prev := *target.DayOfWeek
			inherited = &prev
		}
		updates = append(updates, domain.DayUpdate{WorkoutID: occupant.ID, DayOfWeek: inherited})
	}
	return updates, nil
}
