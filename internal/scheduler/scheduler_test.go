package scheduler

import (
	"errors"
	"testing"

	"academiafit/gym-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func makeWorkout(owner primitive.ObjectID, day *int) domain.Workout {
	return domain.Workout{ID: primitive.NewObjectID(), OwnerID: owner, DayOfWeek: day}
}

func TestAssignDayFreeSlot(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, nil)
	b := makeWorkout(owner, intPtr(2))

	updates, err := AssignDay(owner, a.ID, intPtr(4), []domain.Workout{a, b})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected 1 update for a free day, got %d", len(updates))
	}
	if updates[0].WorkoutID != a.ID || updates[0].DayOfWeek == nil || *updates[0].DayOfWeek != 4 {
		t.Errorf("unexpected update: %+v", updates[0])
	}
}

func TestAssignDaySwapsOccupant(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, intPtr(1))
	b := makeWorkout(owner, intPtr(3))

	updates, err := AssignDay(owner, a.ID, intPtr(3), []domain.Workout{a, b})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates for a swap, got %d", len(updates))
	}
	if updates[0].WorkoutID != a.ID || *updates[0].DayOfWeek != 3 {
		t.Errorf("target update wrong: %+v", updates[0])
	}
	if updates[1].WorkoutID != b.ID || updates[1].DayOfWeek == nil || *updates[1].DayOfWeek != 1 {
		t.Errorf("occupant should inherit day 1, got %+v", updates[1])
	}
}

func TestAssignDaySwapUnschedulesOccupant(t *testing.T) {
	// Target was unscheduled, so the displaced occupant ends up unscheduled.
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, nil)
	b := makeWorkout(owner, intPtr(5))

	updates, err := AssignDay(owner, a.ID, intPtr(5), []domain.Workout{a, b})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}
	if updates[1].WorkoutID != b.ID || updates[1].DayOfWeek != nil {
		t.Errorf("occupant should be unscheduled, got %+v", updates[1])
	}
}

func TestAssignDayUnschedule(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, intPtr(2))
	b := makeWorkout(owner, intPtr(3))

	updates, err := AssignDay(owner, a.ID, nil, []domain.Workout{a, b})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 1 || updates[0].WorkoutID != a.ID || updates[0].DayOfWeek != nil {
		t.Errorf("expected a single unschedule update, got %+v", updates)
	}
}

func TestAssignDaySameDayIsNoSwap(t *testing.T) {
	// Re-assigning a workout to the day it already occupies must not make
	// it swap with itself.
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, intPtr(2))

	updates, err := AssignDay(owner, a.ID, intPtr(2), []domain.Workout{a})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
}

func TestAssignDayIgnoresOtherOwners(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	a := makeWorkout(owner, nil)
	foreign := makeWorkout(other, intPtr(4))

	updates, err := AssignDay(owner, a.ID, intPtr(4), []domain.Workout{a, foreign})
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	if len(updates) != 1 {
		t.Errorf("another owner's workout must not be treated as an occupant, got %d updates", len(updates))
	}
}

func TestAssignDayErrors(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, nil)

	tests := []struct {
		name      string
		workoutID primitive.ObjectID
		day       *int
		wantErr   error
	}{
		{"unknown workout", primitive.NewObjectID(), intPtr(1), ErrWorkoutNotFound},
		{"day too small", a.ID, intPtr(-1), ErrInvalidDay},
		{"day too large", a.ID, intPtr(7), ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssignDay(owner, tt.workoutID, tt.day, []domain.Workout{a})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AssignDay() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// applyUpdates mirrors what the store does with a batch, so sequences of
// AssignDay calls can be checked against the one-workout-per-day invariant.
func applyUpdates(workouts []domain.Workout, updates []domain.DayUpdate) {
	for _, u := range updates {
		for i := range workouts {
			if workouts[i].ID == u.WorkoutID {
				workouts[i].DayOfWeek = u.DayOfWeek
			}
		}
	}
}

func TestAssignDaySequenceKeepsDaysUnique(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, intPtr(3))
	b := makeWorkout(owner, intPtr(1))
	workouts := []domain.Workout{a, b}

	// Move A onto B's day: they swap.
	updates, err := AssignDay(owner, a.ID, intPtr(1), workouts)
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	applyUpdates(workouts, updates)
	if *workouts[0].DayOfWeek != 1 || *workouts[1].DayOfWeek != 3 {
		t.Fatalf("after swap: A=%v B=%v, want A=1 B=3", *workouts[0].DayOfWeek, *workouts[1].DayOfWeek)
	}

	// Unschedule A: B keeps its inherited day.
	updates, err = AssignDay(owner, a.ID, nil, workouts)
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	applyUpdates(workouts, updates)
	if workouts[0].DayOfWeek != nil {
		t.Errorf("A should be unscheduled, got %v", *workouts[0].DayOfWeek)
	}
	if workouts[1].DayOfWeek == nil || *workouts[1].DayOfWeek != 3 {
		t.Errorf("B should stay on day 3, got %v", workouts[1].DayOfWeek)
	}

	seen := make(map[int]bool)
	for _, w := range workouts {
		if w.DayOfWeek == nil {
			continue
		}
		if seen[*w.DayOfWeek] {
			t.Errorf("two workouts share day %d", *w.DayOfWeek)
		}
		seen[*w.DayOfWeek] = true
	}
}

func TestAssignDayDoesNotAliasInput(t *testing.T) {
	owner := primitive.NewObjectID()
	a := makeWorkout(owner, intPtr(1))
	b := makeWorkout(owner, intPtr(3))
	workouts := []domain.Workout{a, b}

	updates, err := AssignDay(owner, a.ID, intPtr(3), workouts)
	if err != nil {
		t.Fatalf("AssignDay() error = %v", err)
	}
	*workouts[0].DayOfWeek = 6
	if *updates[1].DayOfWeek != 1 {
		t.Errorf("occupant update aliases the input slice")
	}
}
