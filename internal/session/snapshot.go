package session

import (
	"math"
	"time"

	"academiafit/gym-app/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseProgress pairs a planned exercise with its executed sets so far.
type ExerciseProgress struct {
	Exercise     domain.Exercise      `json:"exercise"`
	ExecutedSets []domain.ExecutedSet `json:"executedSets"`
}

// Snapshot is a read-only view of the session for display. Observers render
// snapshots; they never reach into the session itself.
type Snapshot struct {
	ID              uuid.UUID          `json:"id"`
	WorkoutID       primitive.ObjectID `json:"workoutId"`
	State           State              `json:"state"`
	CurrentExercise int                `json:"currentExercise"`
	StartedAt       time.Time          `json:"startedAt,omitempty"`
	RestSecondsLeft int                `json:"restSecondsLeft"`
	RestRunning     bool               `json:"restRunning"`
	Exercises       []ExerciseProgress `json:"exercises"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:              s.id,
		WorkoutID:       s.workout.ID,
		State:           s.state,
		CurrentExercise: s.current,
		StartedAt:       s.startedAt,
		RestSecondsLeft: int(math.Ceil(s.RestRemaining().Seconds())),
		RestRunning:     s.RestRunning(),
	}
	for i, ex := range s.workout.Exercises {
		progress := ExerciseProgress{Exercise: ex}
		if i < len(s.executed) {
			progress.ExecutedSets = make([]domain.ExecutedSet, len(s.executed[i]))
			copy(progress.ExecutedSets, s.executed[i])
		}
		snap.Exercises = append(snap.Exercises, progress)
	}
	return snap
}
