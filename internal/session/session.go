// Package session implements the workout execution state machine: one timed
// run of a single workout, tracking what is actually lifted set by set, with
// an advisory rest countdown, ending in an immutable history record.
//
// A Session is plain state plus transitions. It does not persist anything
// and does not tick on its own; the rest countdown is a stored deadline the
// caller polls. Sessions are not safe for concurrent use.
package session

import (
	"errors"
	"math"
	"time"

	"academiafit/gym-app/internal/domain"

	"github.com/google/uuid"
)

// RestInterval is the fixed rest countdown started whenever a set is marked
// complete.
const RestInterval = 90 * time.Second

// State of a session. Finished and Cancelled are terminal.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
	StateCancelled  State = "cancelled"
)

// SetField selects which value of an executed set RecordSet updates.
type SetField string

const (
	FieldWeight   SetField = "weight"
	FieldRepsDone SetField = "repsDone"
)

// Transition preconditions. Hitting one of these is a programming error in
// the caller, not a recoverable runtime condition.
var (
	ErrAlreadyStarted  = errors.New("session already started")
	ErrNotInProgress   = errors.New("session is not in progress")
	ErrIndexOutOfRange = errors.New("exercise or set index out of range")
	ErrUnknownSetField = errors.New("unknown set field")
)

// Session executes one workout.
type Session struct {
	id      uuid.UUID
	workout domain.Workout

	state     State
	startedAt time.Time
	current   int // index into workout.Exercises
	executed  [][]domain.ExecutedSet
	restUntil time.Time // zero when no countdown has been started

	now func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session for the given workout in the NotStarted state.
func New(workout domain.Workout, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		workout: workout,
		state:   StateNotStarted,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() uuid.UUID           { return s.id }
func (s *Session) State() State            { return s.state }
func (s *Session) Workout() domain.Workout { return s.workout }
func (s *Session) StartedAt() time.Time    { return s.startedAt }

// CurrentExercise returns the index of the exercise being executed.
func (s *Session) CurrentExercise() int { return s.current }

// Start moves the session to InProgress, capturing the start time and
// seeding one ExecutedSet per planned set of every exercise, with weight and
// reps unset.
func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	s.startedAt = s.now()
	s.executed = make([][]domain.ExecutedSet, len(s.workout.Exercises))
	for i, ex := range s.workout.Exercises {
		sets := make([]domain.ExecutedSet, ex.Sets)
		for j := range sets {
			sets[j] = domain.ExecutedSet{SetNumber: j + 1}
		}
		s.executed[i] = sets
	}
	s.state = StateInProgress
	return nil
}

// RecordSet updates one field of one executed set. A nil value clears the
// field (the student emptied the input). Completion flags are untouched.
func (s *Session) RecordSet(exerciseIndex, setIndex int, field SetField, value *float64) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	set, err := s.set(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	switch field {
	case FieldWeight:
		set.Weight = value
	case FieldRepsDone:
		if value == nil {
			set.RepsDone = nil
		} else {
			reps := int(*value)
			set.RepsDone = &reps
		}
	default:
		return ErrUnknownSetField
	}
	return nil
}

// ToggleSetComplete flips the completed flag of one set and reports the new
// value. Marking a set complete (re)starts the rest countdown; an already
// running countdown is simply reset. Unmarking never touches the countdown.
func (s *Session) ToggleSetComplete(exerciseIndex, setIndex int) (bool, error) {
	if s.state != StateInProgress {
		return false, ErrNotInProgress
	}
	set, err := s.set(exerciseIndex, setIndex)
	if err != nil {
		return false, err
	}
	set.Completed = !set.Completed
	if set.Completed {
		s.restUntil = s.now().Add(RestInterval)
	}
	return set.Completed, nil
}

// NextExercise advances the current exercise. No-op at the last exercise.
func (s *Session) NextExercise() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.current < len(s.workout.Exercises)-1 {
		s.current++
	}
	return nil
}

// PreviousExercise steps back. No-op at the first exercise.
func (s *Session) PreviousExercise() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// RestRemaining returns the time left on the rest countdown, zero when none
// is running. The countdown is advisory: it gates nothing.
func (s *Session) RestRemaining() time.Duration {
	if s.restUntil.IsZero() {
		return 0
	}
	if left := s.restUntil.Sub(s.now()); left > 0 {
		return left
	}
	return 0
}

// RestRunning reports whether a rest countdown is currently ticking.
func (s *Session) RestRunning() bool {
	return s.RestRemaining() > 0
}

// ExecutedSets returns a copy of the executed sets of one exercise.
func (s *Session) ExecutedSets(exerciseIndex int) ([]domain.ExecutedSet, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.executed) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]domain.ExecutedSet, len(s.executed[exerciseIndex]))
	copy(out, s.executed[exerciseIndex])
	return out, nil
}

// Finish ends the session and assembles its history record. Duration is the
// elapsed wall-clock time rounded to whole minutes. The record is returned
// for the caller to persist; the session itself holds no store reference.
func (s *Session) Finish() (*domain.WorkoutHistory, error) {
	if s.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	elapsed := s.now().Sub(s.startedAt)
	duration := int(math.Round(elapsed.Minutes()))
	if duration < 0 {
		duration = 0
	}

	history := &domain.WorkoutHistory{
		OwnerID:         s.workout.OwnerID,
		WorkoutID:       s.workout.ID,
		StartedAt:       s.startedAt,
		DurationMinutes: duration,
		Exercises:       make([]domain.ExecutedExercise, len(s.workout.Exercises)),
	}
	for i, ex := range s.workout.Exercises {
		sets := make([]domain.ExecutedSet, len(s.executed[i]))
		copy(sets, s.executed[i])
		history.Exercises[i] = domain.ExecutedExercise{
			ExerciseID:   ex.ID,
			Name:         ex.Name,
			ExecutedSets: sets,
		}
	}

	s.state = StateFinished
	return history, nil
}

// Cancel abandons the session, discarding all in-session data. Nothing is
// emitted.
func (s *Session) Cancel() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	s.executed = nil
	s.restUntil = time.Time{}
	s.state = StateCancelled
	return nil
}

func (s *Session) set(exerciseIndex, setIndex int) (*domain.ExecutedSet, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.executed) {
		return nil, ErrIndexOutOfRange
	}
	sets := s.executed[exerciseIndex]
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, ErrIndexOutOfRange
	}
	return &sets[setIndex], nil
}
