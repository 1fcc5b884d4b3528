package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/repository"
	"academiafit/gym-app/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession = errors.New("no active workout session")
	ErrSessionActive   = errors.New("a workout session is already in progress")
)

// SessionService runs workout sessions. One live session per student: each
// student's session is independent; there is no cross-user shared state
// beyond the map guarding concurrent API calls from the same account.
type SessionService interface {
	Start(ctx context.Context, ownerID, workoutID primitive.ObjectID) (session.Snapshot, error)
	Get(ownerID primitive.ObjectID) (session.Snapshot, error)
	RecordSet(ownerID primitive.ObjectID, exerciseIndex, setIndex int, field session.SetField, value *float64) (session.Snapshot, error)
	ToggleSetComplete(ownerID primitive.ObjectID, exerciseIndex, setIndex int) (session.Snapshot, error)
	NextExercise(ownerID primitive.ObjectID) (session.Snapshot, error)
	PreviousExercise(ownerID primitive.ObjectID) (session.Snapshot, error)

	// Finish ends the session, persists its history record and returns it.
	Finish(ctx context.Context, ownerID primitive.ObjectID) (*domain.WorkoutHistory, error)

	// Cancel abandons the session; nothing is persisted.
	Cancel(ownerID primitive.ObjectID) error
}

// sessionService implements SessionService.
type sessionService struct {
	workoutRepo repository.WorkoutRepository
	historyRepo repository.HistoryRepository

	mu       sync.Mutex
	sessions map[primitive.ObjectID]*session.Session // keyed by owner

	sessionOpts []session.Option
}

// NewSessionService creates a new session manager. Extra session options
// (e.g. a fake clock) are passed through to every created session.
func NewSessionService(workoutRepo repository.WorkoutRepository, historyRepo repository.HistoryRepository, opts ...session.Option) SessionService {
	return &sessionService{
		workoutRepo: workoutRepo,
		historyRepo: historyRepo,
		sessions:    make(map[primitive.ObjectID]*session.Session),
		sessionOpts: opts,
	}
}

func (s *sessionService) Start(ctx context.Context, ownerID, workoutID primitive.ObjectID) (session.Snapshot, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return session.Snapshot{}, ErrWorkoutNotFound
		}
		return session.Snapshot{}, err
	}
	if workout.OwnerID != ownerID {
		return session.Snapshot{}, ErrWorkoutAccessDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[ownerID]; ok && existing.State() == session.StateInProgress {
		return session.Snapshot{}, ErrSessionActive
	}

	sess := session.New(*workout, s.sessionOpts...)
	if err := sess.Start(); err != nil {
		return session.Snapshot{}, err
	}
	s.sessions[ownerID] = sess

	slog.Info("workout session started", "owner", ownerID.Hex(), "workout", workoutID.Hex(), "session", sess.ID())
	return sess.Snapshot(), nil
}

func (s *sessionService) Get(ownerID primitive.ObjectID) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		return session.Snapshot{}, ErrNoActiveSession
	}
	return sess.Snapshot(), nil
}

func (s *sessionService) RecordSet(ownerID primitive.ObjectID, exerciseIndex, setIndex int, field session.SetField, value *float64) (session.Snapshot, error) {
	return s.withSession(ownerID, func(sess *session.Session) error {
		return sess.RecordSet(exerciseIndex, setIndex, field, value)
	})
}

func (s *sessionService) ToggleSetComplete(ownerID primitive.ObjectID, exerciseIndex, setIndex int) (session.Snapshot, error) {
	return s.withSession(ownerID, func(sess *session.Session) error {
		_, err := sess.ToggleSetComplete(exerciseIndex, setIndex)
		return err
	})
}

func (s *sessionService) NextExercise(ownerID primitive.ObjectID) (session.Snapshot, error) {
	return s.withSession(ownerID, func(sess *session.Session) error {
		return sess.NextExercise()
	})
}

func (s *sessionService) PreviousExercise(ownerID primitive.ObjectID) (session.Snapshot, error) {
	return s.withSession(ownerID, func(sess *session.Session) error {
		return sess.PreviousExercise()
	})
}

func (s *sessionService) Finish(ctx context.Context, ownerID primitive.ObjectID) (*domain.WorkoutHistory, error) {
	s.mu.Lock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}

	history, err := sess.Finish()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	delete(s.sessions, ownerID)
	s.mu.Unlock()

	id, err := s.historyRepo.Create(ctx, history)
	if err != nil {
		// The session is already terminal; the record is lost unless the
		// caller retries persistence itself. Surface the failure.
		return nil, fmt.Errorf("persist workout history: %w", err)
	}
	history.ID = id

	slog.Info("workout session finished",
		"owner", ownerID.Hex(), "workout", history.WorkoutID.Hex(), "minutes", history.DurationMinutes)
	return history, nil
}

func (s *sessionService) Cancel(ownerID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		return ErrNoActiveSession
	}
	if err := sess.Cancel(); err != nil {
		return err
	}
	delete(s.sessions, ownerID)
	slog.Info("workout session cancelled", "owner", ownerID.Hex())
	return nil
}

func (s *sessionService) withSession(ownerID primitive.ObjectID, fn func(*session.Session) error) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		return session.Snapshot{}, ErrNoActiveSession
	}
	if err := fn(sess); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}
