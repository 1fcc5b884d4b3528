package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"academiafit/gym-app/internal/catalog"
	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/plangen"
	"academiafit/gym-app/internal/repository"
	"academiafit/gym-app/internal/scheduler"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrWorkoutAccessDenied = errors.New("access denied to modify or delete this workout")
	ErrUnknownExercise     = errors.New("exercise is not in the catalog")
	ErrEmptyWorkout        = errors.New("workout must contain at least one exercise")
)

type WorkoutService interface {
	// GeneratePlan runs the AI generation pipeline and returns the validated
	// plan plus the sanitization drops. Nothing is persisted.
	GeneratePlan(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error)

	// SavePlan persists a (re-validated) plan as workouts owned by ownerID
	// and schedules each workout onto its suggested day.
	SavePlan(ctx context.Context, ownerID, authorID primitive.ObjectID, plan *plangen.WorkoutPlan) ([]domain.Workout, error)

	ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	CreateWorkout(ctx context.Context, ownerID, authorID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID) error

	// AssignDay moves a workout to a day of the week (nil unschedules),
	// swapping with any current occupant of that day. All resulting updates
	// are persisted atomically.
	AssignDay(ctx context.Context, ownerID, workoutID primitive.ObjectID, requestedDay *int) ([]domain.DayUpdate, error)

	ListHistory(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutHistory, error)
}

// workoutService implements WorkoutService.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	historyRepo repository.HistoryRepository
	generator   *plangen.Generator
	catalog     *catalog.Catalog
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	historyRepo repository.HistoryRepository,
	generator *plangen.Generator,
	cat *catalog.Catalog,
) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		historyRepo: historyRepo,
		generator:   generator,
		catalog:     cat,
	}
}

func (s *workoutService) GeneratePlan(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error) {
	plan, drops, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("generated workout plan",
		"plan", plan.PlanName, "workouts", len(plan.Workouts), "dropped", len(drops))
	return plan, drops, nil
}

// SavePlan persists a candidate plan. The plan is validated again here: the
// catalog check is a mandatory boundary in front of the store, and the plan
// may have been edited by the client since generation.
func (s *workoutService) SavePlan(ctx context.Context, ownerID, authorID primitive.ObjectID, plan *plangen.WorkoutPlan) ([]domain.Workout, error) {
	validated, _, err := plangen.Validate(plan, s.catalog)
	if err != nil {
		return nil, err
	}

	var saved []domain.Workout
	for _, cw := range validated.Workouts {
		workout := &domain.Workout{
			OwnerID:   ownerID,
			AuthorID:  authorID,
			Objective: planObjective(validated.PlanName, cw),
			Exercises: candidateExercises(cw),
		}
		id, err := s.workoutRepo.Create(ctx, workout)
		if err != nil {
			return saved, fmt.Errorf("persist workout %q: %w", cw.Name, err)
		}
		workout.ID = id

		if cw.SuggestedDay >= 0 && cw.SuggestedDay <= 6 {
			day := cw.SuggestedDay
			updates, err := s.AssignDay(ctx, ownerID, id, &day)
			if err != nil {
				return saved, fmt.Errorf("schedule workout %q: %w", cw.Name, err)
			}
			applyDayUpdates(workout, updates)
		}
		saved = append(saved, *workout)
	}
	return saved, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID cannot be nil")
	}
	return s.workoutRepo.GetByOwnerID(ctx, ownerID)
}

func (s *workoutService) CreateWorkout(ctx context.Context, ownerID, authorID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error) {
	if ownerID == primitive.NilObjectID || authorID == primitive.NilObjectID {
		return nil, errors.New("owner ID and author ID are required")
	}
	if err := s.checkExercises(exercises); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		OwnerID:   ownerID,
		AuthorID:  authorID,
		Objective: objective,
		Exercises: exercises,
	}
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id
	return s.workoutRepo.GetByID(ctx, id)
}

func (s *workoutService) UpdateWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error) {
	if err := s.checkExercises(exercises); err != nil {
		return nil, err
	}

	existing, err := s.getForActor(ctx, actorID, workoutID)
	if err != nil {
		return nil, err
	}

	existing.Objective = objective
	existing.Exercises = exercises
	if err := s.workoutRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteWorkout removes a workout. The author can always delete; the owner
// can delete only workouts they authored themself. A student cannot remove
// a trainer-prescribed workout.
func (s *workoutService) DeleteWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID) error {
	workout, err := s.getForActor(ctx, actorID, workoutID)
	if err != nil {
		return err
	}
	if actorID == workout.OwnerID && !workout.SelfAuthored() {
		return ErrWorkoutAccessDenied
	}

	err = s.workoutRepo.Delete(ctx, workoutID, workout.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

func (s *workoutService) AssignDay(ctx context.Context, ownerID, workoutID primitive.ObjectID, requestedDay *int) ([]domain.DayUpdate, error) {
	all, err := s.workoutRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updates, err := scheduler.AssignDay(ownerID, workoutID, requestedDay, all)
	if err != nil {
		if errors.Is(err, scheduler.ErrWorkoutNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if err := s.workoutRepo.BatchUpdateDays(ctx, updates); err != nil {
		return nil, fmt.Errorf("apply schedule updates: %w", err)
	}
	return updates, nil
}

func (s *workoutService) ListHistory(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutHistory, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID cannot be nil")
	}
	return s.historyRepo.GetByOwnerID(ctx, ownerID)
}

// checkExercises enforces the catalog whitelist on manually built workouts.
func (s *workoutService) checkExercises(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return ErrEmptyWorkout
	}
	for _, ex := range exercises {
		if !s.catalog.Contains(ex.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownExercise, ex.Name)
		}
	}
	return nil
}

// getForActor loads a workout and checks the actor is its owner or author.
func (s *workoutService) getForActor(ctx context.Context, actorID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.OwnerID != actorID && workout.AuthorID != actorID {
		return nil, ErrWorkoutAccessDenied
	}
	return workout, nil
}

func candidateExercises(cw plangen.CandidateWorkout) []domain.Exercise {
	exercises := make([]domain.Exercise, len(cw.Exercises))
	for i, ce := range cw.Exercises {
		exercises[i] = domain.Exercise{
			Name:        ce.Name,
			MuscleGroup: ce.MuscleGroup,
			Sets:        ce.Sets,
			RepRange:    ce.RepRange,
			Notes:       ce.Notes,
		}
	}
	return exercises
}

func planObjective(planName string, cw plangen.CandidateWorkout) string {
	if cw.Name != "" {
		return cw.Name
	}
	if cw.Objective != "" {
		return cw.Objective
	}
	return planName
}

func applyDayUpdates(workout *domain.Workout, updates []domain.DayUpdate) {
	for _, u := range updates {
		if u.WorkoutID == workout.ID {
			workout.DayOfWeek = u.DayOfWeek
		}
	}
}
