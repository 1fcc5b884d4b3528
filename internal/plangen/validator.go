package plangen

import (
	"errors"
	"log/slog"

	"academiafit/gym-app/internal/catalog"
)

// ErrGeneration means the oracle response was structurally unusable: it had
// no workouts field at all. Exercise-level mismatches never cause this; they
// are filtered out instead.
var ErrGeneration = errors.New("generator did not return a usable workout plan")

// Drop records one exercise removed during sanitization. Drops are
// diagnostics, not failures: the caller may use them to tell the student
// that the plan was adjusted.
type Drop struct {
	Workout  string
	Exercise string
}

// Validate sanitizes a candidate plan against the catalog.
//
// Every exercise whose name is not cataloged (exact, case-sensitive match)
// is removed, and any workout left without exercises is removed with it.
// The plan structure is otherwise returned unchanged. The input is not
// mutated.
func Validate(plan *WorkoutPlan, cat *catalog.Catalog) (*WorkoutPlan, []Drop, error) {
	if plan == nil || plan.Workouts == nil {
		return nil, nil, ErrGeneration
	}

	var drops []Drop
	out := &WorkoutPlan{
		PlanName: plan.PlanName,
		Workouts: make([]CandidateWorkout, 0, len(plan.Workouts)),
	}

	for _, w := range plan.Workouts {
		kept := make([]CandidateExercise, 0, len(w.Exercises))
		for _, ex := range w.Exercises {
			if !cat.Contains(ex.Name) {
				slog.Warn("dropping uncataloged exercise from generated plan",
					"workout", w.Name, "exercise", ex.Name)
				drops = append(drops, Drop{Workout: w.Name, Exercise: ex.Name})
				continue
			}
			kept = append(kept, ex)
		}
		if len(kept) == 0 {
			slog.Warn("dropping generated workout with no valid exercises", "workout", w.Name)
			continue
		}
		w.Exercises = kept
		out.Workouts = append(out.Workouts, w)
	}

	return out, drops, nil
}
