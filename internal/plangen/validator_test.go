package plangen

import (
	"errors"
	"testing"

	"academiafit/gym-app/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Group{
		{
			MuscleGroup: "Pernas (Quadríceps/Glúteos)",
			Exercises:   []catalog.Entry{{Name: "Agachamento Livre"}, {Name: "Leg Press 45"}},
		},
		{
			MuscleGroup: "Peito",
			Exercises:   []catalog.Entry{{Name: "Supino Reto com Barra"}},
		},
	})
}

func TestValidateKeepsCatalogedExercises(t *testing.T) {
	plan := &WorkoutPlan{
		PlanName: "Treino ABC",
		Workouts: []CandidateWorkout{
			{
				Name:      "Treino A",
				Exercises: []CandidateExercise{{Name: "Agachamento Livre", Sets: 4, RepRange: "8-12"}},
			},
		},
	}

	got, drops, err := Validate(plan, testCatalog())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(drops) != 0 {
		t.Errorf("expected no drops, got %v", drops)
	}
	if len(got.Workouts) != 1 || len(got.Workouts[0].Exercises) != 1 {
		t.Fatalf("plan shape changed: %+v", got)
	}
	if got.PlanName != "Treino ABC" {
		t.Errorf("PlanName = %q, want %q", got.PlanName, "Treino ABC")
	}
}

func TestValidateDropsUnknownExercise(t *testing.T) {
	plan := &WorkoutPlan{
		Workouts: []CandidateWorkout{
			{
				Name: "Treino A",
				Exercises: []CandidateExercise{
					{Name: "Agachamento Livre"},
					{Name: "Supino Inventado"}, // not in the catalog
				},
			},
		},
	}

	got, drops, err := Validate(plan, testCatalog())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(got.Workouts[0].Exercises) != 1 || got.Workouts[0].Exercises[0].Name != "Agachamento Livre" {
		t.Errorf("expected only the cataloged exercise to survive, got %+v", got.Workouts[0].Exercises)
	}
	if len(drops) != 1 || drops[0].Exercise != "Supino Inventado" || drops[0].Workout != "Treino A" {
		t.Errorf("unexpected drops: %+v", drops)
	}
}

func TestValidateMatchIsCaseSensitive(t *testing.T) {
	plan := &WorkoutPlan{
		Workouts: []CandidateWorkout{
			{Name: "Treino A", Exercises: []CandidateExercise{{Name: "agachamento livre"}}},
		},
	}

	got, _, err := Validate(plan, testCatalog())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(got.Workouts) != 0 {
		t.Errorf("lowercased name must not match the catalog")
	}
}

func TestValidateDropsEmptiedWorkout(t *testing.T) {
	plan := &WorkoutPlan{
		Workouts: []CandidateWorkout{
			{Name: "Treino A", Exercises: []CandidateExercise{{Name: "Supino Inventado"}}},
			{Name: "Treino B", Exercises: []CandidateExercise{{Name: "Leg Press 45"}}},
		},
	}

	got, drops, err := Validate(plan, testCatalog())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(got.Workouts) != 1 || got.Workouts[0].Name != "Treino B" {
		t.Errorf("workout with no valid exercises must be removed, got %+v", got.Workouts)
	}
	if len(drops) != 1 {
		t.Errorf("expected 1 drop, got %d", len(drops))
	}
}

func TestValidateAllWorkoutsFilteredIsNotFatal(t *testing.T) {
	// An empty result is still a valid (if useless) plan. Only a missing
	// workouts field is fatal.
	plan := &WorkoutPlan{
		Workouts: []CandidateWorkout{
			{Name: "Treino A", Exercises: []CandidateExercise{{Name: "Supino Inventado"}}},
		},
	}

	got, _, err := Validate(plan, testCatalog())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got.Workouts == nil || len(got.Workouts) != 0 {
		t.Errorf("expected empty non-nil Workouts, got %+v", got.Workouts)
	}
}

func TestValidateStructurallyUnusable(t *testing.T) {
	tests := []struct {
		name string
		plan *WorkoutPlan
	}{
		{"nil plan", nil},
		{"missing workouts field", &WorkoutPlan{PlanName: "Treino"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Validate(tt.plan, testCatalog())
			if !errors.Is(err, ErrGeneration) {
				t.Errorf("Validate() error = %v, want ErrGeneration", err)
			}
		})
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	plan := &WorkoutPlan{
		Workouts: []CandidateWorkout{
			{
				Name: "Treino A",
				Exercises: []CandidateExercise{
					{Name: "Supino Inventado"},
					{Name: "Agachamento Livre"},
				},
			},
		},
	}

	if _, _, err := Validate(plan, testCatalog()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(plan.Workouts[0].Exercises) != 2 {
		t.Errorf("input plan was mutated")
	}
}
