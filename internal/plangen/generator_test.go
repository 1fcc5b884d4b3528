package plangen

import (
	"context"
	"errors"
	"testing"
)

type fakeOracle struct {
	raw []byte
	err error
}

func (f fakeOracle) GeneratePlan(ctx context.Context, req GenerationRequest) ([]byte, error) {
	return f.raw, f.err
}

func validRequest() GenerationRequest {
	return GenerationRequest{
		Objective:       ObjectiveHypertrophy,
		ExperienceLevel: LevelBeginner,
		DaysPerWeek:     3,
	}
}

func TestGeneratePipeline(t *testing.T) {
	raw := []byte(`{
		"planName": "Treino ABC",
		"workouts": [
			{
				"name": "Treino A",
				"objective": "Hipertrofia",
				"suggestedDay": 1,
				"exercises": [
					{"name": "Agachamento Livre", "sets": 4, "repRange": "8-12"},
					{"name": "Supino Inventado", "sets": 3, "repRange": "10-15"}
				]
			}
		]
	}`)

	gen := NewGenerator(fakeOracle{raw: raw}, testCatalog())
	plan, drops, err := gen.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(plan.Workouts) != 1 || len(plan.Workouts[0].Exercises) != 1 {
		t.Fatalf("sanitization not applied: %+v", plan)
	}
	if plan.Workouts[0].SuggestedDay != 1 {
		t.Errorf("SuggestedDay = %d, want 1", plan.Workouts[0].SuggestedDay)
	}
	if len(drops) != 1 || drops[0].Exercise != "Supino Inventado" {
		t.Errorf("unexpected drops: %+v", drops)
	}
}

func TestGenerateRejectsBadRequest(t *testing.T) {
	tests := []struct {
		name string
		req  GenerationRequest
	}{
		{"bad objective", GenerationRequest{Objective: "Cardio", ExperienceLevel: LevelBeginner, DaysPerWeek: 3}},
		{"bad level", GenerationRequest{Objective: ObjectiveStrength, ExperienceLevel: "Expert", DaysPerWeek: 3}},
		{"zero days", GenerationRequest{Objective: ObjectiveStrength, ExperienceLevel: LevelAdvanced, DaysPerWeek: 0}},
		{"too many days", GenerationRequest{Objective: ObjectiveStrength, ExperienceLevel: LevelAdvanced, DaysPerWeek: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(fakeOracle{raw: []byte(`{"workouts":[]}`)}, testCatalog())
			if _, _, err := gen.Generate(context.Background(), tt.req); err == nil {
				t.Error("Generate() expected an error")
			}
		})
	}
}

func TestGenerateOracleFailure(t *testing.T) {
	oracleErr := errors.New("model unavailable")
	gen := NewGenerator(fakeOracle{err: oracleErr}, testCatalog())

	_, _, err := gen.Generate(context.Background(), validRequest())
	if !errors.Is(err, oracleErr) {
		t.Errorf("Generate() error = %v, want wrapped oracle error", err)
	}
}

func TestGenerateUnusableOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "I cannot generate a plan today."},
		{"missing workouts field", `{"planName": "Treino"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(fakeOracle{raw: []byte(tt.raw)}, testCatalog())
			_, _, err := gen.Generate(context.Background(), validRequest())
			if !errors.Is(err, ErrGeneration) {
				t.Errorf("Generate() error = %v, want ErrGeneration", err)
			}
		})
	}
}
