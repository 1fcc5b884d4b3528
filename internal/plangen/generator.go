package plangen

import (
	"context"
	"encoding/json"
	"fmt"

	"academiafit/gym-app/internal/catalog"
)

// Oracle produces a raw candidate plan for a generation request. The bytes
// are expected to be a JSON WorkoutPlan but carry no guarantee beyond
// "valid JSON": implementations call an external model.
type Oracle interface {
	GeneratePlan(ctx context.Context, req GenerationRequest) ([]byte, error)
}

// Generator runs the full generation pipeline: oracle call, decode,
// sanitization against the catalog.
type Generator struct {
	oracle  Oracle
	catalog *catalog.Catalog
}

func NewGenerator(oracle Oracle, cat *catalog.Catalog) *Generator {
	return &Generator{oracle: oracle, catalog: cat}
}

// Generate requests a plan from the oracle and returns the validated result
// together with the sanitization drops. Returns ErrGeneration (possibly
// wrapped) when the oracle output cannot be decoded into a plan or lacks
// the workouts field.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (*WorkoutPlan, []Drop, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	raw, err := g.oracle.GeneratePlan(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("plan generation: %w", err)
	}

	var candidate WorkoutPlan
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return Validate(&candidate, g.catalog)
}
