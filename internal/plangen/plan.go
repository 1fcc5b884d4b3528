// Package plangen turns AI-generated workout suggestions into plans that are
// safe to persist. The generation oracle is treated as unreliable input:
// nothing it returns reaches the store without passing through Validate.
package plangen

import (
	"errors"
	"fmt"
)

// Objectives and experience levels accepted in a generation request. These
// are the values the clients present; the oracle receives them verbatim.
const (
	ObjectiveHypertrophy = "Hipertrofia"
	ObjectiveWeightLoss  = "Perda de Peso"
	ObjectiveStrength    = "Força"

	LevelBeginner     = "Iniciante"
	LevelIntermediate = "Intermediário"
	LevelAdvanced     = "Avançado"
)

// GenerationRequest is what the student fills in to ask for a plan.
type GenerationRequest struct {
	Objective       string `json:"objective"`
	ExperienceLevel string `json:"experienceLevel"`
	DaysPerWeek     int    `json:"daysPerWeek"`
	Notes           string `json:"notes,omitempty"` // e.g. "Lesão no joelho direito"
}

// Validate checks the request against the accepted enums and ranges.
func (r GenerationRequest) Validate() error {
	switch r.Objective {
	case ObjectiveHypertrophy, ObjectiveWeightLoss, ObjectiveStrength:
	default:
		return fmt.Errorf("unknown objective %q", r.Objective)
	}
	switch r.ExperienceLevel {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("unknown experience level %q", r.ExperienceLevel)
	}
	if r.DaysPerWeek < 1 || r.DaysPerWeek > 7 {
		return errors.New("daysPerWeek must be between 1 and 7")
	}
	return nil
}

// CandidateExercise is an exercise as proposed by the oracle. Untrusted:
// Name may not exist in the catalog until validation filters it.
type CandidateExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Sets        int    `json:"sets"`
	RepRange    string `json:"repRange"`
	Notes       string `json:"notes,omitempty"`
}

// CandidateWorkout is one workout of a candidate plan.
type CandidateWorkout struct {
	Name         string              `json:"name"`
	Objective    string              `json:"objective"`
	SuggestedDay int                 `json:"suggestedDay"` // 0 (Sunday) - 6 (Saturday)
	Exercises    []CandidateExercise `json:"exercises"`
}

// WorkoutPlan is the oracle's output shape, before and after validation.
// A nil Workouts slice means the oracle response was structurally unusable;
// an empty one means every workout was filtered away.
type WorkoutPlan struct {
	PlanName string             `json:"planName"`
	Workouts []CandidateWorkout `json:"workouts"`
}
