package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one planned exercise inside a Workout. Exercises are embedded
// in their workout document rather than stored in their own collection.
// Name is guaranteed to exist in the exercise catalog for any workout that
// went through plan validation.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
	Sets        int                `bson:"sets" json:"sets"`
	RepRange    string             `bson:"repRange" json:"repRange"` // e.g. "8-12", "15-20"
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
