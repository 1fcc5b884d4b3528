package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout ("treino") is a named collection of exercises belonging to one
// student, optionally scheduled to a day of the week.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`   // The student the workout belongs to
	AuthorID  primitive.ObjectID `bson:"authorId" json:"authorId"` // Who created it: a trainer, or the student themself
	Objective string             `bson:"objective" json:"objective"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	DayOfWeek *int               `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"` // 0 (Sunday) - 6 (Saturday); nil when unscheduled
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SelfAuthored reports whether the owner created this workout themself,
// as opposed to it being prescribed by a trainer.
func (w *Workout) SelfAuthored() bool {
	return w.AuthorID == w.OwnerID
}
