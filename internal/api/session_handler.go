package api

import (
	"errors"
	"net/http"

	"academiafit/gym-app/internal/service"
	"academiafit/gym-app/internal/session"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler exposes the live workout-execution session.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type StartSessionRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
}

type RecordSetRequest struct {
	ExerciseIndex int      `json:"exerciseIndex"`
	SetIndex      int      `json:"setIndex"`
	Field         string   `json:"field" binding:"required,oneof=weight repsDone"`
	Value         *float64 `json:"value"`
}

type ToggleSetRequest struct {
	ExerciseIndex int `json:"exerciseIndex"`
	SetIndex      int `json:"setIndex"`
}

// Start begins a session for one of the caller's workouts.
func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerID, ok := actorObjectID(c)
	if !ok {
		return
	}
	workoutID, ok := parseObjectID(c, req.WorkoutID, "workoutId")
	if !ok {
		return
	}

	snap, err := h.sessionService.Start(c.Request.Context(), ownerID, workoutID)
	if err != nil {
		writeSessionServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// Get returns the current session snapshot, rest timer included.
func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, func() (session.Snapshot, error) {
		ownerID, ok := actorObjectID(c)
		if !ok {
			return session.Snapshot{}, errAborted
		}
		return h.sessionService.Get(ownerID)
	})
}

// RecordSet writes a weight or rep count into one set of the session.
func (h *SessionHandler) RecordSet(c *gin.Context) {
	var req RecordSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.respond(c, func() (session.Snapshot, error) {
		ownerID, ok := actorObjectID(c)
		if !ok {
			return session.Snapshot{}, errAborted
		}
		return h.sessionService.RecordSet(ownerID, req.ExerciseIndex, req.SetIndex, session.SetField(req.Field), req.Value)
	})
}

// ToggleSet flips a set's completed flag. Completing a set starts the
// rest timer.
func (h *SessionHandler) ToggleSet(c *gin.Context) {
	var req ToggleSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.respond(c, func() (session.Snapshot, error) {
		ownerID, ok := actorObjectID(c)
		if !ok {
			return session.Snapshot{}, errAborted
		}
		return h.sessionService.ToggleSetComplete(ownerID, req.ExerciseIndex, req.SetIndex)
	})
}

// NextExercise advances to the next exercise.
func (h *SessionHandler) NextExercise(c *gin.Context) {
	h.respond(c, func() (session.Snapshot, error) {
		ownerID, ok := actorObjectID(c)
		if !ok {
			return session.Snapshot{}, errAborted
		}
		return h.sessionService.NextExercise(ownerID)
	})
}

// PreviousExercise steps back one exercise.
func (h *SessionHandler) PreviousExercise(c *gin.Context) {
	h.respond(c, func() (session.Snapshot, error) {
		ownerID, ok := actorObjectID(c)
		if !ok {
			return session.Snapshot{}, errAborted
		}
		return h.sessionService.PreviousExercise(ownerID)
	})
}

// Finish ends the session and persists its history record.
func (h *SessionHandler) Finish(c *gin.Context) {
	ownerID, ok := actorObjectID(c)
	if !ok {
		return
	}

	record, err := h.sessionService.Finish(c.Request.Context(), ownerID)
	if err != nil {
		writeSessionServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Cancel discards the session without recording anything.
func (h *SessionHandler) Cancel(c *gin.Context) {
	ownerID, ok := actorObjectID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Cancel(ownerID); err != nil {
		writeSessionServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// errAborted marks that the handler already wrote a response.
var errAborted = errors.New("response already written")

func (h *SessionHandler) respond(c *gin.Context, op func() (session.Snapshot, error)) {
	snap, err := op()
	if err != nil {
		if !errors.Is(err, errAborted) {
			writeSessionServiceError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, snap)
}

func parseObjectID(c *gin.Context, value, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeSessionServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionActive):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrNotInProgress):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrIndexOutOfRange), errors.Is(err, session.ErrUnknownSetField):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
