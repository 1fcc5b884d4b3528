package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/plangen"
	"academiafit/gym-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets" binding:"required,min=1"`
	RepRange    string `json:"repRange" binding:"required"`
	Notes       string `json:"notes"`
}

type CreateWorkoutRequest struct {
	// OwnerID is honored only for trainers prescribing to a student;
	// students always own what they create.
	OwnerID   string            `json:"ownerId"`
	Objective string            `json:"objective" binding:"required"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

type UpdateWorkoutRequest struct {
	Objective string            `json:"objective" binding:"required"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

// AssignDayRequest carries the requested slot. A null dayOfWeek unschedules.
type AssignDayRequest struct {
	DayOfWeek *int `json:"dayOfWeek"`
}

type GeneratePlanRequest struct {
	Objective       string `json:"objective" binding:"required"`
	ExperienceLevel string `json:"experienceLevel" binding:"required"`
	DaysPerWeek     int    `json:"daysPerWeek" binding:"required,min=1,max=7"`
	Notes           string `json:"notes"`
}

type GeneratePlanResponse struct {
	Plan *plangen.WorkoutPlan `json:"plan"`
	// Warnings lists exercises removed during sanitization, so the client
	// can tell the student the plan was adjusted.
	Warnings []string `json:"warnings,omitempty"`
}

type SavePlanRequest struct {
	PlanName string                     `json:"planName"`
	Workouts []plangen.CandidateWorkout `json:"workouts" binding:"required"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Sets        int    `json:"sets"`
	RepRange    string `json:"repRange"`
	Notes       string `json:"notes,omitempty"`
}

type WorkoutResponse struct {
	ID        string             `json:"id"`
	OwnerID   string             `json:"ownerId"`
	AuthorID  string             `json:"authorId"`
	Objective string             `json:"objective"`
	Exercises []ExerciseResponse `json:"exercises"`
	DayOfWeek *int               `json:"dayOfWeek"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// MapWorkoutToResponse converts a domain.Workout to its DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	resp := WorkoutResponse{
		ID:        w.ID.Hex(),
		OwnerID:   w.OwnerID.Hex(),
		AuthorID:  w.AuthorID.Hex(),
		Objective: w.Objective,
		DayOfWeek: w.DayOfWeek,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	for _, ex := range w.Exercises {
		resp.Exercises = append(resp.Exercises, ExerciseResponse{
			ID:          ex.ID.Hex(),
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        ex.Sets,
			RepRange:    ex.RepRange,
			Notes:       ex.Notes,
		})
	}
	return resp
}

func mapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func mapExercises(reqs []ExerciseRequest) []domain.Exercise {
	exercises := make([]domain.Exercise, len(reqs))
	for i, r := range reqs {
		exercises[i] = domain.Exercise{
			Name:        r.Name,
			MuscleGroup: r.MuscleGroup,
			Sets:        r.Sets,
			RepRange:    r.RepRange,
			Notes:       r.Notes,
		}
	}
	return exercises
}

// --- Handler Methods ---

// ListWorkouts returns the authenticated user's workouts. Trainers can list
// a student's workouts with ?ownerId=.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	ownerID, err := resolveOwnerID(c, c.Query("ownerId"))
	if err != nil {
		return // response already written
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list workouts.")
		return
	}
	c.JSON(http.StatusOK, mapWorkoutsToResponse(workouts))
}

// CreateWorkout persists a manually built workout.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actorID, ok := actorObjectID(c)
	if !ok {
		return
	}
	ownerID, err := resolveOwnerID(c, req.OwnerID)
	if err != nil {
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), ownerID, actorID, req.Objective, mapExercises(req.Exercises))
	if err != nil {
		writeWorkoutServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// UpdateWorkout rewrites a workout's objective and exercises.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actorID, ok := actorObjectID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), actorID, workoutID, req.Objective, mapExercises(req.Exercises))
	if err != nil {
		writeWorkoutServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout removes a workout.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	actorID, ok := actorObjectID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), actorID, workoutID); err != nil {
		writeWorkoutServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignDay schedules (or unschedules) a workout. Conflicts with another
// workout on the same day are resolved by swapping slots.
func (h *WorkoutHandler) AssignDay(c *gin.Context) {
	var req AssignDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		abortWithError(c, http.StatusBadRequest, "dayOfWeek must be between 0 and 6, or null")
		return
	}

	ownerID, err := resolveOwnerID(c, c.Query("ownerId"))
	if err != nil {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	updates, err := h.workoutService.AssignDay(c.Request.Context(), ownerID, workoutID, req.DayOfWeek)
	if err != nil {
		writeWorkoutServiceError(c, err)
		return
	}

	type dayUpdateResponse struct {
		WorkoutID string `json:"workoutId"`
		DayOfWeek *int   `json:"dayOfWeek"`
	}
	resp := make([]dayUpdateResponse, len(updates))
	for i, u := range updates {
		resp[i] = dayUpdateResponse{WorkoutID: u.WorkoutID.Hex(), DayOfWeek: u.DayOfWeek}
	}
	c.JSON(http.StatusOK, gin.H{"updates": resp})
}

// GeneratePlan runs AI generation and returns the sanitized plan without
// persisting anything. The client reviews it and calls SavePlan.
func (h *WorkoutHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, drops, err := h.workoutService.GeneratePlan(c.Request.Context(), plangen.GenerationRequest{
		Objective:       req.Objective,
		ExperienceLevel: req.ExperienceLevel,
		DaysPerWeek:     req.DaysPerWeek,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, plangen.ErrGeneration) {
			abortWithError(c, http.StatusBadGateway, "The generator did not return a usable plan. Try again.")
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	resp := GeneratePlanResponse{Plan: plan}
	for _, d := range drops {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("removed unknown exercise %q from %q", d.Exercise, d.Workout))
	}
	c.JSON(http.StatusOK, resp)
}

// SavePlan persists a reviewed plan as scheduled workouts.
func (h *WorkoutHandler) SavePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	actorID, ok := actorObjectID(c)
	if !ok {
		return
	}
	ownerID, err := resolveOwnerID(c, c.Query("ownerId"))
	if err != nil {
		return
	}

	saved, err := h.workoutService.SavePlan(c.Request.Context(), ownerID, actorID, &plangen.WorkoutPlan{
		PlanName: req.PlanName,
		Workouts: req.Workouts,
	})
	if err != nil {
		if errors.Is(err, plangen.ErrGeneration) {
			abortWithError(c, http.StatusBadRequest, "Plan has no workouts to save.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save plan.")
		}
		return
	}
	c.JSON(http.StatusCreated, mapWorkoutsToResponse(saved))
}

// ListHistory returns the owner's finished-session records, newest first.
func (h *WorkoutHandler) ListHistory(c *gin.Context) {
	ownerID, err := resolveOwnerID(c, c.Query("ownerId"))
	if err != nil {
		return
	}

	records, err := h.workoutService.ListHistory(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list history.")
		return
	}
	c.JSON(http.StatusOK, records)
}

// --- Helpers ---

// actorObjectID extracts the authenticated user's ID. Writes the error
// response itself and returns false on failure.
func actorObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// resolveOwnerID decides whose workouts an operation targets. Trainers may
// act on behalf of a student by supplying that student's ID; everyone else
// acts only on their own data.
func resolveOwnerID(c *gin.Context, requested string) (primitive.ObjectID, error) {
	actorID, ok := actorObjectID(c)
	if !ok {
		return primitive.NilObjectID, errors.New("unauthenticated")
	}
	if requested == "" {
		return actorID, nil
	}

	role, err := getUserRoleFromContext(c)
	if err != nil || role != domain.RoleTrainer {
		if requested != actorID.Hex() {
			abortWithError(c, http.StatusForbidden, "Only trainers can act on another user's workouts.")
			return primitive.NilObjectID, errors.New("forbidden")
		}
		return actorID, nil
	}

	ownerID, err := primitive.ObjectIDFromHex(requested)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ownerId format.")
		return primitive.NilObjectID, err
	}
	return ownerID, nil
}

func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s format.", param))
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeWorkoutServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUnknownExercise), errors.Is(err, service.ErrEmptyWorkout):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
