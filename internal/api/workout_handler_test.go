package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/plangen"
	"academiafit/gym-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubWorkoutService lets each test plug in just the method it exercises.
type stubWorkoutService struct {
	generatePlan func(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error)
	assignDay    func(ctx context.Context, ownerID, workoutID primitive.ObjectID, day *int) ([]domain.DayUpdate, error)
	deleteFn     func(ctx context.Context, actorID, workoutID primitive.ObjectID) error
}

func (s *stubWorkoutService) GeneratePlan(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error) {
	return s.generatePlan(ctx, req)
}

func (s *stubWorkoutService) SavePlan(ctx context.Context, ownerID, authorID primitive.ObjectID, plan *plangen.WorkoutPlan) ([]domain.Workout, error) {
	return nil, nil
}

func (s *stubWorkoutService) ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	return nil, nil
}

func (s *stubWorkoutService) CreateWorkout(ctx context.Context, ownerID, authorID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error) {
	return nil, nil
}

func (s *stubWorkoutService) UpdateWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID, objective string, exercises []domain.Exercise) (*domain.Workout, error) {
	return nil, nil
}

func (s *stubWorkoutService) DeleteWorkout(ctx context.Context, actorID, workoutID primitive.ObjectID) error {
	return s.deleteFn(ctx, actorID, workoutID)
}

func (s *stubWorkoutService) AssignDay(ctx context.Context, ownerID, workoutID primitive.ObjectID, requestedDay *int) ([]domain.DayUpdate, error) {
	return s.assignDay(ctx, ownerID, workoutID, requestedDay)
}

func (s *stubWorkoutService) ListHistory(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutHistory, error) {
	return nil, nil
}

// authAs injects the context normally set by AuthMiddleware.
func authAs(userID primitive.ObjectID, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID.Hex())
		c.Set(ContextUserRoleKey, role)
		c.Next()
	}
}

func newWorkoutTestRouter(svc service.WorkoutService, userID primitive.ObjectID, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWorkoutHandler(svc)
	group := router.Group("", authAs(userID, role))
	group.PUT("/workouts/:id/day", handler.AssignDay)
	group.DELETE("/workouts/:id", handler.DeleteWorkout)
	group.POST("/workouts/generate", handler.GeneratePlan)
	return router
}

func TestAssignDayEndpoint(t *testing.T) {
	userID := primitive.NewObjectID()
	workoutID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	var gotDay *int
	svc := &stubWorkoutService{
		assignDay: func(ctx context.Context, ownerID, wID primitive.ObjectID, day *int) ([]domain.DayUpdate, error) {
			if ownerID != userID || wID != workoutID {
				t.Errorf("AssignDay called with owner %v workout %v", ownerID, wID)
			}
			gotDay = day
			prev := 1
			return []domain.DayUpdate{
				{WorkoutID: wID, DayOfWeek: day},
				{WorkoutID: otherID, DayOfWeek: &prev},
			}, nil
		},
	}
	router := newWorkoutTestRouter(svc, userID, domain.RoleStudent)

	req := httptest.NewRequest(http.MethodPut, "/workouts/"+workoutID.Hex()+"/day", strings.NewReader(`{"dayOfWeek": 3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if gotDay == nil || *gotDay != 3 {
		t.Errorf("service received day %v, want 3", gotDay)
	}

	var resp struct {
		Updates []struct {
			WorkoutID string `json:"workoutId"`
			DayOfWeek *int   `json:"dayOfWeek"`
		} `json:"updates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Updates) != 2 {
		t.Fatalf("expected the swap batch in the response, got %+v", resp)
	}
}

func TestAssignDayEndpointNullUnschedules(t *testing.T) {
	userID := primitive.NewObjectID()
	workoutID := primitive.NewObjectID()

	called := false
	svc := &stubWorkoutService{
		assignDay: func(ctx context.Context, ownerID, wID primitive.ObjectID, day *int) ([]domain.DayUpdate, error) {
			called = true
			if day != nil {
				t.Errorf("expected nil day, got %v", *day)
			}
			return []domain.DayUpdate{{WorkoutID: wID}}, nil
		},
	}
	router := newWorkoutTestRouter(svc, userID, domain.RoleStudent)

	req := httptest.NewRequest(http.MethodPut, "/workouts/"+workoutID.Hex()+"/day", strings.NewReader(`{"dayOfWeek": null}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !called {
		t.Fatalf("status = %d, called = %v", w.Code, called)
	}
}

func TestAssignDayEndpointRejectsBadDay(t *testing.T) {
	userID := primitive.NewObjectID()
	workoutID := primitive.NewObjectID()
	router := newWorkoutTestRouter(&stubWorkoutService{}, userID, domain.RoleStudent)

	for _, body := range []string{`{"dayOfWeek": 7}`, `{"dayOfWeek": -1}`} {
		req := httptest.NewRequest(http.MethodPut, "/workouts/"+workoutID.Hex()+"/day", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestDeleteWorkoutEndpointErrorMapping(t *testing.T) {
	userID := primitive.NewObjectID()
	workoutID := primitive.NewObjectID()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"not found", service.ErrWorkoutNotFound, http.StatusNotFound},
		{"access denied", service.ErrWorkoutAccessDenied, http.StatusForbidden},
		{"success", nil, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubWorkoutService{
				deleteFn: func(ctx context.Context, actorID, wID primitive.ObjectID) error {
					return tt.serviceErr
				},
			}
			router := newWorkoutTestRouter(svc, userID, domain.RoleStudent)

			req := httptest.NewRequest(http.MethodDelete, "/workouts/"+workoutID.Hex(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestGenerateEndpointFailureIsBadGateway(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := &stubWorkoutService{
		generatePlan: func(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error) {
			return nil, nil, plangen.ErrGeneration
		},
	}
	router := newWorkoutTestRouter(svc, userID, domain.RoleStudent)

	body := `{"objective":"Hipertrofia","experienceLevel":"Iniciante","daysPerWeek":3}`
	req := httptest.NewRequest(http.MethodPost, "/workouts/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestGenerateEndpointReturnsWarnings(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := &stubWorkoutService{
		generatePlan: func(ctx context.Context, req plangen.GenerationRequest) (*plangen.WorkoutPlan, []plangen.Drop, error) {
			plan := &plangen.WorkoutPlan{
				PlanName: "Plano de Hipertrofia",
				Workouts: []plangen.CandidateWorkout{{Name: "Treino A"}},
			}
			return plan, []plangen.Drop{{Workout: "Treino A", Exercise: "Supino Inventado"}}, nil
		},
	}
	router := newWorkoutTestRouter(svc, userID, domain.RoleStudent)

	body := `{"objective":"Hipertrofia","experienceLevel":"Iniciante","daysPerWeek":3}`
	req := httptest.NewRequest(http.MethodPost, "/workouts/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp GeneratePlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Plan == nil || resp.Plan.PlanName != "Plano de Hipertrofia" {
		t.Errorf("plan missing from response: %+v", resp)
	}
	if len(resp.Warnings) != 1 || !strings.Contains(resp.Warnings[0], "Supino Inventado") {
		t.Errorf("warnings = %v", resp.Warnings)
	}
}
