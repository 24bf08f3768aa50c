package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
)

func TestAccessService_Authorize(t *testing.T) {
	service := NewAccessService()

	admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.UserRoleAdmin}
	member := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.UserRoleMember}
	otherID := uuid.New()

	tests := []struct {
		name     string
		actor    *models.User
		resource Resource
		action   Action
		owner    uuid.UUID
		want     Kind
	}{
		{"admin creates workout", admin, ResourceWorkout, ActionCreate, uuid.Nil, ""},
		{"admin deletes user", admin, ResourceUser, ActionDelete, otherID, ""},
		{"admin toggles member workout", admin, ResourceWorkout, ActionToggle, member.ID, ""},
		{"member toggles own workout", member, ResourceWorkout, ActionToggle, member.ID, ""},
		{"member toggles other workout", member, ResourceWorkout, ActionToggle, otherID, KindForbidden},
		{"member views own workout", member, ResourceWorkout, ActionRead, member.ID, ""},
		{"member views other workout", member, ResourceWorkout, ActionRead, otherID, KindForbidden},
		{"member creates workout", member, ResourceWorkout, ActionCreate, member.ID, KindForbidden},
		{"member updates workout", member, ResourceWorkout, ActionUpdate, member.ID, KindForbidden},
		{"member lists all workouts", member, ResourceWorkout, ActionList, uuid.Nil, KindForbidden},
		{"member lists events", member, ResourceEvent, ActionList, uuid.Nil, ""},
		{"member views event", member, ResourceEvent, ActionRead, uuid.Nil, ""},
		{"member creates event", member, ResourceEvent, ActionCreate, uuid.Nil, KindForbidden},
		{"member views own profile", member, ResourceUser, ActionRead, member.ID, ""},
		{"member updates own profile", member, ResourceUser, ActionUpdate, member.ID, ""},
		{"member views other profile", member, ResourceUser, ActionRead, otherID, KindForbidden},
		{"member lists users", member, ResourceUser, ActionList, uuid.Nil, KindForbidden},
		{"member deletes self", member, ResourceUser, ActionDelete, member.ID, KindForbidden},
		{"member reads own progress", member, ResourceProgress, ActionRead, member.ID, ""},
		{"member reads other progress", member, ResourceProgress, ActionRead, otherID, KindForbidden},
		{"member records snapshot", member, ResourceSnapshot, ActionCreate, member.ID, KindForbidden},
		{"anonymous", nil, ResourceEvent, ActionList, uuid.Nil, KindUnauthenticated},
		{"unknown role", &models.User{Role: "guest"}, ResourceEvent, ActionList, uuid.Nil, KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Authorize(tt.actor, tt.resource, tt.action, tt.owner)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected access, got %v", err)
				}
				return
			}
			assertKind(t, err, tt.want)
		})
	}
}
