package services

import (
	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
)

type Resource string

const (
	ResourceUser     Resource = "user"
	ResourceWorkout  Resource = "workout"
	ResourceEvent    Resource = "event"
	ResourceProgress Resource = "progress"
	ResourceSnapshot Resource = "snapshot"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionToggle Action = "toggle"
)

// AccessService decides whether an authenticated actor may perform an action
// on a resource. ownerID is the member the resource belongs to (the workout
// owner, the profile, the trainee) and uuid.Nil for collections.
type AccessService struct{}

func NewAccessService() *AccessService {
	return &AccessService{}
}

func (a *AccessService) Authorize(actor *models.User, resource Resource, action Action, ownerID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.IsAdmin() {
		return nil
	}
	if !actor.IsMember() {
		return Forbidden("unknown role")
	}

	self := ownerID != uuid.Nil && ownerID == actor.ID

	switch resource {
	case ResourceUser:
		if (action == ActionRead || action == ActionUpdate) && self {
			return nil
		}
	case ResourceWorkout:
		if (action == ActionRead || action == ActionList || action == ActionToggle) && self {
			return nil
		}
	case ResourceEvent:
		if action == ActionRead || action == ActionList {
			return nil
		}
	case ResourceProgress, ResourceSnapshot:
		if action == ActionRead && self {
			return nil
		}
	}

	return Forbidden("you are not allowed to %s this %s", action, resource)
}
