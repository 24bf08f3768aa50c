package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/utils"
)

type WorkoutsHandler struct {
	Workouts *services.WorkoutService
	Progress *services.ProgressService
	Access   *services.AccessService
	Images   ImageStore
}

func NewWorkoutsHandler(workouts *services.WorkoutService, progress *services.ProgressService, access *services.AccessService, images ImageStore) *WorkoutsHandler {
	return &WorkoutsHandler{Workouts: workouts, Progress: progress, Access: access, Images: images}
}

type createWorkoutRequest struct {
	EventTitle  string  `json:"eventTitle" validate:"required,max=255"`
	Sets        int     `json:"sets" validate:"min=0"`
	RepsOrSecs  int     `json:"repsOrSecs" validate:"min=0"`
	RestTime    int     `json:"restTime" validate:"min=0"`
	ImageURI    *string `json:"imageUri" validate:"omitempty,max=2048"`
	IsCompleted bool    `json:"isCompleted"`
	UserID      string  `json:"userId" validate:"required,uuid"`
}

type updateWorkoutRequest struct {
	EventTitle  *string `json:"eventTitle" validate:"omitempty,min=1,max=255"`
	Sets        *int    `json:"sets" validate:"omitempty,min=0"`
	RepsOrSecs  *int    `json:"repsOrSecs" validate:"omitempty,min=0"`
	RestTime    *int    `json:"restTime" validate:"omitempty,min=0"`
	ImageURI    *string `json:"imageUri" validate:"omitempty,max=2048"`
	IsCompleted *bool   `json:"isCompleted"`
	UserID      *string `json:"userId" validate:"omitempty,uuid"`
	Version     *int    `json:"version" validate:"omitempty,min=1"`
}

func (h *WorkoutsHandler) Create(c *fiber.Ctx) error {
	var req createWorkoutRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}
	userID, err := parseUUID(req.UserID)
	if err != nil {
		return respondError(c, services.Validation("invalid userId"))
	}

	workout, err := h.Workouts.Create(c.UserContext(), middleware.GetCurrentUser(c), services.WorkoutInput{
		EventTitle:  req.EventTitle,
		Sets:        req.Sets,
		RepsOrSecs:  req.RepsOrSecs,
		RestTime:    req.RestTime,
		ImageURI:    req.ImageURI,
		IsCompleted: req.IsCompleted,
	}, userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, workout)
}

func (h *WorkoutsHandler) List(c *fiber.Ctx) error {
	workouts, err := h.Workouts.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, workouts)
}

func (h *WorkoutsHandler) MyWorkouts(c *fiber.Ctx) error {
	workouts, err := h.Workouts.ListByUser(c.UserContext(), middleware.GetCurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, workouts)
}

func (h *WorkoutsHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceWorkout, services.ActionList, userID); err != nil {
		return respondError(c, err)
	}

	workouts, err := h.Workouts.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, workouts)
}

func (h *WorkoutsHandler) Stats(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceProgress, services.ActionRead, userID); err != nil {
		return respondError(c, err)
	}

	stats, err := h.Workouts.Stats(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, stats)
}

func (h *WorkoutsHandler) AllProgress(c *fiber.Ctx) error {
	progress, err := h.Progress.AllMembersProgress(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, progress)
}

func (h *WorkoutsHandler) MemberProgress(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceProgress, services.ActionRead, userID); err != nil {
		return respondError(c, err)
	}

	progress, err := h.Progress.MemberProgress(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, progress)
}

func (h *WorkoutsHandler) Get(c *fiber.Ctx) error {
	workoutID, err := paramUUID(c, "id", "workout id")
	if err != nil {
		return respondError(c, err)
	}

	workout, err := h.Workouts.Get(c.UserContext(), workoutID)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceWorkout, services.ActionRead, workout.UserID); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, workout)
}

func (h *WorkoutsHandler) Update(c *fiber.Ctx) error {
	workoutID, err := paramUUID(c, "id", "workout id")
	if err != nil {
		return respondError(c, err)
	}

	var req updateWorkoutRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	upd := services.WorkoutUpdate{
		EventTitle:  req.EventTitle,
		Sets:        req.Sets,
		RepsOrSecs:  req.RepsOrSecs,
		RestTime:    req.RestTime,
		ImageURI:    req.ImageURI,
		IsCompleted: req.IsCompleted,
		Version:     req.Version,
	}
	if req.UserID != nil {
		ownerID, err := parseUUID(*req.UserID)
		if err != nil {
			return respondError(c, services.Validation("invalid userId"))
		}
		upd.UserID = &ownerID
	}

	workout, detached, err := h.Workouts.Update(c.UserContext(), middleware.GetCurrentUser(c), workoutID, upd)
	if err != nil {
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, detached)
	return utils.Success(c, fiber.StatusOK, workout)
}

// ToggleCompletion is open to the owning member and to admins.
func (h *WorkoutsHandler) ToggleCompletion(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	workoutID, err := paramUUID(c, "id", "workout id")
	if err != nil {
		return respondError(c, err)
	}
	version, err := optionalVersion(c)
	if err != nil {
		return respondError(c, err)
	}

	workout, err := h.Workouts.Get(c.UserContext(), workoutID)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(currentUser, services.ResourceWorkout, services.ActionToggle, workout.UserID); err != nil {
		return respondError(c, err)
	}

	toggled, err := h.Workouts.ToggleCompletion(c.UserContext(), currentUser, workoutID, version)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, toggled)
}

func (h *WorkoutsHandler) UploadImage(c *fiber.Ctx) error {
	workoutID, err := paramUUID(c, "id", "workout id")
	if err != nil {
		return respondError(c, err)
	}
	if h.Images == nil {
		return storageUnavailable(c)
	}
	if _, err := h.Workouts.Get(c.UserContext(), workoutID); err != nil {
		return respondError(c, err)
	}

	uri, key, err := receiveImage(c, h.Images, "workouts", workoutID)
	if err != nil {
		return respondError(c, err)
	}

	workout, previous, err := h.Workouts.SetImage(c.UserContext(), workoutID, uri, key)
	if err != nil {
		releaseImage(c.UserContext(), h.Images, &key)
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, previous)

	return utils.Success(c, fiber.StatusOK, workout)
}

func (h *WorkoutsHandler) Delete(c *fiber.Ctx) error {
	workoutID, err := paramUUID(c, "id", "workout id")
	if err != nil {
		return respondError(c, err)
	}

	workout, err := h.Workouts.Remove(c.UserContext(), middleware.GetCurrentUser(c), workoutID)
	if err != nil {
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, workout.ImageKey)

	return utils.Deleted(c)
}
