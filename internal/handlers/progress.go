package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

type ProgressHandler struct {
	Progress *services.ProgressService
	Access   *services.AccessService
}

func NewProgressHandler(progress *services.ProgressService, access *services.AccessService) *ProgressHandler {
	return &ProgressHandler{Progress: progress, Access: access}
}

type recordProgressRequest struct {
	TraineeID string `json:"traineeId" validate:"required,uuid"`
}

func (h *ProgressHandler) List(c *fiber.Ctx) error {
	snapshots, err := h.Progress.ListSnapshots(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, snapshots)
}

func (h *ProgressHandler) Record(c *fiber.Ctx) error {
	var req recordProgressRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}
	traineeID, err := parseUUID(req.TraineeID)
	if err != nil {
		return respondError(c, services.Validation("invalid traineeId"))
	}

	snapshot, err := h.Progress.RecordSnapshot(c.UserContext(), traineeID)
	if err != nil {
		return respondError(c, err)
	}

	logger.InfoWithUser(middleware.GetCurrentUser(c).ID.String(), "progress_snapshot_recorded", map[string]interface{}{
		"trainee_id": traineeID.String(),
		"percentage": snapshot.ProgressPercentage,
	})
	return utils.Success(c, fiber.StatusCreated, snapshot)
}

func (h *ProgressHandler) Latest(c *fiber.Ctx) error {
	traineeID, err := paramUUID(c, "traineeId", "trainee id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceSnapshot, services.ActionRead, traineeID); err != nil {
		return respondError(c, err)
	}

	snapshot, err := h.Progress.LatestSnapshot(c.UserContext(), traineeID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, snapshot)
}

// Get returns one snapshot; members may only read their own.
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	snapshotID, err := paramUUID(c, "id", "snapshot id")
	if err != nil {
		return respondError(c, err)
	}

	snapshot, err := h.Progress.GetSnapshot(c.UserContext(), snapshotID)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceSnapshot, services.ActionRead, snapshot.TraineeID); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, snapshot)
}

func (h *ProgressHandler) Delete(c *fiber.Ctx) error {
	snapshotID, err := paramUUID(c, "id", "snapshot id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Progress.DeleteSnapshot(c.UserContext(), snapshotID); err != nil {
		return respondError(c, err)
	}
	return utils.Deleted(c)
}
