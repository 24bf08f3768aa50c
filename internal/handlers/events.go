package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/utils"
)

type EventsHandler struct {
	Events *services.EventService
	Images ImageStore
}

func NewEventsHandler(events *services.EventService, images ImageStore) *EventsHandler {
	return &EventsHandler{Events: events, Images: images}
}

type createEventRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required,datetime=15:04"`
	Location string  `json:"location" validate:"required,max=255"`
	ImageURI *string `json:"imageUri" validate:"omitempty,max=2048"`
}

type updateEventRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     *string `json:"time" validate:"omitempty,datetime=15:04"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
	ImageURI *string `json:"imageUri" validate:"omitempty,max=2048"`
}

func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.Events.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, events)
}

func (h *EventsHandler) Get(c *fiber.Ctx) error {
	eventID, err := paramUUID(c, "id", "event id")
	if err != nil {
		return respondError(c, err)
	}

	event, err := h.Events.Get(c.UserContext(), eventID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, event)
}

func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req createEventRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	event, err := h.Events.Create(c.UserContext(), services.EventInput{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		ImageURI: req.ImageURI,
	}, middleware.GetCurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, event)
}

func (h *EventsHandler) Update(c *fiber.Ctx) error {
	eventID, err := paramUUID(c, "id", "event id")
	if err != nil {
		return respondError(c, err)
	}

	var req updateEventRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	event, detached, err := h.Events.Update(c.UserContext(), middleware.GetCurrentUser(c), eventID, services.EventUpdate{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		ImageURI: req.ImageURI,
	})
	if err != nil {
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, detached)
	return utils.Success(c, fiber.StatusOK, event)
}

func (h *EventsHandler) UploadImage(c *fiber.Ctx) error {
	eventID, err := paramUUID(c, "id", "event id")
	if err != nil {
		return respondError(c, err)
	}
	if h.Images == nil {
		return storageUnavailable(c)
	}
	if _, err := h.Events.Get(c.UserContext(), eventID); err != nil {
		return respondError(c, err)
	}

	uri, key, err := receiveImage(c, h.Images, "events", eventID)
	if err != nil {
		return respondError(c, err)
	}

	event, previous, err := h.Events.SetImage(c.UserContext(), eventID, uri, key)
	if err != nil {
		releaseImage(c.UserContext(), h.Images, &key)
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, previous)

	return utils.Success(c, fiber.StatusOK, event)
}

func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	eventID, err := paramUUID(c, "id", "event id")
	if err != nil {
		return respondError(c, err)
	}

	event, err := h.Events.Remove(c.UserContext(), middleware.GetCurrentUser(c), eventID)
	if err != nil {
		return respondError(c, err)
	}
	releaseImage(c.UserContext(), h.Images, event.ImageKey)

	return utils.Deleted(c)
}
