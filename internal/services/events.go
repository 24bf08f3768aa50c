package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

type EventInput struct {
	Title    string
	Date     string
	Time     string
	Location string
	ImageURI *string
}

type EventUpdate struct {
	Title    *string
	Date     *string
	Time     *string
	Location *string
	ImageURI *string
}

func (s *EventService) Create(ctx context.Context, in EventInput, creatorID uuid.UUID) (*models.Event, error) {
	creator, err := findUser(ctx, s.DB, "id = ?", creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.IsAdmin() {
		return nil, InvalidRole("events can only be created by admins")
	}

	event := &models.Event{
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		Time:        in.Time,
		Location:    strings.TrimSpace(in.Location),
		ImageURI:    in.ImageURI,
		CreatedByID: creatorID,
	}
	if err := s.DB.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	logger.InfoWithUser(creatorID.String(), "event_created", map[string]interface{}{
		"event_id": event.ID.String(),
		"date":     event.Date,
	})
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.WithContext(ctx).Order("date ASC").Order("time ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.DB.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("event not found")
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

// Update applies the provided fields and, like WorkoutService.Update, returns
// the key of an uploaded image that an imageUri patch detached.
func (s *EventService) Update(ctx context.Context, actor *models.User, id uuid.UUID, upd EventUpdate) (*models.Event, *string, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if upd.Title != nil {
		event.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Date != nil {
		event.Date = *upd.Date
	}
	if upd.Time != nil {
		event.Time = *upd.Time
	}
	if upd.Location != nil {
		event.Location = strings.TrimSpace(*upd.Location)
	}
	var released *string
	if upd.ImageURI != nil && !sameString(event.ImageURI, *upd.ImageURI) {
		released = event.ImageKey
		event.ImageURI = upd.ImageURI
		event.ImageKey = nil
	}

	if err := s.DB.WithContext(ctx).Save(event).Error; err != nil {
		return nil, nil, fmt.Errorf("update event: %w", err)
	}

	logger.InfoWithUser(actor.ID.String(), "event_updated", map[string]interface{}{
		"event_id": id.String(),
	})
	return event, released, nil
}

func (s *EventService) Remove(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Delete(event).Error; err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}

	logger.InfoWithUser(actor.ID.String(), "event_deleted", map[string]interface{}{
		"event_id": id.String(),
	})
	return event, nil
}

// SetImage stores a new image reference and returns the previous object key.
func (s *EventService) SetImage(ctx context.Context, id uuid.UUID, uri, key string) (*models.Event, *string, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	previous := event.ImageKey
	event.ImageURI = &uri
	event.ImageKey = &key
	if err := s.DB.WithContext(ctx).Save(event).Error; err != nil {
		return nil, nil, fmt.Errorf("update event image: %w", err)
	}
	return event, previous, nil
}
