// services/event_service.go - Event business logic
package services

import (
	"errors"

	"clubhub/models"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidSizeClass = errors.New("size class must be one of small, medium, large")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Organizer   string `json:"organizer"`
	ImageURL    string `json:"image_url"`
	SizeClass   string `json:"size_class"`
}

// ListEvents returns every event, newest first. This is the public
// listing order.
func (s *EventService) ListEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetEvent(eventID uint) (*models.Event, error) {
	var event models.Event
	err := s.db.First(&event, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) CreateEvent(input EventInput) (*models.Event, error) {
	if input.Title == "" {
		return nil, errors.New("event title is required")
	}
	size, err := resolveSizeClass(input.SizeClass)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Organizer:   input.Organizer,
		ImageURL:    input.ImageURL,
		SizeClass:   size,
	}
	if err := s.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) UpdateEvent(eventID uint, input EventInput) (*models.Event, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, errors.New("event title is required")
	}
	size, err := resolveSizeClass(input.SizeClass)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Category = input.Category
	event.Date = input.Date
	event.Time = input.Time
	event.Location = input.Location
	event.Organizer = input.Organizer
	event.ImageURL = input.ImageURL
	event.SizeClass = size

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(eventID uint) error {
	result := s.db.Delete(&models.Event{}, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func resolveSizeClass(raw string) (models.EventSize, error) {
	if raw == "" {
		return models.DefaultEventSize, nil
	}
	size := models.EventSize(raw)
	if !models.ValidEventSize(size) {
		return "", ErrInvalidSizeClass
	}
	return size, nil
}
