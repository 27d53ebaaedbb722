package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// eventService handles event-related business logic.
type eventService struct {
	db          *gorm.DB
	userService UserServicer
}

// NewEventService creates a new EventServicer.
func NewEventService(db *gorm.DB, userService UserServicer) EventServicer {
	return &eventService{db: db, userService: userService}
}

// CreateEvent creates an event owned by creatorID, bumps the creator's
// created-events counter, and evaluates achievement thresholds.
func (s *eventService) CreateEvent(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	creator, err := s.userService.GetUserByID(creatorID)
	if err != nil {
		return nil, err
	}

	if participants == nil {
		participants = []uint{}
	}

	event := &models.Event{
		Name:         name,
		StartTime:    start,
		EndTime:      end,
		Description:  description,
		Participants: participants,
		CreatedBy:    creatorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyCounter(tx, creator, counterCreatedEvents, 1)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetEventByID returns an event with its creator's name joined in.
func (s *eventService) GetEventByID(id uint) (*EventWithCreator, error) {
	var event models.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names, err := resolveUserNames(s.db, []uint{event.CreatedBy})
	if err != nil {
		return nil, err
	}
	return &EventWithCreator{Event: event, CreatorName: creatorName(names, event.CreatedBy)}, nil
}

// GetUserEvents returns the events the user created or participates in,
// grouped by the calendar date of their start time, groups sorted
// chronologically.
func (s *eventService) GetUserEvents(userID uint) ([]EventGroup, error) {
	selected, names, err := s.userEvents(userID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time][]EventWithCreator)
	for _, event := range selected {
		start := event.StartTime
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		byDate[day] = append(byDate[day], EventWithCreator{Event: event, CreatorName: creatorName(names, event.CreatedBy)})
	}

	groups := make([]EventGroup, 0, len(byDate))
	for day, events := range byDate {
		groups = append(groups, EventGroup{Date: day, Events: events})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups, nil
}

// GetEarliestUserEvent returns the user's event with the earliest start
// time, or nil when the user has none. Ties keep the first in store order.
func (s *eventService) GetEarliestUserEvent(userID uint) (*EventWithCreator, error) {
	selected, names, err := s.userEvents(userID)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, nil
	}

	earliest := selected[0]
	for _, event := range selected[1:] {
		if event.StartTime.Before(earliest.StartTime) {
			earliest = event
		}
	}
	return &EventWithCreator{Event: earliest, CreatorName: creatorName(names, earliest.CreatedBy)}, nil
}

// userEvents loads the user's events in insertion order plus the name map
// for creator enrichment.
func (s *eventService) userEvents(userID uint) ([]models.Event, map[uint]string, error) {
	var events []models.Event
	if err := s.db.Order("id").Find(&events).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var selected []models.Event
	creatorIDs := make([]uint, 0, len(events))
	for _, event := range events {
		if concernsUser(event.CreatedBy, event.Participants, userID) {
			selected = append(selected, event)
			creatorIDs = append(creatorIDs, event.CreatedBy)
		}
	}

	names, err := resolveUserNames(s.db, creatorIDs)
	if err != nil {
		return nil, nil, err
	}
	return selected, names, nil
}

// UpdateEvent replaces all caller-settable event fields.
func (s *eventService) UpdateEvent(eventID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if participants == nil {
		participants = []uint{}
	}

	event.Name = name
	event.StartTime = start
	event.EndTime = end
	event.Description = description
	event.Participants = participants

	if err := s.db.Save(&event).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &event, nil
}

// DeleteEvent removes an event by id.
func (s *eventService) DeleteEvent(eventID uint) error {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&event).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
