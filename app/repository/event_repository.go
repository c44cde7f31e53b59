package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create inserts a new event
func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by its ID
func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves every event ordered by event date descending
func (r *eventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("event_date DESC").Find(&events).Error
	return events, err
}

// GetUpcoming retrieves events on or after the given boundary, soonest
// first. A limit of 0 means unbounded.
func (r *eventRepository) GetUpcoming(from time.Time, limit int) ([]models.Event, error) {
	q := r.db.Where("event_date >= ?", from).Order("event_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var events []models.Event
	err := q.Find(&events).Error
	return events, err
}

// GetPast retrieves events before the given boundary, most recent first,
// capped at limit
func (r *eventRepository) GetPast(before time.Time, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("event_date < ?", before).
		Order("event_date DESC").Limit(limit).Find(&events).Error
	return events, err
}

// Update conditionally rewrites an existing event
func (r *eventRepository) Update(event *models.Event) error {
	return updateByID(r.db, &models.Event{}, event.ID, event)
}

// Delete removes an event by its ID
func (r *eventRepository) Delete(id uint) error {
	return deleteByID(r.db, &models.Event{}, id)
}

// Count returns the total number of events
func (r *eventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
