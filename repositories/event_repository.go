package repositories

import (
	"context"

	"gorm.io/gorm"
	"motolog-api/models"
)

// EventRepository stores rides, trips and other logged events.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns an EventRepository backed by db.
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) withMotorcycle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("events").
		Select("events.*, motorcycles.name AS motorcycle_name, motorcycles.brand AS motorcycle_brand, motorcycles.model AS motorcycle_model").
		Joins("LEFT JOIN motorcycles ON motorcycles.id = events.motorcycle_id")
}

func (r *EventRepository) ListByMotorcycle(ctx context.Context, motorcycleID string) ([]models.EventDetail, error) {
	events := []models.EventDetail{}
	err := r.withMotorcycle(ctx).
		Where("events.motorcycle_id = ?", motorcycleID).
		Order("events.date DESC").
		Scan(&events).Error
	return events, err
}

func (r *EventRepository) FindDetail(ctx context.Context, id string) (*models.EventDetail, error) {
	var event models.EventDetail
	result := r.withMotorcycle(ctx).
		Where("events.id = ?", id).
		Limit(1).
		Scan(&event)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) Save(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
