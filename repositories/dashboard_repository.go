package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"motolog-api/models"
)

// DashboardRepository runs the read-only aggregate queries behind the dashboard.
// Every method scopes its query to one motorcycle.
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository returns a repository for dashboard aggregates.
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CountServicesBetween counts services dated in [from, to].
func (r *DashboardRepository) CountServicesBetween(ctx context.Context, motorcycleID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("motorcycle_id = ? AND date >= ? AND date <= ?", motorcycleID, from, to).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountServices(ctx context.Context, motorcycleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("motorcycle_id = ?", motorcycleID).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountEvents(ctx context.Context, motorcycleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("motorcycle_id = ?", motorcycleID).
		Count(&count).Error
	return count, err
}

// CountUpcomingServices counts services that schedule a next service.
func (r *DashboardRepository) CountUpcomingServices(ctx context.Context, motorcycleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("motorcycle_id = ? AND next_service_km IS NOT NULL", motorcycleID).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) SumServiceCosts(ctx context.Context, motorcycleID string) (decimal.Decimal, error) {
	return r.sumCost(ctx, &models.Service{}, motorcycleID)
}

func (r *DashboardRepository) SumEventCosts(ctx context.Context, motorcycleID string) (decimal.Decimal, error) {
	return r.sumCost(ctx, &models.Event{}, motorcycleID)
}

func (r *DashboardRepository) SumModificationCosts(ctx context.Context, motorcycleID string) (decimal.Decimal, error) {
	return r.sumCost(ctx, &models.Modification{}, motorcycleID)
}

// sumCost adds up the cost column of model, counting NULL as zero.
func (r *DashboardRepository) sumCost(ctx context.Context, model interface{}, motorcycleID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(model).
		Select("COALESCE(SUM(cost), 0)").
		Where("motorcycle_id = ?", motorcycleID).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *DashboardRepository) RecentServices(ctx context.Context, motorcycleID string, limit int) ([]models.ServiceActivity, error) {
	services := []models.ServiceActivity{}
	err := r.db.WithContext(ctx).
		Table("services").
		Select("services.id, services.date, services.type, motorcycles.name AS motorcycle_name, services.kilometers, services.cost").
		Joins("LEFT JOIN motorcycles ON motorcycles.id = services.motorcycle_id").
		Where("services.motorcycle_id = ?", motorcycleID).
		Order("services.date DESC").
		Limit(limit).
		Scan(&services).Error
	return services, err
}

func (r *DashboardRepository) RecentEvents(ctx context.Context, motorcycleID string, limit int) ([]models.EventActivity, error) {
	events := []models.EventActivity{}
	err := r.db.WithContext(ctx).
		Table("events").
		Select("events.id, events.date, events.type, events.title, motorcycles.name AS motorcycle_name, events.kilometers").
		Joins("LEFT JOIN motorcycles ON motorcycles.id = events.motorcycle_id").
		Where("events.motorcycle_id = ?", motorcycleID).
		Order("events.date DESC").
		Limit(limit).
		Scan(&events).Error
	return events, err
}
