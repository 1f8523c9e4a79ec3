package repositories

import (
	"context"

	"gorm.io/gorm"
	"motolog-api/models"
)

// ServiceRepository stores maintenance records.
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository returns a ServiceRepository backed by db.
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) withMotorcycle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("services").
		Select("services.*, motorcycles.name AS motorcycle_name, motorcycles.brand AS motorcycle_brand, motorcycles.model AS motorcycle_model").
		Joins("LEFT JOIN motorcycles ON motorcycles.id = services.motorcycle_id")
}

// ListByMotorcycle returns every service of the motorcycle, newest first.
func (r *ServiceRepository) ListByMotorcycle(ctx context.Context, motorcycleID string) ([]models.ServiceDetail, error) {
	services := []models.ServiceDetail{}
	err := r.withMotorcycle(ctx).
		Where("services.motorcycle_id = ?", motorcycleID).
		Order("services.date DESC").
		Scan(&services).Error
	return services, err
}

func (r *ServiceRepository) FindDetail(ctx context.Context, id string) (*models.ServiceDetail, error) {
	var service models.ServiceDetail
	result := r.withMotorcycle(ctx).
		Where("services.id = ?", id).
		Limit(1).
		Scan(&service)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &service, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

// Save writes every column of an existing service.
func (r *ServiceRepository) Save(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
