package repositories

import (
	"context"

	"gorm.io/gorm"
	"motolog-api/models"
)

// ModificationRepository stores installed parts.
type ModificationRepository struct {
	db *gorm.DB
}

// NewModificationRepository returns a ModificationRepository backed by db.
func NewModificationRepository(db *gorm.DB) *ModificationRepository {
	return &ModificationRepository{db: db}
}

// ListByMotorcycle returns the installed parts in the order they were fitted.
func (r *ModificationRepository) ListByMotorcycle(ctx context.Context, motorcycleID string) ([]models.Modification, error) {
	modifications := []models.Modification{}
	err := r.db.WithContext(ctx).
		Where("motorcycle_id = ?", motorcycleID).
		Order("install_date ASC").
		Find(&modifications).Error
	return modifications, err
}

func (r *ModificationRepository) FindByID(ctx context.Context, id string) (*models.Modification, error) {
	var modification models.Modification
	if err := r.db.WithContext(ctx).First(&modification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &modification, nil
}

func (r *ModificationRepository) Create(ctx context.Context, modification *models.Modification) error {
	return r.db.WithContext(ctx).Create(modification).Error
}

func (r *ModificationRepository) Save(ctx context.Context, modification *models.Modification) error {
	return r.db.WithContext(ctx).Save(modification).Error
}

func (r *ModificationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Modification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
