package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"motolog-api/models"
)

// MotorcycleRepository reads and writes the motorcycle row and its odometer.
type MotorcycleRepository struct {
	db *gorm.DB
}

// NewMotorcycleRepository returns a MotorcycleRepository backed by db.
func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

// EnsureExists inserts motorcycle unless a row with the same id is already there.
// It is a single INSERT ... ON CONFLICT DO NOTHING, so concurrent callers cannot
// create duplicates. The returned bool is true when this call inserted the row.
func (r *MotorcycleRepository) EnsureExists(ctx context.Context, motorcycle *models.Motorcycle) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(motorcycle)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MotorcycleRepository) FindByID(ctx context.Context, id string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	if err := r.db.WithContext(ctx).First(&motorcycle, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &motorcycle, nil
}

// Update applies the column map and refreshes updated_at.
func (r *MotorcycleRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Motorcycle, error) {
	updates["updated_at"] = time.Now()

	err := r.db.WithContext(ctx).
		Model(&models.Motorcycle{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// RaiseKilometers sets current_kilometers to km only when the stored value is lower.
// The comparison happens inside the UPDATE, so the odometer never goes backwards
// regardless of how concurrent writers interleave.
func (r *MotorcycleRepository) RaiseKilometers(ctx context.Context, id string, km int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Motorcycle{}).
		Where("id = ? AND current_kilometers < ?", id, km).
		Updates(map[string]interface{}{
			"current_kilometers": km,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
