package repositories

import (
	"context"
	"fmt"

	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

type PastMasterRepository struct {
	db *gorm.DB
}

func NewPastMasterRepository(db *gorm.DB) *PastMasterRepository {
	return &PastMasterRepository{db: db}
}

// List returns the roster ordered by year served.
func (r *PastMasterRepository) List(ctx context.Context) ([]gormModels.PastMaster, error) {
	var masters []gormModels.PastMaster
	if err := r.db.WithContext(ctx).Order("year").Find(&masters).Error; err != nil {
		return nil, fmt.Errorf("failed to list past masters: %w", err)
	}
	return masters, nil
}
