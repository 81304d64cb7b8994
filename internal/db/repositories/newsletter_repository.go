package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

type NewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// ListPage returns one page of newsletters, newest first, plus the total
// row count for the pager.
func (r *NewsletterRepository) ListPage(ctx context.Context, page, perPage int) ([]gormModels.Newsletter, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&gormModels.Newsletter{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count newsletters: %w", err)
	}

	var newsletters []gormModels.Newsletter
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&newsletters).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list newsletters: %w", err)
	}

	return newsletters, total, nil
}

func (r *NewsletterRepository) GetByID(ctx context.Context, id uint) (*gormModels.Newsletter, error) {
	var newsletter gormModels.Newsletter

	err := r.db.WithContext(ctx).First(&newsletter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch newsletter: %w", err)
	}
	return &newsletter, nil
}

func (r *NewsletterRepository) Create(ctx context.Context, newsletter *gormModels.Newsletter) error {
	if err := r.db.WithContext(ctx).Create(newsletter).Error; err != nil {
		return fmt.Errorf("failed to create newsletter: %w", err)
	}
	return nil
}

func (r *NewsletterRepository) Save(ctx context.Context, newsletter *gormModels.Newsletter) error {
	if err := r.db.WithContext(ctx).Save(newsletter).Error; err != nil {
		return fmt.Errorf("failed to update newsletter: %w", err)
	}
	return nil
}

func (r *NewsletterRepository) Delete(ctx context.Context, newsletter *gormModels.Newsletter) error {
	if err := r.db.WithContext(ctx).Delete(newsletter).Error; err != nil {
		return fmt.Errorf("failed to delete newsletter: %w", err)
	}
	return nil
}
