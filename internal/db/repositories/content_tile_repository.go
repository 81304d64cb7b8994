package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

type ContentTileRepository struct {
	db *gorm.DB
}

func NewContentTileRepository(db *gorm.DB) *ContentTileRepository {
	return &ContentTileRepository{db: db}
}

// ListPage returns every tile on a page ordered by sort, optionally only
// the enabled ones (the public rendering path).
func (r *ContentTileRepository) ListPage(ctx context.Context, page string, enabledOnly bool) ([]gormModels.ContentTile, error) {
	q := r.db.WithContext(ctx).Where("page = ?", page)
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}

	var tiles []gormModels.ContentTile
	if err := q.Order("sort").Find(&tiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list tiles: %w", err)
	}
	return tiles, nil
}

func (r *ContentTileRepository) GetByID(ctx context.Context, id uint) (*gormModels.ContentTile, error) {
	var tile gormModels.ContentTile

	err := r.db.WithContext(ctx).First(&tile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tile: %w", err)
	}
	return &tile, nil
}

// SlugTaken reports whether another tile (excluding excludeID, 0 for none)
// already uses the slug.
func (r *ContentTileRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&gormModels.ContentTile{}).
		Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	return count > 0, nil
}

func (r *ContentTileRepository) Create(ctx context.Context, tile *gormModels.ContentTile) error {
	if err := r.db.WithContext(ctx).Create(tile).Error; err != nil {
		return fmt.Errorf("failed to create tile: %w", err)
	}
	return nil
}

func (r *ContentTileRepository) Save(ctx context.Context, tile *gormModels.ContentTile) error {
	if err := r.db.WithContext(ctx).Save(tile).Error; err != nil {
		return fmt.Errorf("failed to update tile: %w", err)
	}
	return nil
}

func (r *ContentTileRepository) Delete(ctx context.Context, tile *gormModels.ContentTile) error {
	if err := r.db.WithContext(ctx).Delete(tile).Error; err != nil {
		return fmt.Errorf("failed to delete tile: %w", err)
	}
	return nil
}

// UpdatePosition writes one entry of a reorder batch.
func (r *ContentTileRepository) UpdatePosition(ctx context.Context, id uint, sort, colStart, rowStart, colSpan, rowSpan int) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.ContentTile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sort":      sort,
			"col_start": colStart,
			"row_start": rowStart,
			"col_span":  colSpan,
			"row_span":  rowSpan,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reposition tile %d: %w", id, err)
	}
	return nil
}
