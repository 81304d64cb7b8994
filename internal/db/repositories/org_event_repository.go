package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

type OrgEventRepository struct {
	db *gorm.DB
}

func NewOrgEventRepository(db *gorm.DB) *OrgEventRepository {
	return &OrgEventRepository{db: db}
}

// ListWithType returns all events ordered by start with their type
// preloaded.
func (r *OrgEventRepository) ListWithType(ctx context.Context) ([]gormModels.OrgEvent, error) {
	var events []gormModels.OrgEvent

	err := r.db.WithContext(ctx).
		Preload("Type").
		Order("start").
		Find(&events).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *OrgEventRepository) GetByID(ctx context.Context, id uint) (*gormModels.OrgEvent, error) {
	var event gormModels.OrgEvent

	err := r.db.WithContext(ctx).Preload("Type").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (r *OrgEventRepository) Create(ctx context.Context, event *gormModels.OrgEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *OrgEventRepository) Save(ctx context.Context, event *gormModels.OrgEvent) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete soft-deletes the event.
func (r *OrgEventRepository) Delete(ctx context.Context, event *gormModels.OrgEvent) error {
	if err := r.db.WithContext(ctx).Delete(event).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (r *OrgEventRepository) TypeExists(ctx context.Context, typeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.OrgEventType{}).
		Where("id = ?", typeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check event type: %w", err)
	}
	return count > 0, nil
}

// ListTypes returns all event types ordered by name.
func (r *OrgEventRepository) ListTypes(ctx context.Context) ([]gormModels.OrgEventType, error) {
	var types []gormModels.OrgEventType
	if err := r.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list event types: %w", err)
	}
	return types, nil
}
