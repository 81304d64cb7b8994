package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

type TriviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) *TriviaRepository {
	return &TriviaRepository{db: db}
}

// ListExcludingCategory returns all questions outside the given category.
func (r *TriviaRepository) ListExcludingCategory(ctx context.Context, category string) ([]gormModels.TriviaQuestion, error) {
	var questions []gormModels.TriviaQuestion

	err := r.db.WithContext(ctx).
		Where("category <> ?", category).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListByCategory returns all questions in one category.
func (r *TriviaRepository) ListByCategory(ctx context.Context, category string) ([]gormModels.TriviaQuestion, error) {
	var questions []gormModels.TriviaQuestion

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %q: %w", category, err)
	}
	return questions, nil
}

func (r *TriviaRepository) GetByID(ctx context.Context, id uint) (*gormModels.TriviaQuestion, error) {
	var question gormModels.TriviaQuestion

	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch question: %w", err)
	}
	return &question, nil
}

func (r *TriviaRepository) Create(ctx context.Context, question *gormModels.TriviaQuestion) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *TriviaRepository) Save(ctx context.Context, question *gormModels.TriviaQuestion) error {
	if err := r.db.WithContext(ctx).Save(question).Error; err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return nil
}

func (r *TriviaRepository) Delete(ctx context.Context, question *gormModels.TriviaQuestion) error {
	if err := r.db.WithContext(ctx).Delete(question).Error; err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
