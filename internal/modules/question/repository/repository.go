package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindAll(ctx context.Context) ([]entity.Question, error)
	FindByID(ctx context.Context, id string) (*entity.Question, error)
	FindAnswers(ctx context.Context, questionID string) ([]entity.Answer, error)
	Count(ctx context.Context) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindAll(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.WithContext(ctx).Order("position asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	var question entity.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAnswers(ctx context.Context, questionID string) ([]entity.Answer, error) {
	var answers []entity.Answer
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("position asc").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
