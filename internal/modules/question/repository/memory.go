package repository

import (
	"context"
	"fmt"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
)

// memoryQuestionRepository serves a fixed collection loaded at startup. It
// is never written to, so it needs no locking.
type memoryQuestionRepository struct {
	questions []entity.Question
	answers   []entity.Answer
}

func NewMemoryQuestionRepository(questions []entity.Question, answers []entity.Answer) QuestionRepository {
	return &memoryQuestionRepository{questions: questions, answers: answers}
}

func (r *memoryQuestionRepository) FindAll(ctx context.Context) ([]entity.Question, error) {
	out := make([]entity.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func (r *memoryQuestionRepository) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, fmt.Errorf("question %s: %w", id, apperror.ErrNotFound)
}

func (r *memoryQuestionRepository) FindAnswers(ctx context.Context, questionID string) ([]entity.Answer, error) {
	out := make([]entity.Answer, 0)
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryQuestionRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}
