package repository

import (
	"context"
	"testing"

	"anoa.com/askify/internal/bootstrap"
	"anoa.com/askify/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQuestionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryQuestionRepository(bootstrap.MockQuestions(), bootstrap.MockAnswers())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	all[0].Title = "changed"
	again, _ := repo.FindAll(ctx)
	assert.NotEqual(t, "changed", again[0].Title)

	q, err := repo.FindByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Data Science", q.Subject)

	_, err = repo.FindByID(ctx, "42")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	answers, err := repo.FindAnswers(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	answers, err = repo.FindAnswers(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, answers)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
