package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dryRunDB builds statements without a server and records the SQL of every
// query it would have sent.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=askify dbname=askify sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)

	var queries []string
	err = db.Callback().Query().After("gorm:query").Register("askify:capture", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)
	return db, &queries
}

func TestQuestionRepository_OrdersBySeedPosition(t *testing.T) {
	ctx := context.Background()
	db, queries := dryRunDB(t)
	repo := NewQuestionRepository(db)

	_, err := repo.FindAll(ctx)
	require.NoError(t, err)
	_, err = repo.FindAnswers(ctx, "1")
	require.NoError(t, err)

	require.Len(t, *queries, 2)
	assert.Contains(t, (*queries)[0], `FROM "questions" ORDER BY position asc`)
	assert.Contains(t, (*queries)[1], `FROM "answers" WHERE question_id = $1 ORDER BY position asc`)
}
