package service

import (
	"context"
	"testing"

	"anoa.com/askify/internal/bootstrap"
	"anoa.com/askify/internal/entity"
	leaderboardRepo "anoa.com/askify/internal/modules/leaderboard/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard(t *testing.T) {
	svc := NewLeaderboardService(leaderboardRepo.NewMemoryLeaderboardRepository(bootstrap.MockLeaderboard()))

	entries, err := svc.GetLeaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "Nguyễn Văn A", entries[0].Name)
	assert.Equal(t, "🥇", entries[0].Trophy)
	assert.Equal(t, "Chuyên gia", entries[0].Tier.TierName)
	assert.Equal(t, "🥉", entries[2].Trophy)
	assert.Empty(t, entries[3].Trophy)
	assert.Equal(t, "Tích cực", entries[4].Tier.TierName)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
}

func TestGetLeaderboard_SortsAndLimits(t *testing.T) {
	users := []entity.LeaderboardUser{
		{Name: "low", Score: 10},
		{Name: "tie-first", Score: 300},
		{Name: "top", Score: 900},
		{Name: "tie-second", Score: 300},
	}
	svc := NewLeaderboardService(leaderboardRepo.NewMemoryLeaderboardRepository(users))

	entries, err := svc.GetLeaderboard(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "top", entries[0].Name)
	assert.Equal(t, "tie-first", entries[1].Name)
	assert.Equal(t, "tie-second", entries[2].Name)
}
