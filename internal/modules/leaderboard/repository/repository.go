package repository

import (
	"context"

	"anoa.com/askify/internal/entity"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	// FindAll returns every ranked user in storage order.
	FindAll(ctx context.Context) ([]entity.LeaderboardUser, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) FindAll(ctx context.Context) ([]entity.LeaderboardUser, error) {
	var users []entity.LeaderboardUser
	err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error
	return users, err
}

type memoryLeaderboardRepository struct {
	users []entity.LeaderboardUser
}

func NewMemoryLeaderboardRepository(users []entity.LeaderboardUser) LeaderboardRepository {
	return &memoryLeaderboardRepository{users: users}
}

func (r *memoryLeaderboardRepository) FindAll(ctx context.Context) ([]entity.LeaderboardUser, error) {
	out := make([]entity.LeaderboardUser, len(r.users))
	copy(out, r.users)
	return out, nil
}
