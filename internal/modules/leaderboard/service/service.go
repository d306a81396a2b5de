package service

import (
	"context"
	"fmt"
	"sort"

	"anoa.com/askify/internal/modules/leaderboard/dto"
	leaderboardRepo "anoa.com/askify/internal/modules/leaderboard/repository"
	commonDto "anoa.com/askify/pkg/dto"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo leaderboardRepo.LeaderboardRepository
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository) LeaderboardService {
	return &leaderboardService{repo: repo}
}

// GetLeaderboard ranks users by score, highest first. Equal scores keep
// their storage order.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	_, limit = commonDto.NormalizePage(1, limit)

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Score > users[j].Score
	})
	if len(users) > limit {
		users = users[:limit]
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		position := i + 1
		entries = append(entries, dto.LeaderboardEntry{
			Position:  position,
			Trophy:    Trophy(position),
			Name:      u.Name,
			Questions: u.Questions,
			Answers:   u.Answers,
			Score:     u.Score,
			Tier:      GetTierStatus(u.Score),
		})
	}

	return entries, nil
}
