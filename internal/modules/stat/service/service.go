package service

import (
	"context"

	leaderboardDto "anoa.com/askify/internal/modules/leaderboard/dto"
	leaderboard "anoa.com/askify/internal/modules/leaderboard/service"
	notification "anoa.com/askify/internal/modules/notification/service"
	questionDto "anoa.com/askify/internal/modules/question/dto"
	question "anoa.com/askify/internal/modules/question/service"
)

// Overview is the summary shown on the home page.
type Overview struct {
	TotalQuestions      int64                             `json:"total_questions"`
	AnsweredQuestions   int64                             `json:"answered_questions"`
	HotQuestions        int64                             `json:"hot_questions"`
	UnreadNotifications int                               `json:"unread_notifications"`
	TopContributors     []leaderboardDto.LeaderboardEntry `json:"top_contributors"`
}

const topContributors = 3

type StatService interface {
	GetOverview(ctx context.Context, scope string) (*Overview, error)
}

type statService struct {
	questionService     question.QuestionService
	notificationService notification.NotificationService
	leaderboardService  leaderboard.LeaderboardService
}

func NewStatService(questionService question.QuestionService, notificationService notification.NotificationService, leaderboardService leaderboard.LeaderboardService) StatService {
	return &statService{
		questionService:     questionService,
		notificationService: notificationService,
		leaderboardService:  leaderboardService,
	}
}

func (s *statService) countQuestions(ctx context.Context, filter questionDto.QuestionFilter) (int64, error) {
	filter.Limit = 1
	res, err := s.questionService.ListQuestions(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.Meta.TotalItems, nil
}

func (s *statService) GetOverview(ctx context.Context, scope string) (*Overview, error) {
	total, err := s.questionService.CountQuestions(ctx)
	if err != nil {
		return nil, err
	}
	answered, err := s.countQuestions(ctx, questionDto.QuestionFilter{AnsweredOnly: true})
	if err != nil {
		return nil, err
	}
	hot, err := s.countQuestions(ctx, questionDto.QuestionFilter{HotOnly: true})
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationService.UnreadCount(ctx, scope)
	if err != nil {
		return nil, err
	}

	top, err := s.leaderboardService.GetLeaderboard(ctx, topContributors)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalQuestions:      total,
		AnsweredQuestions:   answered,
		HotQuestions:        hot,
		UnreadNotifications: unread,
		TopContributors:     top,
	}, nil
}
