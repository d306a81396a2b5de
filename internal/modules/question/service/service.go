package question

import (
	"context"
	"fmt"
	"strings"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/internal/modules/question/dto"
	"anoa.com/askify/internal/modules/question/repository"
	search "anoa.com/askify/internal/modules/search/service"
	commonDto "anoa.com/askify/pkg/dto"
	"anoa.com/askify/pkg/logger"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, filter dto.QuestionFilter) (*dto.PaginatedQuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionDetailResponse, error)
	GetSubjects() []string
	GetTags(ctx context.Context) ([]string, error)
	SearchQuestions(ctx context.Context, query string, limit int) ([]entity.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	ReindexSearch(ctx context.Context) error
}

type questionService struct {
	repo  repository.QuestionRepository
	meili search.MeiliSearchService
}

// NewQuestionService builds the feed service. meili may be nil, in which
// case search falls back to scanning the collection.
func NewQuestionService(repo repository.QuestionRepository, meili search.MeiliSearchService) QuestionService {
	return &questionService{repo: repo, meili: meili}
}

// CriteriaFromFilter converts bound query parameters into engine criteria.
// An empty subject selects every subject.
func CriteriaFromFilter(filter dto.QuestionFilter) Criteria {
	c := DefaultCriteria()
	if filter.SortBy != "" {
		c.SortBy = SortBy(filter.SortBy)
	}
	if filter.Subject != "" {
		c.Subject = filter.Subject
	}
	c.Tags = filter.SelectedTags()
	c.ShowAnsweredOnly = filter.AnsweredOnly
	c.ShowHotOnly = filter.HotOnly
	return c
}

func (s *questionService) ListQuestions(ctx context.Context, filter dto.QuestionFilter) (*dto.PaginatedQuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	filtered := FilterQuestions(questions, CriteriaFromFilter(filter))

	page, limit := commonDto.NormalizePage(filter.Page, filter.Limit)
	from, to := commonDto.PageBounds(page, limit, len(filtered))

	return &dto.PaginatedQuestionResponse{
		Data: filtered[from:to],
		Meta: commonDto.NewPaginationMeta(page, limit, int64(len(filtered))),
	}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.FindAnswers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	return &dto.QuestionDetailResponse{Question: *question, Answers: answers}, nil
}

func (s *questionService) GetSubjects() []string {
	return Subjects()
}

func (s *questionService) GetTags(ctx context.Context) ([]string, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return AvailableTags(questions), nil
}

func (s *questionService) SearchQuestions(ctx context.Context, query string, limit int) ([]entity.Question, error) {
	_, limit = commonDto.NormalizePage(1, limit)

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	if s.meili != nil {
		ids, err := s.meili.SearchQuestions(query, limit)
		if err == nil {
			return pickByID(questions, ids), nil
		}
		logger.Log.Warnw("meilisearch query failed, scanning instead", "error", err)
	}

	return scan(questions, query, limit), nil
}

func (s *questionService) CountQuestions(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *questionService) ReindexSearch(ctx context.Context) error {
	if s.meili == nil {
		return nil
	}

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	return s.meili.IndexQuestions(questions)
}

func pickByID(questions []entity.Question, ids []string) []entity.Question {
	byID := make(map[string]entity.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	out := make([]entity.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// scan matches the query case-insensitively against title, content and
// tags, newest first.
func scan(questions []entity.Question, query string, limit int) []entity.Question {
	needle := strings.ToLower(strings.TrimSpace(query))
	sorted := FilterQuestions(questions, DefaultCriteria())

	out := make([]entity.Question, 0)
	for _, q := range sorted {
		if len(out) == limit {
			break
		}
		if matchesQuestion(q, needle) {
			out = append(out, q)
		}
	}
	return out
}

func matchesQuestion(q entity.Question, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(q.Title), needle) || strings.Contains(strings.ToLower(q.Content), needle) {
		return true
	}
	for _, t := range q.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
