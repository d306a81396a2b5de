package search

import (
	"fmt"
	"html"
	"strings"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const questionsIndex = "questions"

type MeiliSearchService interface {
	IndexQuestions(questions []entity.Question) error
	// SearchQuestions returns the ids of matching questions, best match first.
	SearchQuestions(query string, limit int) ([]string, error)
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) MeiliSearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterable := []any{"subject", "tags", "is_answered", "is_hot"}
	if _, err := s.client.Index(questionsIndex).UpdateFilterableAttributes(&filterable); err != nil {
		logger.Log.Warnw("failed to update questions filterable attributes", "error", err)
	}

	sortable := []string{"created_at", "votes", "answers", "views"}
	if _, err := s.client.Index(questionsIndex).UpdateSortableAttributes(&sortable); err != nil {
		logger.Log.Warnw("failed to update questions sortable attributes", "error", err)
	}

	logger.Log.Info("Meilisearch indexes initialized")
}

type meiliQuestionDoc struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Subject    string   `json:"subject"`
	Tags       []string `json:"tags"`
	AuthorName string   `json:"author_name"`
	Votes      int      `json:"votes"`
	Answers    int      `json:"answers"`
	Views      int      `json:"views"`
	IsAnswered bool     `json:"is_answered"`
	IsHot      bool     `json:"is_hot"`
	CreatedAt  int64    `json:"created_at"`
}

// CleanContent strips markup from question content and collapses whitespace
// so only readable text reaches the index.
func CleanContent(sanitizer *bluemonday.Policy, content string) string {
	for _, tag := range []string{"</p>", "<br>", "</div>"} {
		content = strings.ReplaceAll(content, tag, " ")
	}
	clean := html.UnescapeString(sanitizer.Sanitize(content))
	return strings.Join(strings.Fields(clean), " ")
}

func (s *meiliSearchService) toDoc(q entity.Question) meiliQuestionDoc {
	return meiliQuestionDoc{
		ID:         q.ID,
		Title:      CleanContent(s.sanitizer, q.Title),
		Content:    CleanContent(s.sanitizer, q.Content),
		Subject:    q.Subject,
		Tags:       q.Tags,
		AuthorName: q.Author.Name,
		Votes:      q.Votes,
		Answers:    q.Answers,
		Views:      q.Views,
		IsAnswered: q.IsAnswered,
		IsHot:      q.IsHot,
		CreatedAt:  q.CreatedAt.Unix(),
	}
}

func (s *meiliSearchService) IndexQuestions(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}

	docs := make([]meiliQuestionDoc, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, s.toDoc(q))
	}

	task, err := s.client.Index(questionsIndex).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return fmt.Errorf("index questions: %w", err)
	}
	logger.Log.Debugw("indexed questions", "count", len(docs), "task_uid", task.TaskUID)
	return nil
}

type searchHits struct {
	Hits []struct {
		ID string `json:"id"`
	} `json:"hits"`
}

func (s *meiliSearchService) SearchQuestions(query string, limit int) ([]string, error) {
	raw, err := s.client.Index(questionsIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Limit:                int64(limit),
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}

	var res searchHits
	if raw != nil {
		if err := json.Unmarshal(*raw, &res); err != nil {
			return nil, fmt.Errorf("decode search hits: %w", err)
		}
	}

	ids := make([]string, 0, len(res.Hits))
	for _, h := range res.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
