package question

import (
	"sort"

	"anoa.com/askify/internal/entity"
)

type SortBy string

const (
	SortNewest  SortBy = "newest"
	SortVotes   SortBy = "votes"
	SortAnswers SortBy = "answers"
	SortViews   SortBy = "views"
)

// Criteria selects and orders a question feed. Subject is either
// entity.SubjectAll or an exact subject name.
type Criteria struct {
	SortBy           SortBy
	Subject          string
	Tags             []string
	ShowAnsweredOnly bool
	ShowHotOnly      bool
}

func DefaultCriteria() Criteria {
	return Criteria{SortBy: SortNewest, Subject: entity.SubjectAll}
}

func (c Criteria) keep(q entity.Question) bool {
	if c.Subject != entity.SubjectAll && q.Subject != c.Subject {
		return false
	}
	if len(c.Tags) > 0 && !q.HasAnyTag(c.Tags) {
		return false
	}
	if c.ShowAnsweredOnly && !q.IsAnswered {
		return false
	}
	if c.ShowHotOnly && !q.IsHot {
		return false
	}
	return true
}

func (c Criteria) less() func(a, b entity.Question) bool {
	switch c.SortBy {
	case SortVotes:
		return func(a, b entity.Question) bool { return a.Votes > b.Votes }
	case SortAnswers:
		return func(a, b entity.Question) bool { return a.Answers > b.Answers }
	case SortViews:
		return func(a, b entity.Question) bool { return a.Views > b.Views }
	default:
		return func(a, b entity.Question) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
}

// FilterQuestions returns the questions matching every criterion, ordered
// by c.SortBy. Ties keep their input order. The input slice is not modified.
func FilterQuestions(questions []entity.Question, c Criteria) []entity.Question {
	out := make([]entity.Question, 0, len(questions))
	for _, q := range questions {
		if c.keep(q) {
			out = append(out, q)
		}
	}

	less := c.less()
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// AvailableTags lists every tag used by questions, in first-seen order.
func AvailableTags(questions []entity.Question) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, q := range questions {
		for _, t := range q.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Subjects returns the subject filter options, "all" first.
func Subjects() []string {
	out := make([]string, 0, len(entity.Subjects)+1)
	out = append(out, entity.SubjectAll)
	return append(out, entity.Subjects...)
}
