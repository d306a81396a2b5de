package dto

import (
	"strings"

	"anoa.com/askify/internal/entity"
	commonDto "anoa.com/askify/pkg/dto"
)

type QuestionFilter struct {
	SortBy       string   `form:"sort_by"`
	Subject      string   `form:"subject"`
	Tags         []string `form:"tags"`
	AnsweredOnly bool     `form:"answered_only"`
	HotOnly      bool     `form:"hot_only"`
	Page         int      `form:"page" binding:"omitempty,min=1"`
	Limit        int      `form:"limit" binding:"omitempty,min=1,max=50"`
}

// SelectedTags flattens comma separated tag values, so both ?tags=a,b and
// ?tags=a&tags=b select the same set.
func (f QuestionFilter) SelectedTags() []string {
	var tags []string
	for _, raw := range f.Tags {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

type SearchQuestionRequest struct {
	Query string `form:"q" binding:"required,max=200"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

type PaginatedQuestionResponse struct {
	Data []entity.Question        `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}

type QuestionDetailResponse struct {
	Question entity.Question `json:"question"`
	Answers  []entity.Answer `json:"answers"`
}
